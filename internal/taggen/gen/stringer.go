package gen

import (
	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/taggen/parse"
)

// writeStringerCode writes String methods. A unit enum switches over its
// constants with a "Name(value)" fallback for unknown values; a data enum
// gives each variant struct its own String method.
func (g *enumGen) writeStringerCode(w *codefmt.Writer) {
	transform, _ := parse.StringCaseFunc(g.enum.Config.StringCase)

	if !g.allUnit() {
		for _, r := range g.resolved {
			w.Printf("func (%s%s) String() string {\n", g.prefix, r.Variant.Name)
			w.Printf("return %q\n", transform(r.Variant.Name))
			w.Printf("}\n\n")
		}
		return
	}

	varFmt := w.Import("fmt", "fmt")

	w.Printf("func (e %s) String() string {\n", g.enum.Name)
	if len(g.resolved) != 0 {
		w.Printf("switch e {\n")
		for _, r := range g.resolved {
			w.Printf("case %s%s:\n", g.prefix, r.Variant.Name)
			w.Printf("return %q\n", transform(r.Variant.Name))
		}
		w.Printf("}\n")
	}
	w.Printf("return %s.Sprintf(\"%s(%%d)\", %s(e))\n", varFmt, g.enum.Name, g.repr)
	w.Printf("}\n\n")
}
