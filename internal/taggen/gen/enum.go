package gen

import (
	"go/token"
	"strings"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/taggen/parse"
	"github.com/sublee/taggen/internal/taggen/scan"
)

// enumGen generates the declarations of one enum: the type itself, the
// discriminant constants, the accessor, and the enabled derives.
type enumGen struct {
	enum     *parse.Enum
	repr     scan.Repr
	resolved []scan.Resolved

	// prefix prepends generated constant and variant struct names.
	prefix string
}

func (g *enumGen) Pos() token.Pos { return g.enum.Pos() }

// allUnit reports whether no variant carries data. An enum without variants
// counts as all-unit.
func (g *enumGen) allUnit() bool {
	for _, v := range g.enum.Variants {
		if !v.IsUnit() {
			return false
		}
	}
	return true
}

// declNames returns every package-level name the enum generates, in
// declaration order.
func (g *enumGen) declNames() []string {
	names := []string{g.enum.Name}

	if g.allUnit() {
		for _, v := range g.enum.Variants {
			names = append(names, g.prefix+v.Name)
		}
		if g.enum.Config.FromNumber {
			names = append(names, g.enum.Name+"FromNumber")
		}
		return names
	}

	for _, v := range g.enum.Variants {
		names = append(names, g.prefix+v.Name+"Discriminant", g.prefix+v.Name)
	}
	return names
}

// WriteDefineCode writes all declarations generated for the enum. The output
// is raw unindented code; the caller runs it through gofmt.
func (g *enumGen) WriteDefineCode(w *codefmt.Writer) {
	g.writeDoc(w)
	if g.allUnit() {
		g.writeUnitEnum(w)
	} else {
		g.writeDataEnum(w)
	}

	if g.enum.Config.Number {
		g.writeNumberCode(w)
	}
	if g.enum.Config.FromNumber {
		g.writeFromNumberCode(w)
	}
	if g.enum.Config.Stringer {
		g.writeStringerCode(w)
	}
}

func (g *enumGen) writeDoc(w *codefmt.Writer) {
	if g.enum.Doc == "" {
		return
	}

	for _, line := range strings.Split(g.enum.Doc, "\n") {
		if line == "" {
			w.Printf("//\n")
		} else {
			w.Printf("// %s\n", line)
		}
	}
}

// writeUnitEnum writes an enum whose variants all carry no data. The type is
// its representation, and the typed constants are the discriminants.
func (g *enumGen) writeUnitEnum(w *codefmt.Writer) {
	w.Printf("type %s %s\n\n", g.enum.Name, g.repr)

	if len(g.resolved) != 0 {
		w.Printf("const (\n")
		for _, r := range g.resolved {
			w.Printf("%s%s %s = %s\n", g.prefix, r.Variant.Name, g.enum.Name, r.Value)
		}
		w.Printf(")\n\n")
	}

	w.Printf("func (e %s) Discriminant() %s {\n", g.enum.Name, g.repr)
	w.Printf("return %s(e)\n", g.repr)
	w.Printf("}\n\n")
}

// writeDataEnum writes an enum with data-carrying variants as a sealed
// interface with one struct per variant. Every value knows its discriminant
// through its method set, so reading it never touches memory layout.
func (g *enumGen) writeDataEnum(w *codefmt.Writer) {
	w.Printf("type %s interface {\n", g.enum.Name)
	w.Printf("is%s()\n", g.enum.Name)
	w.Printf("Discriminant() %s\n", g.repr)
	w.Printf("}\n\n")

	w.Printf("const (\n")
	for _, r := range g.resolved {
		w.Printf("%s%sDiscriminant %s = %s\n", g.prefix, r.Variant.Name, g.repr, r.Value)
	}
	w.Printf(")\n\n")

	for _, r := range g.resolved {
		g.writeVariantStruct(w, r.Variant)
	}
}

func (g *enumGen) writeVariantStruct(w *codefmt.Writer, v parse.Variant) {
	name := g.prefix + v.Name

	if len(v.Fields) == 0 {
		w.Printf("type %s struct{}\n\n", name)
	} else {
		w.Printf("type %s struct {\n", name)
		for _, f := range v.Fields {
			w.Printf("%s %t\n", f.Name, f.Type)
		}
		w.Printf("}\n\n")
	}

	w.Printf("func (%s) is%s() {}\n\n", name, g.enum.Name)

	w.Printf("func (%s) Discriminant() %s {\n", name, g.repr)
	w.Printf("return %sDiscriminant\n", name)
	w.Printf("}\n\n")
}
