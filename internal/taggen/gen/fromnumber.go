package gen

import "github.com/sublee/taggen/internal/codefmt"

// writeFromNumberCode writes the conversion from the backing integer to the
// enum. Unmatched inputs return the zero value and a
// [taggenerrors.InvalidValueError], so an enum without variants always
// returns the error.
func (g *enumGen) writeFromNumberCode(w *codefmt.Writer) {
	varErrors := w.Import("github.com/sublee/taggen/pkg/taggenerrors", "taggenerrors")

	w.Printf("func %sFromNumber(n %s) (%s, error) {\n", g.enum.Name, g.repr, g.enum.Name)
	if len(g.resolved) != 0 {
		w.Printf("switch n {\n")
		for _, r := range g.resolved {
			w.Printf("case %s:\n", r.Value)
			w.Printf("return %s%s, nil\n", g.prefix, r.Variant.Name)
		}
		w.Printf("}\n")
	}
	w.Printf("return 0, &%s.InvalidValueError{Enum: %q, Value: n}\n", varErrors, g.enum.Name)
	w.Printf("}\n\n")
}
