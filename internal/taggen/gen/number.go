package gen

import "github.com/sublee/taggen/internal/codefmt"

// writeNumberCode writes the lossless conversion from the enum to its
// backing integer. Build has already checked that every variant is unit.
func (g *enumGen) writeNumberCode(w *codefmt.Writer) {
	w.Printf("func (e %s) Number() %s {\n", g.enum.Name, g.repr)
	w.Printf("return %s(e)\n", g.repr)
	w.Printf("}\n\n")
}
