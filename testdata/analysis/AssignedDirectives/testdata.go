//go:build taggen

package testdata

import "github.com/sublee/taggen"

var red = taggen.Unit("Red") // want `cannot assign Unit to variable`

var number = taggen.Number(true) // want `cannot assign Number to variable`

var mod = taggen.Module(
	number, // want `option must be inlined, not assigned to variable`
	taggen.Stringer(true), // ok, inlined
)

var _ = taggen.Enum(mod, "Light",
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
)
