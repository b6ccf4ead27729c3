//go:build taggen

package testdata

import "github.com/sublee/taggen"

var mod = taggen.Module() // ok, very valid

var Mod = taggen.Module() // want `cannot export module "Mod"; invisible without the taggen tag`

var mod2 = mod // want `cannot use module "mod" outside taggen directives; invisible without the taggen tag`

var _ = taggen.Module() // ok, blank identifier is harmless

var _ = taggen.Enum(mod, "Light",
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
)

var _ = taggen.Enum(taggen.Module(taggen.Number(true)), "Pixel", // ok, inline module
	taggen.Repr[uint8](),
	taggen.Unit("On"),
)
