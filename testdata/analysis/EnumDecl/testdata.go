//go:build taggen

package testdata

import "github.com/sublee/taggen"

var Light = taggen.Enum(nil, "Light", // want `enum declaration must be assigned to the blank identifier`
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
)

var _ = taggen.Enum(nil, "9Pin", // want `invalid enum name "9Pin"`
	taggen.Repr[uint8](),
	taggen.Unit("A"),
)
