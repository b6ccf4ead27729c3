//go:build taggen

package testdata

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Color", // want `cannot declare Color; name already used in the package`
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
)

// Two enums cannot claim the same constant name either.
var _ = taggen.Enum(nil, "Alpha",
	taggen.Repr[uint8](),
	taggen.ConstPrefix(""),
	taggen.Unit("Mask"),
)

var _ = taggen.Enum(nil, "Beta", // want `cannot declare Mask; name already used in the package`
	taggen.Repr[uint8](),
	taggen.ConstPrefix(""),
	taggen.Unit("Mask"),
)
