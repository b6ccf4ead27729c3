//go:build taggen

package enums

import "github.com/sublee/taggen"

// Chime wraps around the unsigned boundary: 255 rolls over to 0.
var _ = taggen.Enum(nil, "Chime",
	taggen.Repr[uint8](),
	taggen.Unit("Max").Value("255"),
	taggen.Unit("Wrapped"),
)

// Temp wraps around the signed boundary: 127 rolls over to -128.
var _ = taggen.Enum(nil, "Temp",
	taggen.Repr[int8](),
	taggen.Unit("Top").Value("127"),
	taggen.Unit("Bottom"),
)

// Count runs down from a negative discriminant through zero.
var _ = taggen.Enum(nil, "Count",
	taggen.Repr[int16](),
	taggen.Unit("Minus").Value("-2"),
	taggen.Unit("AlmostZero"),
	taggen.Unit("Zero"),
	taggen.Unit("One"),
)
