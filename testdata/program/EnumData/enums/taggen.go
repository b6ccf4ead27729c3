//go:build taggen

package enums

import "github.com/sublee/taggen"

// Shape is a drawable figure.
var _ = taggen.Enum(nil, "Shape",
	taggen.Repr[uint8](),
	taggen.Stringer(true),
	taggen.Unit("Empty"),
	taggen.Tuple("Dot", 0.0, 0.0),
	taggen.Record("Circle",
		taggen.Field("X", 0.0),
		taggen.Field("Y", 0.0),
		taggen.Field("Radius", 0.0),
	).Value("10"),
)
