//go:build taggen

package testdata

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Light",
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
	taggen.Unit("Red"), // want `variant Red already declared in Light`
	taggen.Unit("red"), // ok, names are case-sensitive
)

var _ = taggen.Enum(nil, "Point",
	taggen.Repr[uint8](),
	taggen.Record("At",
		taggen.Field("X", 0.0),
		taggen.Field("X", 0.0), // want `field X already declared in At`
	),
)
