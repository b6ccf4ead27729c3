//go:build taggen

package testdata

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Box",
	taggen.Repr[uint8](),
	taggen.Record("Item",
		taggen.Field("Weight", 0.0),
		taggen.Field("Discriminant", 0.0), // want `field name Discriminant is reserved for a generated method`
	),
)

// String is only reserved when the Stringer derive is enabled.
var _ = taggen.Enum(nil, "Tag",
	taggen.Repr[uint8](),
	taggen.Stringer(true),
	taggen.Record("Label",
		taggen.Field("String", ""), // want `field name String is reserved for a generated method`
	),
)

var _ = taggen.Enum(nil, "Plain",
	taggen.Repr[uint8](),
	taggen.Record("Label",
		taggen.Field("String", ""), // ok, no Stringer derive
	),
)
