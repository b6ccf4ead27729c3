//go:build taggen

package enums

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Shape",
	taggen.Repr[uint8](),
	taggen.Number(true),
	taggen.Unit("Empty"),
	taggen.Tuple("Dot", 0.0),
)
