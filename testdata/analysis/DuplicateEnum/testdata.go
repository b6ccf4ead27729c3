//go:build taggen

package testdata

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Light",
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
)

var _ = taggen.Enum(nil, "Light", // want `enum Light already declared at .*testdata.go:7:5`
	taggen.Repr[uint8](),
	taggen.Unit("Green"),
)
