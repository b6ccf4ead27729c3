//go:build taggen

package testdata

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Light", // want `missing integer representation for Light`
	taggen.Unit("Red"),
	taggen.Unit("Green"),
)
