//go:build taggen

package enums

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Light",
	taggen.Unit("Red"),
)
