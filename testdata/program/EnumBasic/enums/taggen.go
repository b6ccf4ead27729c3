//go:build taggen

package enums

import "github.com/sublee/taggen"

// Light is the state of a traffic light head.
var _ = taggen.Enum(nil, "Light",
	taggen.Repr[uint8](),
	taggen.Number(true),
	taggen.FromNumber(true),
	taggen.Stringer(true),
	taggen.Unit("Red"),
	taggen.Unit("Amber").Value("2"),
	taggen.Unit("Green"),
)
