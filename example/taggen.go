//go:build taggen

package main

import "github.com/sublee/taggen"

var mod = taggen.Module(
	taggen.Number(true),
	taggen.FromNumber(true),
	taggen.Stringer(true),
)

// Light is the state of a traffic light head.
var _ = taggen.Enum(mod, "Light",
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
	taggen.Unit("Amber").Value("2"),
	taggen.Unit("Green"),
)

// Shape is a drawable figure.
var _ = taggen.Enum(nil, "Shape",
	taggen.Repr[uint8](),
	taggen.Unit("Empty"),
	taggen.Tuple("Dot", 0.0, 0.0),
	taggen.Record("Circle",
		taggen.Field("X", 0.0),
		taggen.Field("Y", 0.0),
		taggen.Field("Radius", 0.0),
	),
)
