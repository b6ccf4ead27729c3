package testdata

import "github.com/sublee/taggen" // want `file must have "//go:build taggen" constraint when importing taggen`

var _ = taggen.Enum(nil, "Light",
	taggen.Repr[uint8](),
	taggen.Unit("Red"),
)
