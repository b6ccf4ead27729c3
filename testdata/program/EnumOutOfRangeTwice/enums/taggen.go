//go:build taggen

package enums

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Level",
	taggen.Repr[uint8](),
	taggen.Unit("Low").Value("300"),
	taggen.Unit("High").Value("70000"),
)
