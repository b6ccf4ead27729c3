//go:build taggen

package testdata

import "github.com/sublee/taggen"

// Every offending variant is reported in one pass; an invalid literal does
// not suppress later checks.
var _ = taggen.Enum(nil, "Code",
	taggen.Repr[uint8](),
	taggen.Unit("A").Value("300"), // want `discriminant 300 out of range for uint8`
	taggen.Unit("B").Value("1+2"), // want `discriminant must be an integer literal: "1\+2"`
	taggen.Unit("C").Value("-1"),  // want `discriminant -1 out of range for uint8`
	taggen.Unit("D").Value("7"),
	taggen.Unit("E").Value("7"), // want `discriminant 7 assigned more than once: D and E`
)

var _ = taggen.Enum(nil, "Temp",
	taggen.Repr[int8](),
	taggen.Unit("Low").Value("-129"), // want `discriminant -129 out of range for int8`
	taggen.Unit("High").Value("128"), // want `discriminant 128 out of range for int8`
)

// An implicit variant can collide with a later explicit one.
var _ = taggen.Enum(nil, "Seq",
	taggen.Repr[uint16](),
	taggen.Unit("First"),
	taggen.Unit("Again").Value("0"), // want `discriminant 0 assigned more than once: First and Again`
)
