//go:build taggen

package testdata

import "github.com/sublee/taggen"

var _ = taggen.Enum(nil, "Shape",
	taggen.Repr[uint8](),
	taggen.Number(true),
	taggen.FromNumber(true),
	taggen.Unit("Empty"),
	taggen.Tuple("Dot", 0.0), // want `cannot derive Number for Shape: not all variants are unit` `cannot derive FromNumber for Shape: not all variants are unit`
)
