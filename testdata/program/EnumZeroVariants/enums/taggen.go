//go:build taggen

package enums

import "github.com/sublee/taggen"

// Void has no variants, so every conversion from a number fails.
var _ = taggen.Enum(nil, "Void",
	taggen.Repr[uint16](),
	taggen.Number(true),
	taggen.FromNumber(true),
)
