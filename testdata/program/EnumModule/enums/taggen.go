//go:build taggen

package enums

import "github.com/sublee/taggen"

var cards = taggen.Module(
	taggen.Number(true),
	taggen.Stringer(true),
)

// Suit inherits Number and Stringer from the module.
var _ = taggen.Enum(cards, "Suit",
	taggen.Repr[uint8](),
	taggen.Unit("Clubs"),
	taggen.Unit("Diamonds"),
	taggen.Unit("Hearts"),
	taggen.Unit("Spades"),
)

// Rank overrides the module's string case for its own names.
var _ = taggen.Enum(cards, "Rank",
	taggen.Repr[uint8](),
	taggen.StringCase("lower"),
	taggen.Unit("Ace").Value("1"),
	taggen.Unit("Jack").Value("11"),
	taggen.Unit("Queen"),
	taggen.Unit("King"),
)
