//go:build taggen

package enums

import "github.com/sublee/taggen"

// Direction drops the enum-name prefix from its constants.
var _ = taggen.Enum(nil, "Direction",
	taggen.Repr[uint8](),
	taggen.ConstPrefix(""),
	taggen.Unit("North"),
	taggen.Unit("East"),
	taggen.Unit("South"),
	taggen.Unit("West"),
)

// Verbosity picks a custom prefix instead.
var _ = taggen.Enum(nil, "Verbosity",
	taggen.Repr[uint8](),
	taggen.ConstPrefix("V"),
	taggen.Unit("Quiet"),
	taggen.Unit("Loud"),
)
