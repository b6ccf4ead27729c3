//go:build taggen

package testdata

import (
	"time"

	"github.com/sublee/taggen"
)

var _ = taggen.Enum(nil, "Pixel",
	taggen.Repr[float64](), // want `unsupported representation float64`
	taggen.Unit("On"),
)

// Named types over integers do not qualify; the generated type must be
// defined on the representation itself.
var _ = taggen.Enum(nil, "Clock",
	taggen.Repr[time.Duration](), // want `unsupported representation time.Duration`
	taggen.Unit("Tick"),
)

var _ = taggen.Enum(nil, "Twice",
	taggen.Repr[uint8](),
	taggen.Repr[uint16](), // want `representation already declared`
	taggen.Unit("A"),
)

// byte and rune resolve to uint8 and int32, the same way Go resolves them.
var _ = taggen.Enum(nil, "Octet",
	taggen.Repr[byte](),
	taggen.Unit("A"),
)
