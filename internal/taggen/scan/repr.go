package scan

import (
	"go/types"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/taggen/parse"
)

// Repr is an integer representation backing an enum. The recognized
// representations are Go's fixed-width and platform-sized integer kinds.
// The platform-sized kinds int, uint, and uintptr are modeled as 64 bits
// wide; generated code documents that as a precondition.
type Repr struct {
	name   string
	bits   int
	signed bool
}

var (
	Int     = Repr{"int", 64, true}
	Int8    = Repr{"int8", 8, true}
	Int16   = Repr{"int16", 16, true}
	Int32   = Repr{"int32", 32, true}
	Int64   = Repr{"int64", 64, true}
	Uint    = Repr{"uint", 64, false}
	Uint8   = Repr{"uint8", 8, false}
	Uint16  = Repr{"uint16", 16, false}
	Uint32  = Repr{"uint32", 32, false}
	Uint64  = Repr{"uint64", 64, false}
	Uintptr = Repr{"uintptr", 64, false}
)

// Reprs lists every recognized representation.
var Reprs = []Repr{
	Int, Int8, Int16, Int32, Int64,
	Uint, Uint8, Uint16, Uint32, Uint64,
	Uintptr,
}

// String returns the Go type name of the representation, such as "uint8".
func (r Repr) String() string { return r.name }

// Bits returns the bit width of the representation.
func (r Repr) Bits() int { return r.bits }

// Signed reports whether the representation is a signed kind.
func (r Repr) Signed() bool { return r.signed }

// ReprByName returns the representation for a type name spelling. The alias
// spellings byte and rune resolve to uint8 and int32, the same way Go
// resolves them.
func ReprByName(name string) (Repr, bool) {
	switch name {
	case "byte":
		return Uint8, true
	case "rune":
		return Int32, true
	}

	for _, r := range Reprs {
		if r.name == name {
			return r, true
		}
	}
	return Repr{}, false
}

// ReprFor returns the representation for a type. Only the basic integer
// kinds qualify; named types over integers do not, because the generated
// enum type must be defined on the representation itself.
func ReprFor(typ types.Type) (Repr, bool) {
	basic, ok := types.Unalias(typ).(*types.Basic)
	if !ok {
		return Repr{}, false
	}

	switch basic.Kind() {
	case types.Int:
		return Int, true
	case types.Int8:
		return Int8, true
	case types.Int16:
		return Int16, true
	case types.Int32:
		return Int32, true
	case types.Int64:
		return Int64, true
	case types.Uint:
		return Uint, true
	case types.Uint8:
		return Uint8, true
	case types.Uint16:
		return Uint16, true
	case types.Uint32:
		return Uint32, true
	case types.Uint64:
		return Uint64, true
	case types.Uintptr:
		return Uintptr, true
	}
	return Repr{}, false
}

// ResolveRepr extracts the single representation an enum declares. It fails
// if the enum has no Repr option or if the declared type is not one of the
// recognized integer kinds. It runs before [Scan], which is parameterized
// by the resolved representation.
func ResolveRepr(pkger codefmt.Pkger, enum *parse.Enum) (Repr, error) {
	cfg := enum.Config
	if cfg.ReprType == nil {
		err := codefmt.Errorf(pkger, codefmt.Pos(enum.NamePos), "missing integer representation for %s", enum.Name)
		return Repr{}, err
	}

	repr, ok := ReprFor(cfg.ReprType)
	if !ok {
		err := codefmt.Errorf(pkger, codefmt.Pos(cfg.ReprPos), "unsupported representation %t", codefmt.Type(cfg.ReprType))
		return Repr{}, err
	}
	return repr, nil
}
