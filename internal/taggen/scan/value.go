package scan

import (
	"errors"
	"strconv"
	"strings"
)

// Value is a discriminant value materialized in some representation. The
// bit pattern lives in a uint64, two's complement for signed kinds, always
// masked to the representation's width.
type Value struct {
	bits uint64
	repr Repr
}

func (r Repr) mask() uint64 {
	if r.bits == 64 {
		return ^uint64(0)
	}
	return 1<<uint(r.bits) - 1
}

// Zero returns the representation's zero value, where an implicit variant
// sequence starts.
func (r Repr) Zero() Value {
	return Value{0, r}
}

// Parse converts a textual integer literal into a value of the
// representation. All Go literal forms are accepted: decimal, 0b, 0o, 0x,
// digit-separating underscores, and a leading minus for signed kinds or a
// zero literal. The
// returned error matches [strconv.ErrSyntax] for text that is not an
// integer literal and [strconv.ErrRange] for a literal outside the
// representation's range.
func (r Repr) Parse(lit string) (Value, error) {
	if r.signed {
		n, err := strconv.ParseInt(lit, 0, r.bits)
		if err != nil {
			return Value{}, err
		}
		return Value{uint64(n) & r.mask(), r}, nil
	}

	// A well-formed negative literal is out of range for an unsigned kind,
	// not malformed. "-0" is the exception: it denotes zero, which every
	// representation holds.
	if strings.HasPrefix(lit, "-") {
		if n, err := strconv.ParseInt(lit, 0, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			if err == nil && n == 0 {
				return Value{0, r}, nil
			}
			return Value{}, &strconv.NumError{Func: "ParseUint", Num: lit, Err: strconv.ErrRange}
		}
	}

	n, err := strconv.ParseUint(lit, 0, r.bits)
	if err != nil {
		return Value{}, err
	}
	return Value{n, r}, nil
}

// Inc returns the value incremented by one with two's-complement wraparound
// at the representation's bit boundary. The maximum representable value
// increments to the minimum; incrementing never fails.
func (v Value) Inc() Value {
	return Value{(v.bits + 1) & v.repr.mask(), v.repr}
}

// Equal reports whether two values have the same bit pattern in the same
// representation.
func (v Value) Equal(u Value) bool {
	return v.bits == u.bits && v.repr == u.repr
}

// Uint64 returns the raw bit pattern.
func (v Value) Uint64() uint64 { return v.bits }

// Int64 returns the bit pattern sign-extended to 64 bits.
func (v Value) Int64() int64 {
	shift := uint(64 - v.repr.bits)
	return int64(v.bits<<shift) >> shift
}

// String renders the value the way it appears in generated code: a decimal
// integer, negative for signed values with the sign bit set.
func (v Value) String() string {
	if v.repr.signed {
		return strconv.FormatInt(v.Int64(), 10)
	}
	return strconv.FormatUint(v.bits, 10)
}
