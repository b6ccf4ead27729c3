package scan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/taggen/internal/taggen/parse"
	"github.com/sublee/taggen/internal/taggen/scan"
)

func unit(name string) parse.Variant {
	return parse.Variant{Name: name}
}

func unitValue(name, value string) parse.Variant {
	return parse.Variant{Name: name, Value: value, HasValue: true}
}

func values(resolved []scan.Resolved) []string {
	vals := make([]string, 0, len(resolved))
	for _, r := range resolved {
		vals = append(vals, r.Value.String())
	}
	return vals
}

func TestScanImplicitSequence(t *testing.T) {
	variants := []parse.Variant{unit("A"), unit("B"), unit("C")}

	for _, repr := range scan.Reprs {
		t.Run(repr.String(), func(t *testing.T) {
			resolved, err := scan.Scan(nil, variants, repr)
			require.NoError(t, err)
			assert.Equal(t, []string{"0", "1", "2"}, values(resolved))
		})
	}
}

func TestScanExplicitThenImplicit(t *testing.T) {
	variants := []parse.Variant{unit("A"), unitValue("B", "2"), unit("C")}

	resolved, err := scan.Scan(nil, variants, scan.Uint8)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "3"}, values(resolved))
}

func TestScanWraparoundEveryRepr(t *testing.T) {
	tests := []struct {
		repr         scan.Repr
		max, wrapped string
	}{
		{scan.Int, "9223372036854775807", "-9223372036854775808"},
		{scan.Int8, "127", "-128"},
		{scan.Int16, "32767", "-32768"},
		{scan.Int32, "2147483647", "-2147483648"},
		{scan.Int64, "9223372036854775807", "-9223372036854775808"},
		{scan.Uint, "18446744073709551615", "0"},
		{scan.Uint8, "255", "0"},
		{scan.Uint16, "65535", "0"},
		{scan.Uint32, "4294967295", "0"},
		{scan.Uint64, "18446744073709551615", "0"},
		{scan.Uintptr, "18446744073709551615", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.repr.String(), func(t *testing.T) {
			variants := []parse.Variant{unitValue("Max", tt.max), unit("Wrapped")}

			resolved, err := scan.Scan(nil, variants, tt.repr)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.max, tt.wrapped}, values(resolved))
		})
	}
}

func TestScanNegativeSequence(t *testing.T) {
	variants := []parse.Variant{unitValue("A", "-3"), unit("B"), unit("C"), unit("D")}

	resolved, err := scan.Scan(nil, variants, scan.Int8)
	require.NoError(t, err)
	assert.Equal(t, []string{"-3", "-2", "-1", "0"}, values(resolved))
}

func TestScanNoVariants(t *testing.T) {
	resolved, err := scan.Scan(nil, nil, scan.Uint8)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestScanDataVariants(t *testing.T) {
	variants := []parse.Variant{
		unit("Quit"),
		{Name: "Move", Kind: parse.TupleKind},
		{Name: "Write", Kind: parse.RecordKind, Value: "7", HasValue: true},
	}

	resolved, err := scan.Scan(nil, variants, scan.Int32)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "7"}, values(resolved))
}

func TestScanOutOfRange(t *testing.T) {
	variants := []parse.Variant{unitValue("A", "256")}

	resolved, err := scan.Scan(nil, variants, scan.Uint8)
	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.EqualError(t, err, "discriminant 256 out of range for uint8")
}

func TestScanAccumulatesErrors(t *testing.T) {
	variants := []parse.Variant{
		unitValue("A", "300"),
		unit("B"),
		unitValue("C", "70000"),
	}

	resolved, err := scan.Scan(nil, variants, scan.Uint8)
	require.Error(t, err)
	assert.Nil(t, resolved)

	msgs := strings.Split(err.Error(), "\n")
	require.Len(t, msgs, 2)
	assert.Equal(t, "discriminant 300 out of range for uint8", msgs[0])
	assert.Equal(t, "discriminant 70000 out of range for uint8", msgs[1])
}

func TestScanInvalidLiteralKeepsSequence(t *testing.T) {
	// B contributes no value, so C resolves to 1 right after A. D then
	// collides with C, proving the bad literal did not advance the
	// sequence.
	variants := []parse.Variant{
		unit("A"),
		unitValue("B", "bogus"),
		unit("C"),
		unitValue("D", "1"),
	}

	_, err := scan.Scan(nil, variants, scan.Uint8)
	require.Error(t, err)

	msgs := strings.Split(err.Error(), "\n")
	require.Len(t, msgs, 2)
	assert.Equal(t, `discriminant must be an integer literal: "bogus"`, msgs[0])
	assert.Equal(t, "discriminant 1 assigned more than once: C and D", msgs[1])
}

func TestScanDuplicateExplicit(t *testing.T) {
	variants := []parse.Variant{unitValue("Red", "2"), unitValue("Amber", "2")}

	_, err := scan.Scan(nil, variants, scan.Uint8)
	require.Error(t, err)
	assert.EqualError(t, err, "discriminant 2 assigned more than once: Red and Amber")
}

func TestScanDuplicateImplicit(t *testing.T) {
	variants := []parse.Variant{unit("A"), unitValue("B", "0")}

	_, err := scan.Scan(nil, variants, scan.Uint8)
	require.Error(t, err)
	assert.EqualError(t, err, "discriminant 0 assigned more than once: A and B")
}
