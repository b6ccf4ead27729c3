package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/taggen/internal/taggen/schema"
)

// manifest unindents a YAML literal written inline in a test. Tabs are for
// the Go source; YAML wants spaces.
func manifest(s string) []byte {
	s = strings.ReplaceAll(s, "\t", "  ")
	return []byte(s)
}

func TestGenerate(t *testing.T) {
	code, err := schema.Generate("light.yaml", manifest(`
package: traffic
enums:
	- name: Light
		repr: uint8
		doc: Light is the state of a traffic light head.
		derive: [number, fromnumber]
		variants:
			- Red
			- name: Amber
				value: 2
			- Green
`))
	require.NoError(t, err)

	assert.Contains(t, string(code), "// Code generated by github.com/sublee/taggen. DO NOT EDIT.")
	assert.Contains(t, string(code), "package traffic")
	assert.Contains(t, string(code), "// Light is the state of a traffic light head.")
	assert.Contains(t, string(code), "type Light uint8")
	assert.Contains(t, string(code), "LightRed   Light = 0")
	assert.Contains(t, string(code), "LightAmber Light = 2")
	assert.Contains(t, string(code), "LightGreen Light = 3")
	assert.Contains(t, string(code), "func (e Light) Discriminant() uint8")
	assert.Contains(t, string(code), "func (e Light) Number() uint8")
	assert.Contains(t, string(code), "func LightFromNumber(n uint8) (Light, error)")
	assert.Contains(t, string(code), `"github.com/sublee/taggen/pkg/taggenerrors"`)
	assert.Contains(t, string(code), `&taggenerrors.InvalidValueError{Enum: "Light", Value: n}`)
}

func TestGenerateStringer(t *testing.T) {
	code, err := schema.Generate("power.yaml", manifest(`
package: power
enums:
	- name: Mode
		repr: uint8
		derive: [stringer]
		string-case: snake
		variants:
			- DeepSleep
			- FullPower
`))
	require.NoError(t, err)

	assert.Contains(t, string(code), "func (e Mode) String() string")
	assert.Contains(t, string(code), `"deep_sleep"`)
	assert.Contains(t, string(code), `"full_power"`)
	assert.Contains(t, string(code), `fmt.Sprintf("Mode(%d)", uint8(e))`)
}

func TestGenerateConstPrefix(t *testing.T) {
	code, err := schema.Generate("dir.yaml", manifest(`
package: compass
enums:
	- name: Direction
		repr: uint8
		const-prefix: ""
		variants:
			- North
			- South
`))
	require.NoError(t, err)

	assert.Contains(t, string(code), "North Direction = 0")
	assert.Contains(t, string(code), "South Direction = 1")
	assert.NotContains(t, string(code), "DirectionNorth")
}

func TestGenerateSignedWraparound(t *testing.T) {
	code, err := schema.Generate("temp.yaml", manifest(`
package: temp
enums:
	- name: Temp
		repr: int8
		variants:
			- name: Top
				value: 127
			- Bottom
`))
	require.NoError(t, err)

	assert.Contains(t, string(code), "TempTop    Temp = 127")
	assert.Contains(t, string(code), "TempBottom Temp = -128")
}

func TestGenerateNoEnums(t *testing.T) {
	code, err := schema.Generate("empty.yaml", manifest(`
package: empty
`))
	require.NoError(t, err)
	assert.Nil(t, code)
}

func TestGenerateMissingRepr(t *testing.T) {
	_, err := schema.Generate("light.yaml", manifest(`
package: traffic
enums:
	- name: Light
		variants:
			- Red
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing integer representation for Light")
	assert.ErrorContains(t, err, "light.yaml:")
}

func TestGenerateUnsupportedRepr(t *testing.T) {
	_, err := schema.Generate("light.yaml", manifest(`
package: traffic
enums:
	- name: Light
		repr: float64
		variants:
			- Red
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported representation float64")
}

func TestGenerateAccumulatesErrors(t *testing.T) {
	_, err := schema.Generate("level.yaml", manifest(`
package: levels
enums:
	- name: Level
		repr: uint8
		variants:
			- name: Low
				value: 300
			- name: High
				value: 70000
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "discriminant 300 out of range for uint8")
	assert.ErrorContains(t, err, "discriminant 70000 out of range for uint8")
}

func TestGenerateKeepsIndependentErrors(t *testing.T) {
	// Level fails while parsing and Pixel fails while building; one run
	// reports both.
	_, err := schema.Generate("mixed.yaml", manifest(`
package: mixed
enums:
	- name: Level
		repr: uint8
		variants:
			- Low
			- Low
	- name: Pixel
		repr: float64
		variants:
			- On
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "variant Low already declared in Level")
	assert.ErrorContains(t, err, "unsupported representation float64")
}

func TestGenerateNotIntegerLiteral(t *testing.T) {
	_, err := schema.Generate("light.yaml", manifest(`
package: traffic
enums:
	- name: Light
		repr: uint8
		variants:
			- name: Red
				value: 1+2
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, `discriminant must be an integer literal: "1+2"`)
}

func TestGenerateDuplicateVariant(t *testing.T) {
	_, err := schema.Generate("light.yaml", manifest(`
package: traffic
enums:
	- name: Light
		repr: uint8
		variants:
			- Red
			- Red
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "variant Red already declared in Light")
}

func TestGenerateUnknownKey(t *testing.T) {
	_, err := schema.Generate("light.yaml", manifest(`
package: traffic
enums:
	- name: Light
		repr: uint8
		color: red
		variants:
			- Red
`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "color is not supported key")
}
