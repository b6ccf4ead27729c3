// Package taggen generates integer-discriminant enum types for Go.
//
// # Why Taggen
//
// Go spells enums as a named integer type plus a const block. That idiom
// leaves the interesting parts to convention: the backing integer width is
// whatever the author picked, explicit values drift apart from iota, there is
// no checked conversion from a raw integer back to the enum, and variants
// cannot carry data. Taggen generates all of that from one declaration:
//
//	//go:build taggen
//
//	package traffic
//
//	import "github.com/sublee/taggen"
//
//	// Light is the state of a traffic light head.
//	var _ = taggen.Enum(nil, "Light",
//		taggen.Repr[uint8](),
//		taggen.Unit("Red"),
//		taggen.Unit("Amber").Value("2"),
//		taggen.Unit("Green"),
//	)
//
// Running the taggen command generates taggen_gen.go:
//
//	// generated: (simplified)
//
//	// Light is the state of a traffic light head.
//	type Light uint8
//
//	const (
//		LightRed   Light = 0
//		LightAmber Light = 2
//		LightGreen Light = 3
//	)
//
//	// Discriminant returns the discriminant of e as its uint8 representation.
//	func (e Light) Discriminant() uint8 { return uint8(e) }
//
// Each variant's discriminant follows the rule native-enum compilers use: an
// explicit value if one is declared, otherwise the previous variant's value
// plus one with two's-complement wraparound in the declared width, starting
// at zero. In the example above, Green follows Amber's explicit 2 and
// resolves to 3.
//
// # Declarations
//
// Declarations live in files guarded by the taggen build constraint. The
// constraint keeps declaration files out of real builds, so the taggen
// package is never linked into your program. Files importing taggen without
// the constraint are rejected. Declaration files must contain only taggen
// declarations; the generated file replaces them in ordinary builds.
//
// An enum declaration is a package-level variable assigned to the blank
// identifier. The enum's name is the string argument, never the variable
// name, because the generated type lives in the same package scope as the
// declaration. The declaration's doc comment is carried over to the
// generated type.
//
// The name's case decides visibility, like everywhere else in Go: declare
// "light" instead of "Light" and the type, constants, and methods all come
// out unexported.
//
// # Representation
//
// Every enum must declare its backing integer width with [Repr], and exactly
// once. The recognized representations are Go's fixed and platform integer
// kinds: int, int8, int16, int32, int64, uint, uint8, uint16, uint32,
// uint64, and uintptr. The aliases byte and rune work too, since Go itself
// resolves them to uint8 and int32. Anything else, float64 or a named type,
// is rejected at generation time.
//
// Explicit discriminants are declared by chaining [Variant.Value] with the
// literal as a string:
//
//	taggen.Unit("Backspace").Value("0x08"),
//	taggen.Unit("Lowest").Value("-0x8000_0000"),
//	taggen.Unit("Top").Value("18446744073709551615"),
//
// The string form carries every width faithfully; a Go expression could not
// express the uint64 maximum and a signed minimum with one parameter type.
// All Go integer literal forms are accepted: decimal, 0b, 0o, 0x, digit
// underscores, and a leading minus for signed representations. The literal
// is range-checked against the declared representation, and every offending
// variant is reported in one pass rather than stopping at the first.
//
// # Variants With Data
//
// [Unit] declares a bare variant. [Tuple] and [Record] declare variants
// carrying data, mirroring tuple and struct variants of languages with
// native tagged unions:
//
//	var _ = taggen.Enum(nil, "Shape",
//		taggen.Repr[uint8](),
//		taggen.Unit("Empty"),
//		taggen.Tuple("Dot", geom.Point{}),
//		taggen.Record("Circle",
//			taggen.Field("Center", geom.Point{}),
//			taggen.Field("Radius", float64(0)),
//		),
//	)
//
// Field types are taken from sample expressions, so they stay type-checked
// source code rather than strings. A data-carrying enum generates a sealed
// interface with one struct per variant:
//
//	// generated: (simplified)
//	type Shape interface {
//		isShape()
//		Discriminant() uint8
//	}
//
//	type ShapeDot struct{ F0 geom.Point }
//
//	func (ShapeDot) Discriminant() uint8 { return ShapeDotDiscriminant }
//
// Every value knows its discriminant through its method set; no tag bytes
// are read from memory.
//
// # Derives
//
// Conversions are opt-in per enum, or inherited from a [Module]:
//
//   - [Number] generates a conversion to the backing integer:
//     func (e Light) Number() uint8.
//   - [FromNumber] generates the checked reverse conversion:
//     func LightFromNumber(n uint8) (Light, error). Unmatched input returns
//     a [github.com/sublee/taggen/pkg/taggenerrors.InvalidValueError]
//     carrying the enum's name.
//   - [Stringer] generates fmt.Stringer over the variant names, optionally
//     case-transformed with [StringCase].
//
// Number and FromNumber require every variant to be a unit variant. An enum
// with data somewhere is rejected with "not all variants are unit", because
// a struct variant has no lossless integer round trip.
//
// # Modules
//
// A module provides shared default options for the enums declared with it:
//
//	var mod = taggen.Module(
//		taggen.Number(true),
//		taggen.FromNumber(true),
//	)
//
//	var _ = taggen.Enum(mod, "Light", ...)
//	var _ = taggen.Enum(mod, "Shape", ..., taggen.Number(false), taggen.FromNumber(false))
//
// Enum-level options override module-level ones. Module variables must stay
// unexported and must not be referenced outside taggen declarations; they do
// not exist after generation.
//
// # Schema Files
//
// The same declarations can be written as a YAML manifest and generated with
// taggen -s, for build systems that prefer serialized descriptions over
// directive files:
//
//	package: traffic
//	enums:
//	  - name: Light
//	    repr: uint8
//	    derive: [number, fromnumber]
//	    variants:
//	      - Red
//	      - name: Amber
//	        value: 2
//	      - Green
//
// Schema files declare unit variants only; data variants need Go type
// expressions and belong in directive files.
package taggen

// module provides a shared namespace and default configurations for the
// enums declared with it. This is unexported so there is no way to create a
// module other than [Module].
type module *struct{}

// enum is the opaque result of [Enum]. It is unexported so an enum
// declaration cannot be used as a value; the declaration exists only to be
// read by the generator.
type enum *struct{}

type (
	canUseFor interface{ canUseFor() }
	yes       interface{ canUseFor }
	no        interface{ canUseFor }

	// option for [Module]
	moduleOption interface{ moduleOption() yes }

	// option for [Enum]
	enumOption interface{ enumOption() yes }
)

// Option is a configuration directive accepted by [Module] and [Enum]. The
// type parameters indicate which of the two a given option can be applied
// to. For example, Option[no, yes] is accepted by [Enum] but not by
// [Module].
type Option[Module, Enum canUseFor] interface {
	moduleOption() Module
	enumOption() Enum
}

// Variant is one declared variant of an enum. Variants are created with
// [Unit], [Tuple], or [Record] and passed to [Enum] in declaration order,
// which is the order the discriminant scan resolves them in.
type Variant interface {
	enumOption() yes

	// Value pins the variant's discriminant to an integer literal instead
	// of the previous value plus one. The literal is given as a string so
	// that every representation's full range can be spelled, and it must be
	// a plain integer literal in one of Go's literal forms:
	//
	//	taggen.Unit("Amber").Value("2")
	//	taggen.Unit("Top").Value("0xFFFF_FFFF")
	//
	// The literal is validated against the enum's declared representation
	// at generation time.
	Value(literal string) Variant
}

// RecordField is a named field of a [Record] variant, created with [Field].
type RecordField interface{ recordField() yes }

// Module declares shared default options for enums. Pass a module as the
// first argument of [Enum], then the enum inherits the module's options and
// may override them with its own:
//
//	var mod = taggen.Module(taggen.Number(true))
//
//	var _ = taggen.Enum(mod, "Light", ...)  // Number derived
//	var _ = taggen.Enum(nil, "Pixel", ...)  // not in mod, no Number
//
// Module variables are erased at generation time, so they must not be
// exported and must not be referenced outside taggen declarations.
func Module(opts ...moduleOption) module {
	panic("taggen: not generated")
}

// Enum declares one enum to generate. The declaration must be assigned to
// the blank identifier; the generated type takes its name from the name
// argument and its doc comment from the declaration's doc comment:
//
//	// Light is the state of a traffic light head.
//	var _ = taggen.Enum(nil, "Light",
//		taggen.Repr[uint8](),
//		taggen.Unit("Red"),
//		taggen.Unit("Amber").Value("2"),
//		taggen.Unit("Green"),
//	)
//
// mod attaches the enum to a [Module], or nil for none. The options declare
// the backing representation ([Repr], required), the variants in order
// ([Unit], [Tuple], [Record]), and the derives ([Number], [FromNumber],
// [Stringer]).
func Enum(mod module, name string, opts ...enumOption) enum {
	panic("taggen: not generated")
}

// Repr declares the enum's backing integer representation. Exactly one Repr
// is required per enum:
//
//	taggen.Repr[uint8]()
//
// The type argument must be one of Go's integer kinds: int, int8, int16,
// int32, int64, uint, uint8, uint16, uint32, uint64, or uintptr (byte and
// rune resolve to uint8 and int32). The generated type is defined on this
// representation, constants and conversions are ranged by it, and implicit
// discriminants wrap around at its bit boundary.
func Repr[T any]() Option[no, yes] {
	panic("taggen: not generated")
}

// Unit declares a variant carrying no data, represented purely by its
// discriminant.
func Unit(name string) Variant {
	panic("taggen: not generated")
}

// Tuple declares a variant carrying positional data. Each sample expression
// contributes one field; the generated struct names them F0, F1, and so on:
//
//	taggen.Tuple("Dot", geom.Point{})
//
// Sample expressions are evaluated only by the type checker, never at
// runtime.
func Tuple(name string, samples ...any) Variant {
	panic("taggen: not generated")
}

// Record declares a variant carrying named fields:
//
//	taggen.Record("Circle",
//		taggen.Field("Center", geom.Point{}),
//		taggen.Field("Radius", float64(0)),
//	)
func Record(name string, fields ...RecordField) Variant {
	panic("taggen: not generated")
}

// Field declares one named field of a [Record] variant. The field's type is
// the sample expression's type.
func Field(name string, sample any) RecordField {
	panic("taggen: not generated")
}

// Number enables or disables generating the conversion to the backing
// integer:
//
//	func (e Light) Number() uint8
//
// Requires every variant to be a unit variant.
func Number(enable bool) Option[yes, yes] {
	panic("taggen: not generated")
}

// FromNumber enables or disables generating the checked conversion from the
// backing integer:
//
//	func LightFromNumber(n uint8) (Light, error)
//
// Inputs matching no variant return an invalid-value error carrying the
// enum's name. Requires every variant to be a unit variant.
func FromNumber(enable bool) Option[yes, yes] {
	panic("taggen: not generated")
}

// Stringer enables or disables generating fmt.Stringer over the variant
// names. Unknown values render like Light(7). Use [StringCase] to transform
// the rendered names.
func Stringer(enable bool) Option[yes, yes] {
	panic("taggen: not generated")
}

// StringCase sets the case transform [Stringer] applies to variant names:
// one of "snake", "screaming-snake", "kebab", "camel", "pascal", "lower",
// "upper", "title", or "" for the declared spelling. For example,
// StringCase("snake") renders the variant DeepSleep as "deep_sleep" and
// StringCase("title") renders it as "Deep Sleep".
func StringCase(transform string) Option[yes, yes] {
	panic("taggen: not generated")
}

// ConstPrefix overrides the prefix of generated constant names. The default
// prefix is the enum's name; ConstPrefix("") generates bare variant names:
//
//	var _ = taggen.Enum(nil, "Light", taggen.ConstPrefix(""), ...)
//
//	// generated: const Red Light = 0
//
// The prefix must keep every constant a valid identifier with the same
// visibility as the enum.
func ConstPrefix(prefix string) Option[yes, yes] {
	panic("taggen: not generated")
}
