// Package scan computes the integer discriminant of every variant of an
// enum declaration.
//
// The rule is the one compilers with native discriminant enums apply. A
// running value starts at the representation's zero. A variant without an
// explicit discriminant resolves to the running value; a variant with an
// explicit integer literal resolves to that literal, range-checked against
// the representation. Either way the running value becomes the resolved
// value plus one, wrapping around at the representation's bit boundary, so
// the maximum representable value is followed by the minimum.
//
// Validation is exhaustive rather than fail-fast. Every variant is checked
// in one pass and each offense is reported against its own source position:
// a malformed literal, an out-of-range literal, or a discriminant resolved
// to the same value twice. An invalid literal contributes no value of its
// own and does not advance the running value, so later implicit variants
// keep counting from the last successfully resolved variant, matching what
// a compiler recovering from the same mistake would report.
package scan
