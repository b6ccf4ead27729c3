// Package taggenerrors provides the error type returned by generated
// conversions at runtime.
package taggenerrors

import "fmt"

// InvalidValueError is returned by generated FromNumber conversions when no
// variant of the enum has the input value as its discriminant.
type InvalidValueError struct {
	// Enum is the name of the enum the conversion targets.
	Enum string

	// Value is the rejected input, in the enum's backing integer type.
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %v for enum %s", e.Value, e.Enum)
}
