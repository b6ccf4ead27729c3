package testdata

// Color already exists in the package, so the enum below cannot generate a
// type with the same name.
type Color uint8
