// Package typeinfo classifies go/types types the way taggen's parser needs
// them: field samples must not be nil, untyped constants default to their
// concrete type, and generic types cannot be generated into a variant
// struct.
package typeinfo

import "go/types"

// Type wraps a [types.Type] with the classifications taggen validates
// field samples against.
type Type struct {
	T types.Type

	// basic is the underlying basic type, if any. Named types over a
	// basic type keep their name in T and their kind here.
	basic *types.Basic
}

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	ty := Type{T: t}
	if basic, ok := types.Unalias(t).Underlying().(*types.Basic); ok {
		ty.basic = basic
	}
	return ty
}

func (t Type) Type() types.Type { return t.T }

// IsNil reports whether the type is the type of the predeclared nil.
func (t Type) IsNil() bool {
	return t.basic != nil && t.basic.Kind() == types.UntypedNil
}

// IsUntyped reports whether the type is an untyped constant kind.
func (t Type) IsUntyped() bool {
	return t.basic != nil && t.basic.Info()&types.IsUntyped != 0
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			// No type parameters
			// e.g., Foo
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if isGeneric(targs.At(i)) {
				// Some type argument is generic
				// e.g., Foo[int, T]
				return true
			}
		}
	case *types.Struct:
		for f := range t.Fields() {
			if isGeneric(f.Type()) {
				return true
			}
		}
	case *types.Interface:
		for m := range t.Methods() {
			if isGeneric(m.Type()) {
				return true
			}
		}
	case *types.Signature:
		return t.TypeParams().Len() != 0
	case *types.TypeParam:
		return true
	}
	return false
}
