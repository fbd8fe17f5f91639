package types

import "strings"

// Parse returns the type named by s, as written in a tree's dataType,
// returnType or parameter type. Parse is total: a name that is neither a
// primitive, a sentinel nor a pointer is a Named type. For every s,
// Parse(s).String() == s.
func Parse(s string) Type {
	if elem, ok := strings.CutPrefix(s, "ptr<"); ok && strings.HasSuffix(elem, ">") {
		return NewPointer(Parse(elem[:len(elem)-1]))
	}
	if tn, ok := Universe.Lookup(s).(*TypeName); ok {
		return tn.Type()
	}
	return NewNamed(s)
}

// Identical reports whether x and y are identical types.
// Two types are identical exactly when they are written the same way.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Pointer:
		if y, ok := y.(*Pointer); ok {
			return Identical(x.base, y.base)
		}
	case *Named:
		if y, ok := y.(*Named); ok {
			return x.name == y.name
		}
	case *Struct:
		if y, ok := y.(*Struct); ok {
			return identicalStructs(x, y)
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalFuncs(x, y)
		}
	}
	return false
}

func identicalStructs(x, y *Struct) bool {
	if len(x.fields) != len(y.fields) {
		return false
	}
	for i := range x.fields {
		if x.fields[i].Name() != y.fields[i].Name() {
			return false
		}
		if !Identical(x.fields[i].Type(), y.fields[i].Type()) {
			return false
		}
	}
	return true
}

func identicalFuncs(x, y *Func) bool {
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !Identical(x.params[i].Type(), y.params[i].Type()) {
			return false
		}
	}
	return Identical(x.result, y.result)
}

// IsCopy reports whether values of type T may be used any number of times
// without a transfer of ownership. Everything else is move-only.
func IsCopy(T Type) bool {
	b, ok := T.(*Basic)
	if !ok {
		return false
	}
	switch b.kind {
	case Int, Float, Bool:
		return true
	case Unknown, Auto, String, Char, Void:
		return false
	}
	panic("unreachable")
}

// IsUnknown reports whether T is the unknown sentinel.
// An unknown type never takes part in a mismatch.
func IsUnknown(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.kind == Unknown
}

// IsAuto reports whether T is the auto sentinel of an elided declaration.
func IsAuto(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.kind == Auto
}

// hasInfo reports whether T is a basic type with any of the given flags.
func hasInfo(T Type, info BasicInfo) bool {
	b, ok := T.(*Basic)
	return ok && b.info&info != 0
}

// IsStringType reports whether T is the string type.
func IsStringType(T Type) bool { return hasInfo(T, IsString) }

// IsFloatType reports whether T is the float type.
func IsFloatType(T Type) bool { return hasInfo(T, IsFloat) }

// Deref returns the element type of a pointer. Any other type is returned
// unchanged; dereferencing a non-pointer is not an error here.
func Deref(T Type) Type {
	if p, ok := T.(*Pointer); ok {
		return p.base
	}
	return T
}

// Known reports whether both types are known, that is, neither is the
// unknown sentinel. Mismatches are only reported between known types.
func Known(x, y Type) bool {
	return !IsUnknown(x) && !IsUnknown(y)
}
