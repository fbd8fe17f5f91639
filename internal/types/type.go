// Package types implements the type representation shared by the Fax
// analyzers. Types arrive in the tree as names ("int", "ptr<Point>") and are
// parsed into a closed set of variants with Parse.
package types

// Type is the interface implemented by all types.
// The implementations are *Basic, *Pointer, *Named, *Struct and *Func.
type Type interface {
	// String returns the type's name as written in a tree.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
