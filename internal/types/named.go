package types

// Named is a type referred to by name: a struct, or any name that is not
// a primitive. Whether the name resolves to a declaration is decided by
// the analyzer that looks it up, not by the type.
type Named struct {
	typ
	name string
}

// NewNamed creates a new named type.
func NewNamed(name string) *Named {
	return &Named{name: name}
}

// Name returns the type name.
func (n *Named) Name() string {
	return n.name
}

// String implements Type.
func (n *Named) String() string {
	return n.name
}
