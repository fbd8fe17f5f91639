package types

import "github.com/you-not-fish/fax/internal/syntax"

// Object represents a declared entity: variable, type name, function or builtin.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a variable, parameter or struct field.
type Var struct {
	object
	isConst bool // declared const
}

// NewVar creates a new variable object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}}
}

// NewConst creates a new variable object that may not be assigned to.
func NewConst(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, isConst: true}
}

// NewField creates a new struct field object.
func NewField(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}}
}

// IsConst reports whether the variable was declared const.
func (v *Var) IsConst() bool {
	return v.isConst
}

// TypeName represents a declared type name.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// FuncObj represents a declared function.
type FuncObj struct {
	object
}

// NewFuncObj creates a new function object with the given signature.
func NewFuncObj(pos syntax.Pos, name string, sig *Func) *FuncObj {
	return &FuncObj{object: object{name: name, typ: sig, pos: pos}}
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.typ.(*Func)
}

// BuiltinKind identifies a builtin function.
type BuiltinKind int

const (
	BuiltinPrintln BuiltinKind = iota
)

// Builtin represents a built-in function.
// Builtins accept any number of arguments of any type and never take
// ownership of them.
type Builtin struct {
	object
	kind BuiltinKind
}

// NewBuiltin creates a new builtin function object.
func NewBuiltin(name string, kind BuiltinKind) *Builtin {
	return &Builtin{object: object{name: name, typ: Typ[Void]}, kind: kind}
}

// Kind returns the builtin function kind.
func (b *Builtin) Kind() BuiltinKind {
	return b.kind
}
