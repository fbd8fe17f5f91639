package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	// Sentinels
	Unknown BasicKind = iota // inference gave up; never itself an error
	Auto                     // declared type elided

	// Concrete basic types
	Bool
	Int
	Float
	String
	Char
	Void
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsBoolean BasicInfo = 1 << iota
	IsInteger
	IsFloat
	IsString
	IsSentinel
	IsNumeric = IsInteger | IsFloat
)

// Basic represents a primitive type or one of the sentinels unknown and auto.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the basic types, indexed by BasicKind.
var Typ = []*Basic{
	Unknown: {kind: Unknown, info: IsSentinel, name: "unknown"},
	Auto:    {kind: Auto, info: IsSentinel, name: "auto"},
	Bool:    {kind: Bool, info: IsBoolean, name: "bool"},
	Int:     {kind: Int, info: IsInteger, name: "int"},
	Float:   {kind: Float, info: IsFloat, name: "float"},
	String:  {kind: String, info: IsString, name: "string"},
	Char:    {kind: Char, name: "char"},
	Void:    {kind: Void, name: "void"},
}
