package types

import "github.com/you-not-fish/fax/internal/syntax"

// NoPos is the zero position value, used for predeclared objects.
var NoPos syntax.Pos

// Universe is the root scope containing all predeclared objects.
var Universe *Scope

func init() {
	Universe = NewScope(nil, NoPos, "universe")

	// Type names, including the sentinels so that Parse sees them.
	for _, typ := range Typ {
		Universe.Insert(NewTypeName(NoPos, typ.name, typ))
	}

	Universe.Insert(NewBuiltin("println", BuiltinPrintln))
}

// LookupBuiltin returns the builtin called name, or nil.
// Builtins are matched by name alone; declarations do not shadow them.
func LookupBuiltin(name string) *Builtin {
	b, _ := Universe.Lookup(name).(*Builtin)
	return b
}
