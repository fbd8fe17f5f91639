package types2

import (
	"github.com/you-not-fish/fax/internal/diag"
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called with the diagnostic that stops checking.
	// If nil, the diagnostic is only returned.
	Error func(d *diag.Diagnostic)
}

// Info holds the results of type checking.
type Info struct {
	// Types maps each expression whose type was inferred to that type.
	// Expressions the checker never needed to classify are absent.
	Types map[syntax.Node]types.Type

	// Funcs maps top-level function names to their signatures.
	Funcs map[string]*types.Func

	// Structs maps struct names to their layouts.
	Structs map[string]*types.Struct
}

// TypeOf returns the recorded type of expression n, or nil.
func (info *Info) TypeOf(n syntax.Node) types.Type {
	if info == nil || info.Types == nil {
		return nil
	}
	return info.Types[n]
}

// Check type-checks the tree rooted at root.
// It returns nil if the tree is well typed, or the first violation as a
// *diag.Diagnostic. The tree is not modified.
func Check(root syntax.Node, conf *Config, info *Info) error {
	if conf == nil {
		conf = &Config{}
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Types == nil {
			info.Types = make(map[syntax.Node]types.Type)
		}
		if info.Funcs == nil {
			info.Funcs = make(map[string]*types.Func)
		}
		if info.Structs == nil {
			info.Structs = make(map[string]*types.Struct)
		}
	}

	c := NewChecker(conf, info)
	err := c.check(root)
	if info != nil {
		for _, name := range c.funcs.Names() {
			info.Funcs[name] = c.funcs.Lookup(name).(*types.FuncObj).Signature()
		}
		for _, name := range c.structs.Names() {
			info.Structs[name] = c.structs.Lookup(name).Type().(*types.Struct)
		}
	}
	return err
}
