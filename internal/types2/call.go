package types2

import (
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// call checks a call of a top-level function: the argument count must
// match exactly and each argument must have its parameter's type.
// Builtins accept anything. Calls of unknown functions are not checked.
func (c *Checker) call(n *syntax.CallExpr) error {
	if fn, ok := n.Fun.(*syntax.Name); ok && types.LookupBuiltin(fn.Value) == nil {
		if sig := c.lookupFunc(fn.Value); sig != nil {
			if err := c.arguments(n, fn.Value, sig); err != nil {
				return err
			}
		}
	}
	return c.stmts(n.Args)
}

func (c *Checker) arguments(n *syntax.CallExpr, name string, sig *types.Func) error {
	if sig.NumParams() != len(n.Args) {
		return c.report(errArgCount(n, name, sig.NumParams()))
	}
	for i, arg := range n.Args {
		want := sig.Param(i).Type()
		got := c.typeOf(arg)
		if !types.IsUnknown(got) && !types.Identical(want, got) {
			return c.report(errArgMismatch(n, name, i, want, got))
		}
	}
	return nil
}
