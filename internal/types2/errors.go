// Package types2 implements type checking for Fax program trees.
//
// Checking runs in two phases. The first collects the signatures of all
// top-level functions and the layouts of all structs, so that references
// to declarations later in the program resolve. The second walks the tree
// with a stack of variable scopes, inferring expression types and
// rejecting mismatches. Checking stops at the first violation.
package types2

import (
	"fmt"

	"github.com/you-not-fish/fax/internal/diag"
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// report hands d to the configured error handler and returns it.
func (c *Checker) report(d *diag.Diagnostic) error {
	if c.conf.Error != nil {
		c.conf.Error(d)
	}
	return d
}

func expectedFound(want, got types.Type) string {
	return fmt.Sprintf("expected `%s`, found `%s`", want, got)
}

func errVarMismatch(d *syntax.VarDecl, declared, init types.Type) *diag.Diagnostic {
	return diag.New(diag.Mismatch, "mismatched types",
		diag.At(d.Pos(), len(d.Name), expectedFound(declared, init)))
}

func errAssignMismatch(n *syntax.AssignExpr, lhs, rhs types.Type) *diag.Diagnostic {
	var name string
	switch x := n.Lhs.(type) {
	case *syntax.Name:
		name = x.Value
	case *syntax.SelectorExpr:
		name = x.Sel
	default:
		name = "expression"
	}
	return diag.New(diag.Mismatch, "mismatched types during assignment",
		diag.At(n.Pos(), len(name), expectedFound(lhs, rhs)))
}

func errArgCount(n *syntax.CallExpr, name string, want int) *diag.Diagnostic {
	return diag.Errorf(diag.ArgCount,
		diag.At(n.Pos(), len(name), fmt.Sprintf("expected %d arguments", want)),
		"function `%s` expected %d arguments, got %d", name, want, len(n.Args))
}

func errArgMismatch(n *syntax.CallExpr, name string, i int, want, got types.Type) *diag.Diagnostic {
	return diag.Errorf(diag.Mismatch,
		diag.At(n.Pos(), len(name), fmt.Sprintf("argument #%d %s", i+1, expectedFound(want, got))),
		"argument type mismatch in call to `%s`", name)
}

func errOperatorMismatch(n *syntax.Operation, x, y types.Type) *diag.Diagnostic {
	return diag.New(diag.Mismatch, "operator type mismatch",
		diag.At(n.Pos(), len(n.Op), fmt.Sprintf("cannot apply `%s` to `%s` and `%s`", n.Op, x, y)))
}

func errReturnMismatch(s *syntax.ReturnStmt, want, got types.Type) *diag.Diagnostic {
	return diag.New(diag.Mismatch, "mismatched return type",
		diag.At(s.Pos(), len("return"), expectedFound(want, got)))
}
