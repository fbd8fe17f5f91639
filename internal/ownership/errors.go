package ownership

import (
	"fmt"

	"github.com/you-not-fish/fax/internal/diag"
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

func errVarConflictsWithFunc(d *syntax.VarDecl, fn types.Object) error {
	return diag.Errorf(diag.NameConflict,
		diag.At(d.Pos(), len(d.Name), "conflicts with function here"),
		"name conflict: `%s` is already defined as a function", d.Name).
		WithSecondary(diag.At(fn.Pos(), len(d.Name), "function defined here"))
}

func errVarRedefined(d *syntax.VarDecl, prev types.Object) error {
	return diag.Errorf(diag.NameConflict,
		diag.At(d.Pos(), len(d.Name), "already defined in this scope"),
		"re-definition of variable `%s`", d.Name).
		WithSecondary(diag.At(prev.Pos(), len(d.Name), "previous definition here"))
}

func errFuncConflictsWithVar(d *syntax.FuncDecl, v *types.Var) error {
	return diag.Errorf(diag.NameConflict,
		diag.At(d.Pos(), len(d.Name), "conflicts with variable here"),
		"name conflict: `%s` is already defined as a variable", d.Name).
		WithSecondary(diag.At(v.Pos(), len(d.Name), "variable defined here"))
}

func errFuncRedefined(d *syntax.FuncDecl, prev types.Object) error {
	return diag.Errorf(diag.NameConflict,
		diag.At(d.Pos(), len(d.Name), "already defined"),
		"re-definition of function `%s`", d.Name).
		WithSecondary(diag.At(prev.Pos(), len(d.Name), "previous definition here"))
}

func errAssignConst(n *syntax.AssignExpr, v *types.Var) error {
	pos := n.Pos()
	if !pos.IsValid() {
		pos = v.Pos()
	}
	d := diag.Errorf(diag.AssignConst,
		diag.At(pos, len(v.Name()), "re-assignment of constant"),
		"cannot assign to constant variable `%s`", v.Name())
	if pos != v.Pos() {
		d.WithSecondary(diag.At(v.Pos(), len(v.Name()), "constant declared here"))
	}
	return d.WithSuggestion(
		"consider declaring the variable with `let` to allow assignment",
		fmt.Sprintf("let %s: %s", v.Name(), v.Type()))
}

func errUseAfterMove(n *syntax.Name, v *types.Var, movedAt syntax.Pos) error {
	d := diag.Errorf(diag.MovedValue,
		diag.At(usePos(n, v), len(n.Value), "value used here after move"),
		"use of moved value: `%s`", n.Value)
	return movedDetail(d, v, movedAt)
}

func errMoveAfterMove(n *syntax.Name, v *types.Var, movedAt syntax.Pos) error {
	d := diag.Errorf(diag.MovedValue,
		diag.At(usePos(n, v), len(n.Value), "attempt to move again"),
		"cannot move already moved value `%s`", n.Value)
	return movedDetail(d, v, movedAt)
}

func movedDetail(d *diag.Diagnostic, v *types.Var, movedAt syntax.Pos) *diag.Diagnostic {
	if movedAt.IsValid() {
		d.WithSecondary(diag.At(movedAt, len(v.Name()), "value moved here"))
	}
	return d.WithNote("move occurs because `%s` has type `%s`, which is not a copy type", v.Name(), v.Type())
}

// usePos returns the position reported for a use of name.
// A name without position falls back to the declaration.
func usePos(n *syntax.Name, v *types.Var) syntax.Pos {
	if n.Pos().IsValid() {
		return n.Pos()
	}
	return v.Pos()
}
