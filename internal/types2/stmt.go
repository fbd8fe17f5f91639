package types2

import (
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// stmts checks a list of statements.
func (c *Checker) stmts(list []syntax.Node) error {
	for _, s := range list {
		if err := c.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

// stmt checks a node and its children depth first, stopping at the first
// violation.
func (c *Checker) stmt(node syntax.Node) error {
	switch n := node.(type) {
	case nil:
		return nil

	case *syntax.Program:
		return c.stmts(n.Body)

	case *syntax.FuncDecl:
		return c.funcBody(n, "function "+n.Name)

	case *syntax.StructDecl:
		for _, m := range n.Methods {
			if fd, ok := m.(*syntax.FuncDecl); ok {
				if err := c.funcBody(fd, "method "+n.Name+"."+fd.Name); err != nil {
					return err
				}
				continue
			}
			if err := c.stmt(m); err != nil {
				return err
			}
		}

	case *syntax.VarDecl:
		return c.varDecl(n)

	case *syntax.BlockStmt:
		c.openScope(n.Pos(), "block")
		if err := c.stmts(n.Stmts); err != nil {
			return err
		}
		c.closeScope()

	case *syntax.ExprStmt:
		return c.stmt(n.X)

	case *syntax.AssignExpr:
		return c.assign(n)

	case *syntax.CallExpr:
		return c.call(n)

	case *syntax.Operation:
		if n.Unary() {
			return c.stmt(n.X)
		}
		return c.binary(n)

	case *syntax.SelectorExpr:
		return c.stmt(n.X)

	case *syntax.IfStmt:
		for _, part := range []syntax.Node{n.Cond, n.Then, n.Else} {
			if err := c.stmt(part); err != nil {
				return err
			}
		}

	case *syntax.WhileStmt:
		if err := c.stmt(n.Cond); err != nil {
			return err
		}
		return c.stmt(n.Body)

	case *syntax.ForStmt:
		c.openScope(n.Pos(), "for")
		for _, part := range []syntax.Node{n.Init, n.Cond, n.Post, n.Body} {
			if err := c.stmt(part); err != nil {
				return err
			}
		}
		c.closeScope()

	case *syntax.ReturnStmt:
		return c.returnStmt(n)

	// Names, literals, branch statements and unknown nodes have nothing
	// to check.
	}
	return nil
}

// funcBody checks a function body in a new scope holding its parameters.
func (c *Checker) funcBody(d *syntax.FuncDecl, comment string) error {
	sig := c.signature(d)

	c.openScope(d.Pos(), comment)
	for _, p := range sig.Params() {
		c.declare(p.Pos(), p.Name(), p.Type())
	}

	outer := c.funcSig
	c.funcSig = sig
	if err := c.stmt(d.Body); err != nil {
		return err
	}
	c.funcSig = outer

	c.closeScope()
	return nil
}

// varDecl checks a variable declaration. An initializer must have the
// declared type unless the type was elided or cannot be inferred. The
// declared type is bound either way.
func (c *Checker) varDecl(d *syntax.VarDecl) error {
	declared := types.Parse(d.Type)
	if d.Init != nil {
		init := c.typeOf(d.Init)
		if !types.IsAuto(declared) && !types.IsUnknown(init) && !types.Identical(declared, init) {
			return c.report(errVarMismatch(d, declared, init))
		}
		if err := c.stmt(d.Init); err != nil {
			return err
		}
	}
	c.declare(d.Pos(), d.Name, declared)
	return nil
}

// assign checks that both sides of an assignment have the same type.
func (c *Checker) assign(n *syntax.AssignExpr) error {
	lhs := c.typeOf(n.Lhs)
	rhs := c.typeOf(n.Rhs)
	if types.Known(lhs, rhs) && !types.Identical(lhs, rhs) {
		return c.report(errAssignMismatch(n, lhs, rhs))
	}
	if err := c.stmt(n.Lhs); err != nil {
		return err
	}
	return c.stmt(n.Rhs)
}

// binary checks a binary operation. Only a string operand crossed with a
// non-string operand is rejected; mixing numbers and booleans is allowed.
func (c *Checker) binary(n *syntax.Operation) error {
	x := c.typeOf(n.X)
	y := c.typeOf(n.Y)
	if types.Known(x, y) && !types.Identical(x, y) && types.IsStringType(x) != types.IsStringType(y) {
		return c.report(errOperatorMismatch(n, x, y))
	}
	if err := c.stmt(n.X); err != nil {
		return err
	}
	return c.stmt(n.Y)
}

// returnStmt checks a returned value against the declared result of the
// enclosing function.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) error {
	if s.Result == nil {
		return nil
	}
	if c.funcSig != nil {
		want := c.funcSig.Result()
		got := c.typeOf(s.Result)
		if !types.IsAuto(want) && types.Known(want, got) && !types.Identical(want, got) {
			return c.report(errReturnMismatch(s, want, got))
		}
	}
	return c.stmt(s.Result)
}
