package ownership

import (
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// walk checks node and its children depth first, stopping at the first
// violation.
func (a *Analyzer) walk(node syntax.Node) error {
	switch n := node.(type) {
	case nil:
		return nil

	case *syntax.Program:
		return a.walkList(n.Body)

	case *syntax.VarDecl:
		if err := a.walk(n.Init); err != nil {
			return err
		}
		return a.declareVar(n)

	case *syntax.FuncDecl:
		if err := a.declareFunc(n); err != nil {
			return err
		}
		return a.funcBody(n, "function "+n.Name)

	case *syntax.StructDecl:
		return a.structDecl(n)

	case *syntax.BlockStmt:
		a.openScope(n.Pos(), "block")
		if err := a.walkList(n.Stmts); err != nil {
			return err
		}
		a.closeScope()

	case *syntax.ExprStmt:
		return a.walk(n.X)

	case *syntax.AssignExpr:
		return a.assign(n)

	case *syntax.Name:
		return a.use(n)

	case *syntax.CallExpr:
		return a.call(n)

	case *syntax.Operation:
		if err := a.walk(n.X); err != nil {
			return err
		}
		return a.walk(n.Y)

	case *syntax.SelectorExpr:
		return a.walk(n.X)

	case *syntax.IfStmt:
		return a.ifStmt(n)

	case *syntax.WhileStmt:
		if err := a.walk(n.Cond); err != nil {
			return err
		}
		return a.walk(n.Body)

	case *syntax.ForStmt:
		a.openScope(n.Pos(), "for")
		for _, part := range []syntax.Node{n.Init, n.Cond, n.Post, n.Body} {
			if err := a.walk(part); err != nil {
				return err
			}
		}
		a.closeScope()

	case *syntax.ReturnStmt:
		return a.walk(n.Result)

	// Literals, branch statements and unknown nodes own no variables.
	}
	return nil
}

func (a *Analyzer) walkList(list []syntax.Node) error {
	for _, n := range list {
		if err := a.walk(n); err != nil {
			return err
		}
	}
	return nil
}

// funcBody walks the body of a function in a scope of its own.
// Parameters are not tracked.
func (a *Analyzer) funcBody(d *syntax.FuncDecl, comment string) error {
	a.openScope(d.Pos(), comment)
	if err := a.walk(d.Body); err != nil {
		return err
	}
	a.closeScope()
	return nil
}

// structDecl walks the methods of a struct. Methods live in the struct's
// namespace, so they are not entered into the function table.
func (a *Analyzer) structDecl(d *syntax.StructDecl) error {
	for _, m := range d.Methods {
		if fd, ok := m.(*syntax.FuncDecl); ok {
			if err := a.funcBody(fd, "method "+d.Name+"."+fd.Name); err != nil {
				return err
			}
			continue
		}
		if err := a.walk(m); err != nil {
			return err
		}
	}
	return nil
}

// use checks a read of a variable.
func (a *Analyzer) use(n *syntax.Name) error {
	v := a.lookupVar(n.Value)
	if v == nil {
		return nil
	}
	if s := a.slot(v); s.state == Moved {
		return errUseAfterMove(n, v, s.movedAt)
	}
	return nil
}

// assign checks an assignment. The right-hand side is evaluated first.
// Assigning to a moved variable gives it a new value, so the target is
// owned again afterwards.
func (a *Analyzer) assign(n *syntax.AssignExpr) error {
	if err := a.walk(n.Rhs); err != nil {
		return err
	}

	name, ok := n.Lhs.(*syntax.Name)
	if !ok {
		return a.walk(n.Lhs)
	}
	v := a.lookupVar(name.Value)
	if v == nil {
		return nil
	}
	if v.IsConst() {
		return errAssignConst(n, v)
	}
	// A moved target counts as a use of the moved value.
	return a.use(name)
}

// call checks a call. Each argument that names a variable of a move-only
// type moves the variable, unless the callee is a builtin that only
// inspects its arguments.
func (a *Analyzer) call(n *syntax.CallExpr) error {
	consumes := true
	if fn, ok := n.Fun.(*syntax.Name); ok && types.LookupBuiltin(fn.Value) != nil {
		consumes = false
	}

	for _, arg := range n.Args {
		name, ok := arg.(*syntax.Name)
		if !ok {
			if err := a.walk(arg); err != nil {
				return err
			}
			continue
		}

		v := a.lookupVar(name.Value)
		if v == nil || types.IsCopy(v.Type()) {
			continue
		}
		s := a.slot(v)
		if s.state == Moved {
			return errMoveAfterMove(name, v, s.movedAt)
		}
		if consumes {
			s.state = Moved
			s.movedAt = usePos(name, v)
		}
	}
	return nil
}

// ifStmt walks both arms of an if statement against the state at branch
// entry, then merges: a variable moved in either arm is moved afterwards.
func (a *Analyzer) ifStmt(n *syntax.IfStmt) error {
	if err := a.walk(n.Cond); err != nil {
		return err
	}

	entry := a.arena.snapshot()
	if err := a.walk(n.Then); err != nil {
		return err
	}
	then := a.arena.snapshot()

	a.arena.restore(entry)
	if err := a.walk(n.Else); err != nil {
		return err
	}

	a.arena.merge(then)
	return nil
}
