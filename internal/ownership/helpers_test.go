package ownership

import (
	"errors"
	"go/constant"
	"testing"

	"github.com/you-not-fish/fax/internal/diag"
	"github.com/you-not-fish/fax/internal/syntax"
)

// Tree builders. Positions are optional, as on the wire.

func at(line, col uint32) syntax.Pos { return syntax.NewPos(line, col) }

func withPos[N interface{ SetPos(syntax.Pos) }](n N, pos []syntax.Pos) N {
	if len(pos) > 0 {
		n.SetPos(pos[0])
	}
	return n
}

func prog(body ...syntax.Node) *syntax.Program { return &syntax.Program{Body: body} }

func block(stmts ...syntax.Node) *syntax.BlockStmt { return &syntax.BlockStmt{Stmts: stmts} }

func name(v string, pos ...syntax.Pos) *syntax.Name {
	return withPos(&syntax.Name{Value: v}, pos)
}

func str(s string) *syntax.BasicLit { return &syntax.BasicLit{Value: constant.MakeString(s)} }

func num(i int64) *syntax.BasicLit { return &syntax.BasicLit{Value: constant.MakeInt64(i)} }

func let(v, typ string, init syntax.Node, pos ...syntax.Pos) *syntax.VarDecl {
	return withPos(&syntax.VarDecl{Name: v, Type: typ, Init: init}, pos)
}

func konst(v, typ string, init syntax.Node, pos ...syntax.Pos) *syntax.VarDecl {
	return withPos(&syntax.VarDecl{Name: v, Type: typ, Const: true, Init: init}, pos)
}

func callExpr(fn string, args ...syntax.Node) *syntax.CallExpr {
	return &syntax.CallExpr{Fun: name(fn), Args: args}
}

func call(fn string, args ...syntax.Node) *syntax.ExprStmt {
	return &syntax.ExprStmt{X: callExpr(fn, args...)}
}

func assign(lhs, rhs syntax.Node, pos ...syntax.Pos) *syntax.ExprStmt {
	return &syntax.ExprStmt{X: withPos(&syntax.AssignExpr{Lhs: lhs, Rhs: rhs}, pos)}
}

func binary(op string, x, y syntax.Node) *syntax.Operation {
	return &syntax.Operation{Op: op, X: x, Y: y}
}

func unary(op string, x syntax.Node) *syntax.Operation {
	return &syntax.Operation{Op: op, X: x}
}

func fn(v string, body *syntax.BlockStmt, pos ...syntax.Pos) *syntax.FuncDecl {
	return withPos(&syntax.FuncDecl{Name: v, Result: "void", Body: body}, pos)
}

func ifStmt(cond, then, els syntax.Node) *syntax.IfStmt {
	return &syntax.IfStmt{Cond: cond, Then: then, Else: els}
}

// expectNoErrors checks that the tree passes the analysis.
func expectNoErrors(t *testing.T, root syntax.Node) *Analyzer {
	t.Helper()
	a := New()
	if err := a.Analyze(root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

// expectCode checks that the analysis fails with the given code and message.
func expectCode(t *testing.T, root syntax.Node, code diag.Code, msg string) *diag.Diagnostic {
	t.Helper()
	err := Analyze(root)
	if err == nil {
		t.Fatalf("expected %s %q, got none", code, msg)
	}
	var d *diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("error is %T, want *diag.Diagnostic", err)
	}
	if d.Code != code || d.Message != msg {
		t.Fatalf("got %s %q, want %s %q", d.Code, d.Message, code, msg)
	}
	return d
}
