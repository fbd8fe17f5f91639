package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the tree to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints node under a label, one level deeper.
func (p *printer) child(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) list(label string, nodes []Node) {
	if len(nodes) == 0 {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	for _, n := range nodes {
		p.print(n)
	}
	p.indent--
}

func (p *printer) fields(label string, fields []*Field) {
	if len(fields) == 0 {
		return
	}
	p.printf("%s:\n", label)
	p.indent++
	for _, f := range fields {
		p.printf("%s %s\n", f.Name, f.Type)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program\n")
		p.indent++
		for _, s := range n.Body {
			p.print(s)
		}
		p.indent--

	case *VarDecl:
		kw := "let"
		if n.Const {
			kw = "const"
		}
		p.printf("VarDecl %s %s %s: %s\n", n.pos, kw, n.Name, n.Type)
		if n.Init != nil {
			p.indent++
			p.child("Init", n.Init)
			p.indent--
		}

	case *FuncDecl:
		p.printf("FuncDecl %s %s -> %s\n", n.pos, n.Name, n.Result)
		p.indent++
		p.fields("Params", n.Params)
		p.child("Body", n.Body)
		p.indent--

	case *StructDecl:
		p.printf("StructDecl %s %s\n", n.pos, n.Name)
		p.indent++
		p.fields("Fields", n.Fields)
		p.list("Methods", n.Methods)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *AssignExpr:
		p.printf("AssignExpr %s\n", n.pos)
		p.indent++
		p.child("LHS", n.Lhs)
		p.child("RHS", n.Rhs)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.child("Fun", n.Fun)
		p.list("Args", n.Args)
		p.indent--

	case *SelectorExpr:
		p.printf("SelectorExpr %s .%s\n", n.pos, n.Sel)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Operation:
		if n.Unary() {
			p.printf("UnaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.indent--
		} else {
			p.printf("BinaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.child("X", n.X)
			p.child("Y", n.Y)
			p.indent--
		}

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		if n.Else != nil {
			p.child("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Body", n.Body)
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		if n.Init != nil {
			p.child("Init", n.Init)
		}
		if n.Cond != nil {
			p.child("Cond", n.Cond)
		}
		if n.Post != nil {
			p.child("Post", n.Post)
		}
		p.child("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *BranchStmt:
		p.printf("BranchStmt %s %s\n", n.pos, n.Tok)

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s\n", n.pos, litString(n))

	case *Unknown:
		p.printf("Unknown %s %q\n", n.pos, n.Type)

	default:
		p.printf("%T\n", n)
	}
}

func litString(n *BasicLit) string {
	if n.Value == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", strings.ToLower(n.Value.Kind().String()), n.Value.ExactString())
}
