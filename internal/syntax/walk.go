package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a tree in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkList(n.Body, v)

	case *VarDecl:
		if n.Init != nil {
			Walk(n.Init, v)
		}

	case *FuncDecl:
		Walk(n.Body, v)

	case *StructDecl:
		walkList(n.Methods, v)

	case *BlockStmt:
		walkList(n.Stmts, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *AssignExpr:
		Walk(n.Lhs, v)
		Walk(n.Rhs, v)

	case *CallExpr:
		Walk(n.Fun, v)
		walkList(n.Args, v)

	case *SelectorExpr:
		Walk(n.X, v)

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		if n.Post != nil {
			Walk(n.Post, v)
		}
		Walk(n.Body, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	// Leaf nodes: Name, BasicLit, BranchStmt, Unknown
	// No children to visit
	}
}

func walkList(list []Node, v Visitor) {
	for _, n := range list {
		Walk(n, v)
	}
}

// Inspect traverses a tree and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	count := 0
	Inspect(node, func(Node) bool {
		count++
		return true
	})
	return count
}
