package syntax

import (
	"encoding/json"
	"go/constant"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// The program tree is produced by an external parser and arrives in its
// tagged-union wire form (see json.go). Any node may appear in any child
// slot; the analyzers decide what they inspect. Positions are optional on
// the wire, and a missing one is the zero Pos.

// Node is the interface implemented by all tree nodes.
type Node interface {
	Pos() Pos // position of the node, zero if the tree carried none
	aNode()   // marker method to restrict implementations to this package
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all tree nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// SetPos sets the position of n. It is used by tests and tools that build
// trees directly.
func (n *node) SetPos(pos Pos) { n.pos = pos }

// ----------------------------------------------------------------------------
// Program and Declarations

// Program is the root of a tree.
type Program struct {
	node
	Body []Node // top-level declarations and statements
}

// VarDecl represents a variable declaration: let Name: Type = Init
type VarDecl struct {
	node
	Name  string // declared identifier
	Type  string // declared type, "auto" when elided
	Const bool   // declared const
	Init  Node   // initializer (nil if none)
}

// Field is a name/type pair used for struct fields and function parameters.
type Field struct {
	Name string
	Type string
}

// FuncDecl represents a function declaration.
// fn Name(Params) -> Result { Body }
type FuncDecl struct {
	node
	Name   string
	Params []*Field
	Result string // return type
	Body   Node   // usually a *BlockStmt
}

// StructDecl represents a struct declaration with its methods.
type StructDecl struct {
	node
	Name    string
	Fields  []*Field
	Methods []Node // method declarations, usually *FuncDecl
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	node
	Value string // identifier string
}

// BasicLit represents a literal value.
// Value has kind Int, Float, Bool or String for well-formed literals and
// Unknown for anything else the tree carried (null, arrays, objects).
type BasicLit struct {
	node
	Value constant.Value
	Raw   json.RawMessage // literal JSON text as it appeared in the tree
}

// Operation represents a unary or binary operation.
// For unary operations, Y is nil.
// For binary operations, both X and Y are set.
type Operation struct {
	node
	Op string // operator text: "+", "==", "&", "*", ...
	X  Node   // left operand (or only operand for unary)
	Y  Node   // right operand (nil for unary)
}

// Unary reports whether o is a unary operation.
func (o *Operation) Unary() bool { return o.Y == nil }

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	node
	Fun  Node   // callee
	Args []Node // argument list
}

// SelectorExpr represents a member access: X.Sel
type SelectorExpr struct {
	node
	X   Node   // object expression
	Sel string // field name
}

// AssignExpr represents an assignment: Lhs = Rhs
type AssignExpr struct {
	node
	Lhs Node
	Rhs Node
}

// ----------------------------------------------------------------------------
// Statements

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	node
	X Node // expression
}

// BlockStmt represents a block statement: { Stmts... }
type BlockStmt struct {
	node
	Stmts []Node // statements
}

// IfStmt represents an if statement: if Cond Then [else Else]
type IfStmt struct {
	node
	Cond Node // condition expression
	Then Node // consequent
	Else Node // alternate (nil if none)
}

// WhileStmt represents a while loop: while Cond { Body }
type WhileStmt struct {
	node
	Cond Node
	Body Node
}

// ForStmt represents a for loop: for Init; Cond; Post { Body }
// Init, Cond and Post may each be nil.
type ForStmt struct {
	node
	Init Node
	Cond Node
	Post Node
	Body Node
}

// ReturnStmt represents a return statement: return [Result]
type ReturnStmt struct {
	node
	Result Node // return value (nil for bare return)
}

// BranchStmt represents a break or continue statement.
type BranchStmt struct {
	node
	Tok Kind // Break or Continue
}

// Unknown stands for a node kind the analyzers do not inspect.
// Its JSON is kept so that the tree can be written back unchanged.
type Unknown struct {
	node
	Type string          // the node's "type" tag
	Raw  json.RawMessage // the complete node object
}
