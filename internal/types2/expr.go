package types2

import (
	"go/constant"

	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// TypeOf infers the type of expression n in the checker's current scope.
// It never fails: anything it cannot classify is unknown.
func (c *Checker) TypeOf(n syntax.Node) types.Type {
	return c.typeOf(n)
}

func (c *Checker) typeOf(n syntax.Node) types.Type {
	typ := c.infer(n)
	c.recordType(n, typ)
	return typ
}

func (c *Checker) infer(node syntax.Node) types.Type {
	switch n := node.(type) {
	case *syntax.BasicLit:
		return literalType(n.Value)

	case *syntax.Name:
		if obj, _ := c.scope.LookupParent(n.Value); obj != nil {
			return obj.Type()
		}

	case *syntax.Operation:
		if n.Unary() {
			return c.unary(n)
		}
		if isComparison(n.Op) {
			return types.Typ[types.Bool]
		}
		x := c.typeOf(n.X)
		y := c.typeOf(n.Y)
		switch {
		case types.IsFloatType(x) || types.IsFloatType(y):
			return types.Typ[types.Float]
		case types.IsStringType(x) || types.IsStringType(y):
			return types.Typ[types.String]
		}
		return x

	case *syntax.CallExpr:
		if fn, ok := n.Fun.(*syntax.Name); ok {
			if sig := c.lookupFunc(fn.Value); sig != nil {
				return sig.Result()
			}
		}

	case *syntax.SelectorExpr:
		if st := c.lookupStruct(c.typeOf(n.X)); st != nil {
			if f := st.LookupField(n.Sel); f != nil {
				return f.Type()
			}
		}
	}
	return types.Typ[types.Unknown]
}

// unary infers the type of a unary operation. Taking an address wraps the
// operand type in a pointer and dereferencing unwraps one. Dereferencing
// a non-pointer yields the operand type unchanged.
func (c *Checker) unary(n *syntax.Operation) types.Type {
	x := c.typeOf(n.X)
	switch n.Op {
	case "&":
		return types.NewPointer(x)
	case "*":
		return types.Deref(x)
	}
	return x
}

// literalType returns the type of a literal value. Integers must fit in
// 64 bits.
func literalType(v constant.Value) types.Type {
	if v == nil {
		return types.Typ[types.Unknown]
	}
	switch v.Kind() {
	case constant.Int:
		if _, exact := constant.Int64Val(v); exact {
			return types.Typ[types.Int]
		}
	case constant.Float:
		return types.Typ[types.Float]
	case constant.Bool:
		return types.Typ[types.Bool]
	case constant.String:
		return types.Typ[types.String]
	}
	return types.Typ[types.Unknown]
}

// isComparison reports whether op yields a boolean regardless of its
// operand types.
func isComparison(op string) bool {
	switch syntax.LookupOperator(op) {
	case syntax.Eql, syntax.Neq, syntax.Lss, syntax.Gtr, syntax.Leq, syntax.Geq, syntax.AndAnd, syntax.OrOr:
		return true
	}
	return false
}
