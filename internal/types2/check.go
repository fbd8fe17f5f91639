package types2

import (
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// Checker is the type checker.
type Checker struct {
	conf *Config
	info *Info

	// Current checking context
	scope *types.Scope // current variable scope

	// Function context
	funcSig *types.Func // signature of the enclosing function, nil at top level

	// Top-level tables, filled before any body is checked so that
	// forward references resolve.
	funcs   *types.Scope // function name -> *types.FuncObj
	structs *types.Scope // struct name -> *types.TypeName of a *types.Struct
}

// NewChecker returns a checker with empty tables.
func NewChecker(conf *Config, info *Info) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	return &Checker{
		conf:    conf,
		info:    info,
		scope:   types.NewScope(nil, syntax.Pos{}, "global"),
		funcs:   types.NewScope(nil, syntax.Pos{}, "functions"),
		structs: types.NewScope(nil, syntax.Pos{}, "structs"),
	}
}

// check checks a whole tree. A Program is checked in two phases:
// collecting signatures, then checking every statement.
func (c *Checker) check(root syntax.Node) error {
	if prog, ok := root.(*syntax.Program); ok {
		c.collectDecls(prog.Body)
	}
	return c.stmt(root)
}

// collectDecls enters the top-level functions and structs into their
// tables. A later declaration replaces an earlier one of the same name.
func (c *Checker) collectDecls(decls []syntax.Node) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *syntax.FuncDecl:
			c.funcs.Replace(types.NewFuncObj(d.Pos(), d.Name, c.signature(d)))
		case *syntax.StructDecl:
			fields := make([]*types.Var, len(d.Fields))
			for i, f := range d.Fields {
				fields[i] = types.NewField(d.Pos(), f.Name, types.Parse(f.Type))
			}
			c.structs.Replace(types.NewTypeName(d.Pos(), d.Name, types.NewStruct(fields)))
		}
	}
}

// signature returns the signature declared by d.
func (c *Checker) signature(d *syntax.FuncDecl) *types.Func {
	params := make([]*types.Var, len(d.Params))
	for i, p := range d.Params {
		params[i] = types.NewVar(d.Pos(), p.Name, types.Parse(p.Type))
	}
	return types.NewFunc(params, types.Parse(d.Result))
}

// lookupFunc returns the signature of the top-level function name, or nil.
func (c *Checker) lookupFunc(name string) *types.Func {
	if obj, ok := c.funcs.Lookup(name).(*types.FuncObj); ok {
		return obj.Signature()
	}
	return nil
}

// lookupStruct returns the layout of the struct written as T, or nil.
func (c *Checker) lookupStruct(T types.Type) *types.Struct {
	if obj := c.structs.Lookup(T.String()); obj != nil {
		return obj.Type().(*types.Struct)
	}
	return nil
}

// openScope pushes a new variable scope.
func (c *Checker) openScope(pos syntax.Pos, comment string) {
	c.scope = types.NewScope(c.scope, pos, comment)
}

// closeScope pops the current scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// declare binds name to typ in the current scope, replacing any earlier
// binding of the same name there.
func (c *Checker) declare(pos syntax.Pos, name string, typ types.Type) {
	c.scope.Replace(types.NewVar(pos, name, typ))
}

// recordType records the inferred type of expression n.
func (c *Checker) recordType(n syntax.Node, typ types.Type) {
	if c.info != nil && c.info.Types != nil {
		c.info.Types[n] = typ
	}
}
