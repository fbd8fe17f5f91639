// Package ownership checks Fax program trees for ownership violations:
// use of a moved value, a second move of the same value, assignment to a
// constant, and conflicting declarations.
//
// Variables whose type is not a copy type start out owned and become
// moved when passed by name to any function other than println. The
// analysis is flow sensitive at if statements: a value moved on either
// branch is moved after the statement.
package ownership

import (
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types"
)

// Analyzer is the ownership analyzer.
// An Analyzer may be reused; each call to Analyze starts from empty tables.
type Analyzer struct {
	global *types.Scope // outermost variable scope
	scope  *types.Scope // current variable scope
	bases  []int        // arena length at entry of each open scope

	// Functions are not scoped; a single table lives for the whole run.
	funcs *types.Scope

	arena arena
	index map[*types.Var]int // arena index of each live variable
}

// New returns a new analyzer.
func New() *Analyzer {
	a := new(Analyzer)
	a.reset()
	return a
}

// Analyze checks the tree rooted at root. It returns nil if the tree is
// valid, or the first violation as a *diag.Diagnostic.
func Analyze(root syntax.Node) error {
	return New().Analyze(root)
}

// Analyze checks the tree rooted at root. It returns nil if the tree is
// valid, or the first violation as a *diag.Diagnostic. The tree is not
// modified.
func (a *Analyzer) Analyze(root syntax.Node) error {
	a.reset()
	return a.walk(root)
}

func (a *Analyzer) reset() {
	a.global = types.NewScope(nil, syntax.Pos{}, "global")
	a.scope = a.global
	a.bases = a.bases[:0]
	a.funcs = types.NewScope(nil, syntax.Pos{}, "functions")
	a.arena = arena{}
	a.index = make(map[*types.Var]int)
}

// State returns the ownership state of the variable name as seen from the
// current scope. After a successful Analyze the current scope is the
// global scope.
func (a *Analyzer) State(name string) (State, bool) {
	v := a.lookupVar(name)
	if v == nil {
		return 0, false
	}
	return a.arena.slots[a.index[v]].state, true
}

// Scope returns the global variable scope.
func (a *Analyzer) Scope() *types.Scope {
	return a.global
}

// ----------------------------------------------------------------------------
// Scopes

// openScope pushes a new variable scope.
func (a *Analyzer) openScope(pos syntax.Pos, comment string) {
	a.scope = types.NewScope(a.scope, pos, comment)
	a.bases = append(a.bases, a.arena.len())
}

// closeScope pops the current scope and releases its variables.
func (a *Analyzer) closeScope() {
	base := a.bases[len(a.bases)-1]
	a.bases = a.bases[:len(a.bases)-1]
	for _, s := range a.arena.truncate(base) {
		delete(a.index, s.v)
	}
	a.scope = a.scope.Parent()
}

// lookupVar returns the innermost variable called name, or nil.
func (a *Analyzer) lookupVar(name string) *types.Var {
	obj, _ := a.scope.LookupParent(name)
	v, _ := obj.(*types.Var)
	return v
}

func (a *Analyzer) slot(v *types.Var) *slot {
	return &a.arena.slots[a.index[v]]
}

// declareVar defines a variable in the current scope.
func (a *Analyzer) declareVar(d *syntax.VarDecl) error {
	if fn := a.funcs.Lookup(d.Name); fn != nil {
		return errVarConflictsWithFunc(d, fn)
	}
	if prev := a.scope.Lookup(d.Name); prev != nil {
		return errVarRedefined(d, prev)
	}

	var v *types.Var
	if d.Const {
		v = types.NewConst(d.Pos(), d.Name, types.Parse(d.Type))
	} else {
		v = types.NewVar(d.Pos(), d.Name, types.Parse(d.Type))
	}
	a.scope.Insert(v)
	a.index[v] = a.arena.alloc(v)
	return nil
}

// declareFunc enters a function into the function table.
func (a *Analyzer) declareFunc(d *syntax.FuncDecl) error {
	if v := a.lookupVar(d.Name); v != nil {
		return errFuncConflictsWithVar(d, v)
	}
	if prev := a.funcs.Lookup(d.Name); prev != nil {
		return errFuncRedefined(d, prev)
	}

	params := make([]*types.Var, len(d.Params))
	for i, p := range d.Params {
		params[i] = types.NewVar(d.Pos(), p.Name, types.Parse(p.Type))
	}
	a.funcs.Insert(types.NewFuncObj(d.Pos(), d.Name, types.NewFunc(params, types.Parse(d.Result))))
	return nil
}
