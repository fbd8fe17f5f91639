package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/you-not-fish/fax/internal/syntax"
)

// Scope is one level of a scope stack. The analyzers push a scope on
// entry to a function body, block or for header and drop it on exit, so a
// scope only knows the scopes enclosing it.
type Scope struct {
	parent  *Scope
	depth   int // 0 for a scope without parent
	elems   map[string]Object
	pos     syntax.Pos
	comment string // debugging comment (e.g., "function foo", "block")
}

// NewScope creates a new scope nested in parent.
func NewScope(parent *Scope, pos syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		pos:     pos,
		comment: comment,
	}
	if parent != nil {
		s.depth = parent.depth + 1
	}
	return s
}

// Parent returns the enclosing scope, or nil for the outermost scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Depth returns the number of scopes enclosing s.
func (s *Scope) Depth() int {
	return s.depth
}

// Pos returns the start position of the scope in source.
func (s *Scope) Pos() syntax.Pos {
	return s.pos
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the object with the given name in the current scope.
// Returns nil if not found in this scope (does not search parent scopes).
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent returns the object with the given name by searching
// from the current scope up through all parent scopes.
// Returns the object and the scope in which it was found.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, returns the existing object.
// Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	obj.setParent(s)
	return nil
}

// Replace inserts obj, overwriting any object of the same name in this
// scope. It returns the object that was replaced, or nil.
func (s *Scope) Replace(obj Object) Object {
	name := obj.Name()
	old := s.elems[name]
	s.elems[name] = obj
	obj.setParent(s)
	return old
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NumObjects returns the number of objects in the scope.
func (s *Scope) NumObjects() int {
	return len(s.elems)
}

// String returns the stack of scopes visible from s, outermost first,
// each nested in the one enclosing it:
//
//	scope global {
//	  s: string
//	  scope block {
//	    p: ptr<int>
//	  }
//	}
func (s *Scope) String() string {
	stack := make([]*Scope, s.depth+1)
	for scope := s; scope != nil; scope = scope.parent {
		stack[scope.depth] = scope
	}

	var buf strings.Builder
	for i, scope := range stack {
		prefix := strings.Repeat("  ", i)
		fmt.Fprintf(&buf, "%sscope %s {\n", prefix, scope.comment)
		for _, name := range scope.Names() {
			fmt.Fprintf(&buf, "%s  %s: %s\n", prefix, name, scope.elems[name].Type())
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&buf, "%s}\n", strings.Repeat("  ", i))
	}
	return buf.String()
}
