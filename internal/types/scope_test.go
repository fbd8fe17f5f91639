package types

import (
	"testing"

	"github.com/you-not-fish/fax/internal/syntax"
)

// Helper function to create a scope for testing
func testScope(parent *Scope, comment string) *Scope {
	return NewScope(parent, syntax.Pos{}, comment)
}

func TestScopeInsertAndLookup(t *testing.T) {
	scope := testScope(nil, "test")

	obj := NewVar(syntax.Pos{}, "x", Typ[Int])
	existing := scope.Insert(obj)

	if existing != nil {
		t.Errorf("Insert() returned non-nil for first insert")
	}

	found := scope.Lookup("x")
	if found != obj {
		t.Errorf("Lookup() did not return inserted object")
	}

	// Insert duplicate
	obj2 := NewVar(syntax.Pos{}, "x", Typ[Float])
	existing = scope.Insert(obj2)
	if existing != obj {
		t.Errorf("Insert() should return first object for duplicate")
	}
}

func TestScopeLookupParent(t *testing.T) {
	parent := testScope(nil, "parent")
	child := testScope(parent, "child")

	obj := NewVar(syntax.Pos{}, "x", Typ[Int])
	parent.Insert(obj)

	// Lookup in child should find parent's object
	found, foundScope := child.LookupParent("x")
	if found != obj {
		t.Errorf("LookupParent() did not find parent's object")
	}
	if foundScope != parent {
		t.Errorf("LookupParent() returned wrong scope")
	}

	// Direct lookup in child should fail
	if child.Lookup("x") != nil {
		t.Errorf("Lookup() should not find parent's object")
	}
}

func TestScopeShadowing(t *testing.T) {
	parent := testScope(nil, "parent")
	child := testScope(parent, "child")

	parentObj := NewVar(syntax.Pos{}, "x", Typ[Int])
	parent.Insert(parentObj)

	childObj := NewVar(syntax.Pos{}, "x", Typ[Float])
	child.Insert(childObj)

	// LookupParent in child should find child's object (shadowing)
	found, foundScope := child.LookupParent("x")
	if found != childObj {
		t.Errorf("LookupParent() should find child's shadowing object")
	}
	if foundScope != child {
		t.Errorf("LookupParent() should return child scope")
	}
}

func TestScopeHierarchy(t *testing.T) {
	// Universe -> Program -> Function -> Block
	universe := testScope(nil, "universe")
	pkg := testScope(universe, "program")
	fn := testScope(pkg, "function")
	block := testScope(fn, "block")

	// Insert at different levels
	universe.Insert(NewTypeName(syntax.Pos{}, "int", Typ[Int]))
	pkg.Insert(NewVar(syntax.Pos{}, "globalX", Typ[Int]))
	fn.Insert(NewVar(syntax.Pos{}, "param", Typ[Int]))
	block.Insert(NewVar(syntax.Pos{}, "local", Typ[Int]))

	// All should be visible from block
	tests := []string{"int", "globalX", "param", "local"}
	for _, name := range tests {
		found, _ := block.LookupParent(name)
		if found == nil {
			t.Errorf("LookupParent(%q) failed from block", name)
		}
	}
}

func TestScopeNames(t *testing.T) {
	scope := testScope(nil, "test")

	scope.Insert(NewVar(syntax.Pos{}, "a", Typ[Int]))
	scope.Insert(NewVar(syntax.Pos{}, "b", Typ[Float]))
	scope.Insert(NewVar(syntax.Pos{}, "c", Typ[Bool]))

	names := scope.Names()
	if len(names) != 3 {
		t.Errorf("Names() returned %d names, want 3", len(names))
	}

	// Names should be sorted
	expected := []string{"a", "b", "c"}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestScopeParent(t *testing.T) {
	parent := testScope(nil, "parent")
	child := testScope(parent, "child")

	if child.Parent() != parent {
		t.Errorf("Parent() != expected parent")
	}
	if parent.Parent() != nil {
		t.Errorf("Parent() should be nil for root scope")
	}
}

func TestScopeComment(t *testing.T) {
	scope := testScope(nil, "my comment")
	if scope.Comment() != "my comment" {
		t.Errorf("Comment() = %q, want %q", scope.Comment(), "my comment")
	}
}

func TestObjectParentScope(t *testing.T) {
	scope := testScope(nil, "test")
	obj := NewVar(syntax.Pos{}, "x", Typ[Int])

	if obj.Parent() != nil {
		t.Errorf("Parent() should be nil before insertion")
	}

	scope.Insert(obj)

	if obj.Parent() != scope {
		t.Errorf("Parent() should be set after insertion")
	}
}

func TestScopeDepth(t *testing.T) {
	global := testScope(nil, "global")
	fn := testScope(global, "function main")
	block := testScope(fn, "block")
	sibling := testScope(fn, "block")

	for _, tt := range []struct {
		scope *Scope
		want  int
	}{{global, 0}, {fn, 1}, {block, 2}, {sibling, 2}} {
		if got := tt.scope.Depth(); got != tt.want {
			t.Errorf("%s: Depth() = %d, want %d", tt.scope.Comment(), got, tt.want)
		}
	}
}

func TestScopeReplace(t *testing.T) {
	scope := testScope(nil, "test")
	first := NewVar(syntax.NewPos(1, 5), "x", Typ[Int])
	second := NewVar(syntax.NewPos(2, 5), "x", Typ[String])

	if old := scope.Replace(first); old != nil {
		t.Errorf("Replace() on empty scope returned %v", old)
	}
	if old := scope.Replace(second); old != first {
		t.Errorf("Replace() returned %v, want first object", old)
	}
	if scope.Lookup("x") != second {
		t.Errorf("Lookup() did not return the replacement")
	}
	if scope.NumObjects() != 1 {
		t.Errorf("NumObjects() = %d, want 1", scope.NumObjects())
	}
}

func TestScopeString(t *testing.T) {
	root := testScope(nil, "global")
	root.Insert(NewVar(syntax.Pos{}, "s", Typ[String]))
	block := testScope(root, "block")
	block.Insert(NewVar(syntax.Pos{}, "p", NewPointer(Typ[Int])))

	want := `scope global {
  s: string
  scope block {
    p: ptr<int>
  }
}
`
	if got := block.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	// The outer scope does not see the block.
	if got, want := root.String(), "scope global {\n  s: string\n}\n"; got != want {
		t.Errorf("root String() =\n%s\nwant\n%s", got, want)
	}
}

func TestUniverse(t *testing.T) {
	// Universe should be initialized
	if Universe == nil {
		t.Fatal("Universe is nil")
	}

	// Check predeclared types
	for _, name := range []string{"int", "float", "bool", "string", "char", "void", "unknown", "auto"} {
		obj := Universe.Lookup(name)
		if obj == nil {
			t.Errorf("Universe.Lookup(%q) = nil", name)
			continue
		}
		tn, ok := obj.(*TypeName)
		if !ok {
			t.Errorf("Universe.Lookup(%q) is not TypeName", name)
			continue
		}
		if tn.Name() != name {
			t.Errorf("TypeName.Name() = %q, want %q", tn.Name(), name)
		}
	}

	// Only println is predeclared as a function.
	b := LookupBuiltin("println")
	if b == nil {
		t.Fatal(`LookupBuiltin("println") = nil`)
	}
	if b.Kind() != BuiltinPrintln || b.Name() != "println" {
		t.Errorf("println builtin = %+v", b)
	}
	for _, name := range []string{"new", "panic", "nil", "int"} {
		if LookupBuiltin(name) != nil {
			t.Errorf("LookupBuiltin(%q) != nil", name)
		}
	}
}
