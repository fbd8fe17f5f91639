package types

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"int", Typ[Int]},
		{"float", Typ[Float]},
		{"bool", Typ[Bool]},
		{"string", Typ[String]},
		{"void", Typ[Void]},
		{"auto", Typ[Auto]},
		{"unknown", Typ[Unknown]},
		{"ptr<int>", NewPointer(Typ[Int])},
		{"ptr<ptr<float>>", NewPointer(NewPointer(Typ[Float]))},
		{"Point", NewNamed("Point")},
		{"ptr<Point>", NewPointer(NewNamed("Point"))},
		{"ptr<int", NewNamed("ptr<int")},
		{"ptr<>", NewPointer(NewNamed(""))},
		{"", NewNamed("")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Parse(tt.in)
			if !Identical(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("Parse(%q).String() = %q", tt.in, got.String())
			}
		})
	}
}

// Identical must agree with comparing the written type names.
func TestIdenticalMatchesSpelling(t *testing.T) {
	names := []string{
		"int", "float", "bool", "string", "auto", "unknown", "Point", "Line",
		"ptr<int>", "ptr<float>", "ptr<Point>", "ptr<ptr<int>>", "ptr<unknown>",
	}
	for _, a := range names {
		for _, b := range names {
			if got, want := Identical(Parse(a), Parse(b)), a == b; got != want {
				t.Errorf("Identical(%s, %s) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestIdenticalFunc(t *testing.T) {
	a := NewFunc([]*Var{NewVar(NoPos, "x", Typ[Int])}, Typ[Bool])
	b := NewFunc([]*Var{NewVar(NoPos, "y", Typ[Int])}, Typ[Bool])
	c := NewFunc([]*Var{NewVar(NoPos, "x", Typ[Float])}, Typ[Bool])

	if !Identical(a, b) {
		t.Errorf("functions differing only in parameter names are not identical")
	}
	if Identical(a, c) {
		t.Errorf("functions with different parameter types are identical")
	}
	if Identical(a, nil) {
		t.Errorf("Identical(fn, nil) = true")
	}
}

func TestIsCopy(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{Typ[Int], true},
		{Typ[Float], true},
		{Typ[Bool], true},
		{Typ[String], false},
		{Typ[Char], false},
		{Typ[Void], false},
		{Typ[Unknown], false},
		{Typ[Auto], false},
		{NewNamed("Point"), false},
		{NewPointer(Typ[Int]), false},
	}

	for _, tt := range tests {
		if got := IsCopy(tt.typ); got != tt.want {
			t.Errorf("IsCopy(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestSentinels(t *testing.T) {
	if !IsUnknown(Typ[Unknown]) || IsUnknown(Typ[Int]) || IsUnknown(NewNamed("unknown2")) {
		t.Errorf("IsUnknown misclassifies")
	}
	if !IsAuto(Parse("auto")) || IsAuto(Typ[Void]) {
		t.Errorf("IsAuto misclassifies")
	}
	if Known(Typ[Int], Typ[Unknown]) || !Known(Typ[Int], Typ[String]) {
		t.Errorf("Known misclassifies")
	}
}

func TestDeref(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ptr<int>", "int"},
		{"ptr<ptr<int>>", "ptr<int>"},
		{"int", "int"},
		{"Point", "Point"},
	}
	for _, tt := range tests {
		if got := Deref(Parse(tt.in)).String(); got != tt.want {
			t.Errorf("Deref(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsStringType(Typ[String]) || IsStringType(NewNamed("string2")) || IsStringType(Parse("ptr<string>")) {
		t.Errorf("IsStringType misclassifies")
	}
	if !IsFloatType(Typ[Float]) || IsFloatType(Typ[Int]) || IsFloatType(Typ[Unknown]) {
		t.Errorf("IsFloatType misclassifies")
	}
}
