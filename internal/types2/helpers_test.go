package types2

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/you-not-fish/fax/internal/diag"
	"github.com/you-not-fish/fax/internal/syntax"
)

// Trees are written in their wire form with the helpers below and
// decoded the way the driver decodes them.

func program(stmts ...string) string {
	return `{"type": "Program", "body": [` + strings.Join(stmts, ",\n") + `]}`
}

func block(stmts ...string) string {
	return `{"type": "BlockStatement", "body": [` + strings.Join(stmts, ", ") + `]}`
}

func lit(v string) string { return `{"type": "Literal", "value": ` + v + `}` }

func id(name string) string { return fmt.Sprintf(`{"type": "Identifier", "name": %q}`, name) }

// let declares a variable; an empty init omits the initializer.
func let(name, typ, init string) string {
	s := fmt.Sprintf(`{"type": "VariableDeclaration", "identifier": %q, "dataType": %q`, name, typ)
	if init != "" {
		s += `, "initializer": ` + init
	}
	return s + "}"
}

// fn declares a function. params alternates names and types.
func fn(name, result string, params []string, body string) string {
	var ps []string
	for i := 0; i+1 < len(params); i += 2 {
		ps = append(ps, fmt.Sprintf(`{"name": %q, "type": %q}`, params[i], params[i+1]))
	}
	return fmt.Sprintf(`{"type": "FunctionDeclaration", "name": %q, "params": [%s], "returnType": %q, "body": %s}`,
		name, strings.Join(ps, ", "), result, body)
}

func structDecl(name string, fields []string, methods ...string) string {
	var fs []string
	for i := 0; i+1 < len(fields); i += 2 {
		fs = append(fs, fmt.Sprintf(`{"name": %q, "type": %q}`, fields[i], fields[i+1]))
	}
	return fmt.Sprintf(`{"type": "StructDeclaration", "name": %q, "fields": [%s], "methods": [%s]}`,
		name, strings.Join(fs, ", "), strings.Join(methods, ", "))
}

func call(callee string, args ...string) string {
	return fmt.Sprintf(`{"type": "CallExpression", "callee": %s, "arguments": [%s]}`, id(callee), strings.Join(args, ", "))
}

func stmt(x string) string { return `{"type": "ExpressionStatement", "expression": ` + x + `}` }

func assign(l, r string) string {
	return `{"type": "AssignmentExpression", "left": ` + l + `, "right": ` + r + `}`
}

func bin(op, l, r string) string {
	return fmt.Sprintf(`{"type": "BinaryExpression", "operator": %q, "left": %s, "right": %s}`, op, l, r)
}

func un(op, x string) string {
	return fmt.Sprintf(`{"type": "UnaryExpression", "operator": %q, "argument": %s}`, op, x)
}

func member(obj, prop string) string {
	return fmt.Sprintf(`{"type": "MemberExpression", "object": %s, "property": %q}`, obj, prop)
}

func ret(x string) string {
	if x == "" {
		return `{"type": "ReturnStatement"}`
	}
	return `{"type": "ReturnStatement", "argument": ` + x + `}`
}

// at adds a position to a node.
func at(node string, line, col int) string {
	return strings.TrimSuffix(node, "}") + fmt.Sprintf(`, "position": {"line": %d, "column": %d}}`, line, col)
}

func decode(t *testing.T, src string) syntax.Node {
	t.Helper()
	root, err := syntax.DecodeTree([]byte(src))
	if err != nil {
		t.Fatalf("DecodeTree: %v\n%s", err, src)
	}
	return root
}

// decodeAndCheck decodes a tree and runs the type checker.
func decodeAndCheck(t *testing.T, src string) (*Info, error) {
	t.Helper()
	info := &Info{}
	err := Check(decode(t, src), nil, info)
	return info, err
}

// expectNoErrors checks that the tree type-checks without errors.
func expectNoErrors(t *testing.T, src string) *Info {
	t.Helper()
	info, err := decodeAndCheck(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return info
}

// expectCode checks that type-checking fails with the given code and message.
func expectCode(t *testing.T, src string, code diag.Code, msg string) *diag.Diagnostic {
	t.Helper()
	_, err := decodeAndCheck(t, src)
	if err == nil {
		t.Fatalf("expected %s %q, got none", code, msg)
	}
	var d *diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("error is %T, want *diag.Diagnostic", err)
	}
	if d.Code != code || d.Message != msg {
		t.Fatalf("got %s %q (%s), want %s %q", d.Code, d.Message, d.PrimarySpan.Label, code, msg)
	}
	return d
}

// expectLabel checks the label of the primary span.
func expectLabel(t *testing.T, d *diag.Diagnostic, label string) {
	t.Helper()
	if d.PrimarySpan.Label != label {
		t.Errorf("label = %q, want %q", d.PrimarySpan.Label, label)
	}
}
