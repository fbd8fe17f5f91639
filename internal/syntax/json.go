package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"io"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"
)

// ----------------------------------------------------------------------------
// Decoding
//
// A tree is a JSON object tagged by its "type" field:
//
//	{"type": "Program", "body": [
//	    {"type": "VariableDeclaration", "identifier": "x", "dataType": "int",
//	     "initializer": {"type": "Literal", "value": 1},
//	     "position": {"line": 1, "column": 5}}
//	]}
//
// Comments and trailing commas are accepted (HuJSON).

// DecodeError reports a malformed tree.
type DecodeError struct {
	Path string // location in the tree, e.g. "body[2].initializer"
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode tree: %v", e.Err)
	}
	return fmt.Sprintf("decode tree: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var (
	errMissing = errors.New("missing required field")
	errNotNode = errors.New("node is not an object with a string \"type\"")
)

// Standardize converts tree text that may contain comments or trailing
// commas into plain JSON. The input is not modified.
func Standardize(data []byte) ([]byte, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return std, nil
}

// DecodeTree decodes a tree from its wire form.
// Node kinds it does not know decode to *Unknown.
func DecodeTree(data []byte) (Node, error) {
	std, err := Standardize(data)
	if err != nil {
		return nil, err
	}
	return decodeNode("", json.RawMessage(std))
}

// object is a node's fields, still undecoded.
type object map[string]json.RawMessage

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func decodeNode(path string, data json.RawMessage) (Node, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, &DecodeError{Path: path, Err: errNotNode}
	}
	var typ string
	if err := json.Unmarshal(obj["type"], &typ); err != nil {
		return nil, &DecodeError{Path: path, Err: errNotNode}
	}

	pos, err := obj.position(path)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "Program":
		n := &Program{}
		n.pos = pos
		n.Body, err = obj.nodes(path, "body")
		return n, err

	case "VariableDeclaration":
		n := &VarDecl{}
		n.pos = pos
		if n.Name, err = obj.str(path, "identifier"); err != nil {
			return nil, err
		}
		if n.Type, err = obj.str(path, "dataType"); err != nil {
			return nil, err
		}
		if n.Const, err = obj.flag(path, "isConstant"); err != nil {
			return nil, err
		}
		n.Init, err = obj.optNode(path, "initializer")
		return n, err

	case "FunctionDeclaration":
		n := &FuncDecl{}
		n.pos = pos
		if n.Name, err = obj.str(path, "name"); err != nil {
			return nil, err
		}
		if n.Params, err = obj.fields(path, "params"); err != nil {
			return nil, err
		}
		if n.Result, err = obj.str(path, "returnType"); err != nil {
			return nil, err
		}
		n.Body, err = obj.node(path, "body")
		return n, err

	case "StructDeclaration":
		n := &StructDecl{}
		n.pos = pos
		if n.Name, err = obj.str(path, "name"); err != nil {
			return nil, err
		}
		if n.Fields, err = obj.fields(path, "fields"); err != nil {
			return nil, err
		}
		if _, ok := obj["methods"]; ok {
			n.Methods, err = obj.nodes(path, "methods")
		}
		return n, err

	case "BlockStatement":
		n := &BlockStmt{}
		n.pos = pos
		n.Stmts, err = obj.nodes(path, "body")
		return n, err

	case "ExpressionStatement":
		n := &ExprStmt{}
		n.pos = pos
		n.X, err = obj.node(path, "expression")
		return n, err

	case "AssignmentExpression":
		n := &AssignExpr{}
		n.pos = pos
		if n.Lhs, err = obj.node(path, "left"); err != nil {
			return nil, err
		}
		n.Rhs, err = obj.node(path, "right")
		return n, err

	case "CallExpression":
		n := &CallExpr{}
		n.pos = pos
		if n.Fun, err = obj.node(path, "callee"); err != nil {
			return nil, err
		}
		n.Args, err = obj.nodes(path, "arguments")
		return n, err

	case "MemberExpression":
		n := &SelectorExpr{}
		n.pos = pos
		if n.X, err = obj.node(path, "object"); err != nil {
			return nil, err
		}
		n.Sel, err = obj.str(path, "property")
		return n, err

	case "BinaryExpression":
		n := &Operation{}
		n.pos = pos
		if n.Op, err = obj.str(path, "operator"); err != nil {
			return nil, err
		}
		if n.X, err = obj.node(path, "left"); err != nil {
			return nil, err
		}
		n.Y, err = obj.node(path, "right")
		return n, err

	case "UnaryExpression":
		n := &Operation{}
		n.pos = pos
		if n.Op, err = obj.str(path, "operator"); err != nil {
			return nil, err
		}
		n.X, err = obj.node(path, "argument")
		return n, err

	case "IfStatement":
		n := &IfStmt{}
		n.pos = pos
		if n.Cond, err = obj.node(path, "test"); err != nil {
			return nil, err
		}
		if n.Then, err = obj.node(path, "consequent"); err != nil {
			return nil, err
		}
		n.Else, err = obj.optNode(path, "alternate")
		return n, err

	case "WhileStatement":
		n := &WhileStmt{}
		n.pos = pos
		if n.Cond, err = obj.node(path, "test"); err != nil {
			return nil, err
		}
		n.Body, err = obj.node(path, "body")
		return n, err

	case "ForStatement":
		n := &ForStmt{}
		n.pos = pos
		if n.Init, err = obj.optNode(path, "init"); err != nil {
			return nil, err
		}
		if n.Cond, err = obj.optNode(path, "test"); err != nil {
			return nil, err
		}
		if n.Post, err = obj.optNode(path, "update"); err != nil {
			return nil, err
		}
		n.Body, err = obj.node(path, "body")
		return n, err

	case "Identifier":
		n := &Name{}
		n.pos = pos
		n.Value, err = obj.str(path, "name")
		return n, err

	case "Literal":
		raw, ok := obj["value"]
		if !ok {
			return nil, &DecodeError{Path: join(path, "value"), Err: errMissing}
		}
		n := &BasicLit{Raw: raw}
		n.pos = pos
		n.Value, err = literalValue(raw)
		if err != nil {
			return nil, &DecodeError{Path: join(path, "value"), Err: err}
		}
		return n, nil

	case "ReturnStatement":
		n := &ReturnStmt{}
		n.pos = pos
		n.Result, err = obj.optNode(path, "argument")
		return n, err

	case "BreakStatement":
		n := &BranchStmt{Tok: Break}
		n.pos = pos
		return n, nil

	case "ContinueStatement":
		n := &BranchStmt{Tok: Continue}
		n.pos = pos
		return n, nil
	}

	n := &Unknown{Type: typ, Raw: data}
	n.pos = pos
	return n, nil
}

func (obj object) position(path string) (Pos, error) {
	raw, ok := obj["position"]
	if !ok || isNull(raw) {
		return Pos{}, nil
	}
	var p Pos
	if err := json.Unmarshal(raw, &p); err != nil {
		return Pos{}, &DecodeError{Path: join(path, "position"), Err: err}
	}
	return p, nil
}

func (obj object) str(path, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return "", &DecodeError{Path: join(path, key), Err: errMissing}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &DecodeError{Path: join(path, key), Err: err}
	}
	return s, nil
}

// flag decodes an optional boolean, false when absent.
func (obj object) flag(path, key string) (bool, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, &DecodeError{Path: join(path, key), Err: err}
	}
	return b, nil
}

func (obj object) node(path, key string) (Node, error) {
	n, err := obj.optNode(path, key)
	if err == nil && n == nil {
		err = &DecodeError{Path: join(path, key), Err: errMissing}
	}
	return n, err
}

func (obj object) optNode(path, key string) (Node, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	return decodeNode(join(path, key), raw)
}

func (obj object) nodes(path, key string) ([]Node, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, &DecodeError{Path: join(path, key), Err: errMissing}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &DecodeError{Path: join(path, key), Err: err}
	}
	list := make([]Node, len(elems))
	for i, elem := range elems {
		n, err := decodeNode(fmt.Sprintf("%s[%d]", join(path, key), i), elem)
		if err != nil {
			return nil, err
		}
		list[i] = n
	}
	return list, nil
}

// wireField is the encoding of a struct field or function parameter.
type wireField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (obj object) fields(path, key string) ([]*Field, error) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, &DecodeError{Path: join(path, key), Err: errMissing}
	}
	var ws []wireField
	if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, &DecodeError{Path: join(path, key), Err: err}
	}
	list := make([]*Field, len(ws))
	for i, w := range ws {
		list[i] = &Field{Name: w.Name, Type: w.Type}
	}
	return list, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// literalValue converts a literal's JSON value. Numbers keep their
// written form: 42 is an integer, 42.0 and 4e1 are floats.
func literalValue(raw json.RawMessage) (constant.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case json.Number:
		return numberValue(string(v)), nil
	case bool:
		return constant.MakeBool(v), nil
	case string:
		return constant.MakeString(v), nil
	}
	return constant.MakeUnknown(), nil
}

func numberValue(s string) constant.Value {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	tok := token.INT
	if strings.ContainsAny(s, ".eE") {
		tok = token.FLOAT
	}
	v := constant.MakeFromLiteral(s, tok, 0)
	if neg {
		v = constant.UnaryOp(token.SUB, v, 0)
	}
	return v
}

// ----------------------------------------------------------------------------
// Encoding

// FprintJSON writes the wire form of the tree rooted at node to w.
// Decoding the output yields an equivalent tree.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	var m map[string]interface{}
	switch n := node.(type) {
	case *Program:
		m = map[string]interface{}{
			"type": "Program",
			"body": mapSlice(n.Body, toJSON),
		}

	case *VarDecl:
		m = map[string]interface{}{
			"type":       "VariableDeclaration",
			"identifier": n.Name,
			"dataType":   n.Type,
			"isConstant": n.Const,
		}
		if n.Init != nil {
			m["initializer"] = toJSON(n.Init)
		}

	case *FuncDecl:
		m = map[string]interface{}{
			"type":       "FunctionDeclaration",
			"name":       n.Name,
			"params":     mapSlice(n.Params, fieldJSON),
			"returnType": n.Result,
			"body":       toJSON(n.Body),
		}

	case *StructDecl:
		m = map[string]interface{}{
			"type":    "StructDeclaration",
			"name":    n.Name,
			"fields":  mapSlice(n.Fields, fieldJSON),
			"methods": mapSlice(n.Methods, toJSON),
		}

	case *BlockStmt:
		m = map[string]interface{}{
			"type": "BlockStatement",
			"body": mapSlice(n.Stmts, toJSON),
		}

	case *ExprStmt:
		m = map[string]interface{}{
			"type":       "ExpressionStatement",
			"expression": toJSON(n.X),
		}

	case *AssignExpr:
		m = map[string]interface{}{
			"type":  "AssignmentExpression",
			"left":  toJSON(n.Lhs),
			"right": toJSON(n.Rhs),
		}

	case *CallExpr:
		m = map[string]interface{}{
			"type":      "CallExpression",
			"callee":    toJSON(n.Fun),
			"arguments": mapSlice(n.Args, toJSON),
		}

	case *SelectorExpr:
		m = map[string]interface{}{
			"type":     "MemberExpression",
			"object":   toJSON(n.X),
			"property": n.Sel,
		}

	case *Operation:
		if n.Unary() {
			m = map[string]interface{}{
				"type":     "UnaryExpression",
				"operator": n.Op,
				"argument": toJSON(n.X),
			}
		} else {
			m = map[string]interface{}{
				"type":     "BinaryExpression",
				"operator": n.Op,
				"left":     toJSON(n.X),
				"right":    toJSON(n.Y),
			}
		}

	case *IfStmt:
		m = map[string]interface{}{
			"type":       "IfStatement",
			"test":       toJSON(n.Cond),
			"consequent": toJSON(n.Then),
		}
		if n.Else != nil {
			m["alternate"] = toJSON(n.Else)
		}

	case *WhileStmt:
		m = map[string]interface{}{
			"type": "WhileStatement",
			"test": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *ForStmt:
		m = map[string]interface{}{
			"type": "ForStatement",
			"body": toJSON(n.Body),
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["test"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["update"] = toJSON(n.Post)
		}

	case *Name:
		m = map[string]interface{}{
			"type": "Identifier",
			"name": n.Value,
		}

	case *BasicLit:
		m = map[string]interface{}{
			"type":  "Literal",
			"value": literalJSON(n),
		}

	case *ReturnStmt:
		m = map[string]interface{}{
			"type": "ReturnStatement",
		}
		if n.Result != nil {
			m["argument"] = toJSON(n.Result)
		}

	case *BranchStmt:
		typ := "BreakStatement"
		if n.Tok == Continue {
			typ = "ContinueStatement"
		}
		m = map[string]interface{}{
			"type": typ,
		}

	case *Unknown:
		return n.Raw

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}

	if pos := node.Pos(); pos.IsValid() {
		m["position"] = pos
	}
	return m
}

func fieldJSON(f *Field) interface{} {
	return wireField{Name: f.Name, Type: f.Type}
}

func literalJSON(n *BasicLit) interface{} {
	if len(n.Raw) > 0 {
		return n.Raw
	}
	return valueJSON(n.Value)
}

// valueJSON returns the JSON form of a decoded literal value. Floats always
// carry a fraction or exponent so that they decode as floats again.
func valueJSON(v constant.Value) interface{} {
	if v == nil {
		return nil
	}
	switch v.Kind() {
	case constant.Int:
		return json.Number(v.ExactString())
	case constant.Float:
		f, _ := constant.Float64Val(v)
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return json.Number(s)
	case constant.Bool:
		return constant.BoolVal(v)
	case constant.String:
		return constant.StringVal(v)
	}
	return nil
}

// wireToken is the JSON form of a Token.
type wireToken struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text"`
	Value  interface{} `json:"value,omitempty"`
	Line   uint32      `json:"line"`
	Column uint32      `json:"column"`
	Offset int         `json:"offset"`
}

// FprintTokens writes toks to w as an indented JSON array.
func FprintTokens(w io.Writer, toks []Token) error {
	out := make([]wireToken, len(toks))
	for i, t := range toks {
		out[i] = wireToken{
			Kind:   t.Kind.String(),
			Text:   t.Lit,
			Value:  valueJSON(t.Val),
			Line:   t.Pos.Line(),
			Column: t.Pos.Col(),
			Offset: t.Offset,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
