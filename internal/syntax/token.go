// Package syntax implements lexical analysis and the program tree model
// for the Fax programming language.
package syntax

import (
	"fmt"
	"go/constant"
)

// Kind represents the kind of a lexical token.
type Kind uint

const (
	// Special tokens
	EOF Kind = iota // end of input

	// Identifiers
	Ident // identifier: foo, bar, Rectangle

	// Literals (Token.Val holds the decoded value)
	IntLit    // 42
	FloatLit  // 3.14
	StringLit // "hello", 'hi'
	BoolLit   // true, false
	HexLit    // 0xFF
	BinaryLit // 0b1010
	OctalLit  // 0o755, 0755

	// Arithmetic operators
	Add // +
	Sub // -
	Mul // *
	Div // /
	Rem // %

	// Comparison operators
	Eql // ==
	Neq // !=
	Lss // <
	Gtr // >
	Leq // <=
	Geq // >=

	// Logical operators
	AndAnd // &&
	OrOr   // ||
	Not    // !

	// Bitwise operators
	And   // &
	Or    // |
	Xor   // ^
	Tilde // ~
	Shl   // <<
	Shr   // >>

	// Assignment
	Assign    // =
	AddAssign // +=
	SubAssign // -=
	MulAssign // *=
	DivAssign // /=
	RemAssign // %=
	AndAssign // &=
	OrAssign  // |=
	XorAssign // ^=
	ShlAssign // <<=
	ShrAssign // >>=

	// Delimiters
	Lparen      // (
	Rparen      // )
	Lbrace      // {
	Rbrace      // }
	Lbrack      // [
	Rbrack      // ]
	Semi        // ;
	Comma       // ,
	Dot         // .
	Colon       // :
	DoubleColon // ::
	Arrow       // ->

	// Keywords
	Let
	Var
	Const
	Fn
	Struct
	Enum
	If
	Else
	While
	For
	Return
	Break
	Continue
	Pub
	Priv
	Static

	// Primitive type names
	IntType
	FloatType
	BoolType
	StringType
	CharType
	VoidType

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	EOF: "EOF",

	Ident: "NAME",

	IntLit:    "INT",
	FloatLit:  "FLOAT",
	StringLit: "STRING",
	BoolLit:   "BOOL",
	HexLit:    "HEX",
	BinaryLit: "BINARY",
	OctalLit:  "OCTAL",

	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Rem: "%",

	Eql: "==",
	Neq: "!=",
	Lss: "<",
	Gtr: ">",
	Leq: "<=",
	Geq: ">=",

	AndAnd: "&&",
	OrOr:   "||",
	Not:    "!",

	And:   "&",
	Or:    "|",
	Xor:   "^",
	Tilde: "~",
	Shl:   "<<",
	Shr:   ">>",

	Assign:    "=",
	AddAssign: "+=",
	SubAssign: "-=",
	MulAssign: "*=",
	DivAssign: "/=",
	RemAssign: "%=",
	AndAssign: "&=",
	OrAssign:  "|=",
	XorAssign: "^=",
	ShlAssign: "<<=",
	ShrAssign: ">>=",

	Lparen:      "(",
	Rparen:      ")",
	Lbrace:      "{",
	Rbrace:      "}",
	Lbrack:      "[",
	Rbrack:      "]",
	Semi:        ";",
	Comma:       ",",
	Dot:         ".",
	Colon:       ":",
	DoubleColon: "::",
	Arrow:       "->",

	Let:      "let",
	Var:      "var",
	Const:    "const",
	Fn:       "fn",
	Struct:   "struct",
	Enum:     "enum",
	If:       "if",
	Else:     "else",
	While:    "while",
	For:      "for",
	Return:   "return",
	Break:    "break",
	Continue: "continue",
	Pub:      "pub",
	Priv:     "priv",
	Static:   "static",

	IntType:    "int",
	FloatType:  "float",
	BoolType:   "bool",
	StringType: "string",
	CharType:   "char",
	VoidType:   "void",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword, including primitive type names.
func (k Kind) IsKeyword() bool {
	return k >= Let && k <= VoidType
}

// IsLiteral reports whether k is a literal kind carrying a decoded value.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= OctalLit
}

// IsNumber reports whether k is one of the numeric literal kinds.
func (k Kind) IsNumber() bool {
	switch k {
	case IntLit, FloatLit, HexLit, BinaryLit, OctalLit:
		return true
	}
	return false
}

// IsOperator reports whether k is an operator.
func (k Kind) IsOperator() bool {
	return k >= Add && k <= ShrAssign
}

// IsAssignOp reports whether k is = or one of the compound assignments.
func (k Kind) IsAssignOp() bool {
	return k >= Assign && k <= ShrAssign
}

// Token is a single lexical token.
type Token struct {
	Kind   Kind
	Lit    string         // source text (decoded content for strings)
	Val    constant.Value // decoded value; nil unless Kind.IsLiteral()
	Pos    Pos            // start position
	Offset int            // absolute character offset of the start
}

func (t Token) String() string {
	switch {
	case t.Kind == Ident:
		return fmt.Sprintf("NAME(%s)", t.Lit)
	case t.Kind.IsLiteral() && t.Val != nil:
		if t.Val.Kind() == constant.Float {
			return fmt.Sprintf("%s(%s)", t.Kind, t.Val)
		}
		return fmt.Sprintf("%s(%s)", t.Kind, t.Val.ExactString())
	}
	return t.Kind.String()
}

// keywords maps keyword strings to their token kind.
// true and false are handled separately and produce BoolLit tokens.
var keywords = map[string]Kind{
	"let":      Let,
	"var":      Var,
	"const":    Const,
	"fn":       Fn,
	"struct":   Struct,
	"enum":     Enum,
	"if":       If,
	"else":     Else,
	"while":    While,
	"for":      For,
	"return":   Return,
	"break":    Break,
	"continue": Continue,
	"pub":      Pub,
	"priv":     Priv,
	"static":   Static,
	"int":      IntType,
	"float":    FloatType,
	"bool":     BoolType,
	"string":   StringType,
	"char":     CharType,
	"void":     VoidType,
}

// LookupKeyword returns the kind for the given identifier string.
// If the identifier is a keyword, returns the keyword kind.
// Otherwise, returns Ident.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}
