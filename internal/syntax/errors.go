package syntax

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies a lexical error.
type ErrorKind uint8

const (
	InvalidNumber ErrorKind = iota
	UnterminatedString
	UnexpectedCharacter
	UnexpectedEOF
)

var errorKindNames = [...]string{
	InvalidNumber:       "invalid number",
	UnterminatedString:  "unterminated string",
	UnexpectedCharacter: "unexpected character",
	UnexpectedEOF:       "unexpected end of input",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// LexError is the error returned when tokenization fails.
// Lexing stops at the first error; there is no recovery.
type LexError struct {
	Kind   ErrorKind
	Msg    string
	Pos    Pos
	Offset int // absolute character offset
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s (offset %d): %s", e.Pos, e.Offset, e.Msg)
}

// MarshalJSON encodes e for tools that consume lexer failures.
func (e *LexError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
		Line    uint32 `json:"line"`
		Column  uint32 `json:"column"`
		Offset  int    `json:"offset"`
	}{e.Kind.String(), e.Msg, e.Pos.Line(), e.Pos.Col(), e.Offset})
}
