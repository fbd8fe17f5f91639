package syntax

import (
	"encoding/json"
	"fmt"
)

// Pos represents a position in a source file.
// The zero value (0:0) is what nodes without position metadata report;
// it is not a valid source location.
type Pos struct {
	line uint32 // 1-based line number
	col  uint32 // 1-based column number (in characters)
}

// NewPos creates a new Pos with the given line and column.
// Line and column numbers are 1-based.
func NewPos(line, col uint32) Pos {
	return Pos{line: line, col: col}
}

// String returns a string representation of the position in the format "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// wirePos is the tree encoding of a position.
type wirePos struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// MarshalJSON implements json.Marshaler.
func (p Pos) MarshalJSON() ([]byte, error) {
	return json.Marshal(wirePos{Line: p.line, Column: p.col})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pos) UnmarshalJSON(data []byte) error {
	var w wirePos
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.line, p.col = w.Line, w.Column
	return nil
}
