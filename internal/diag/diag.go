// Package diag defines the structured diagnostics reported by the Fax
// analyzers. An analysis pass that fails returns exactly one *Diagnostic
// as its error.
package diag

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/you-not-fish/fax/internal/syntax"
)

// Code identifies the rule a diagnostic reports.
type Code string

const (
	ArgCount     Code = "E0061" // call arity mismatch
	NameConflict Code = "E0128" // redefinition or function/variable conflict
	Mismatch     Code = "E0308" // type mismatch
	MovedValue   Code = "E0382" // use or move of a moved value
	AssignConst  Code = "E0384" // assignment to a constant
)

// Title returns the heading under which diagnostics of this code are shown.
func (c Code) Title() string {
	switch c {
	case NameConflict:
		return "Name Error"
	case MovedValue, AssignConst:
		return "Ownership Error"
	case Mismatch, ArgCount:
		return "Type Error"
	}
	return "Error"
}

// Span is a source range anchored at a line and column, with a label
// describing what is wrong there.
type Span struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Length int    `json:"length"`
	Label  string `json:"label"`
}

// At returns a span of the given length starting at pos.
// A missing position yields line and column 0.
func At(pos syntax.Pos, length int, label string) Span {
	return Span{
		Line:   int(pos.Line()),
		Column: int(pos.Col()),
		Length: length,
		Label:  label,
	}
}

// Suggestion proposes a source replacement.
type Suggestion struct {
	Message     string `json:"message"`
	Replacement string `json:"replacement"`
}

// Diagnostic is a single analysis failure.
type Diagnostic struct {
	Code           Code        `json:"code"`
	Message        string      `json:"message"`
	PrimarySpan    Span        `json:"primary_span"`
	SecondarySpans []Span      `json:"secondary_spans"`
	Suggestion     *Suggestion `json:"suggestion"`
	Note           *string     `json:"note"`
}

// New returns a diagnostic with the given code, message and primary span.
func New(code Code, msg string, primary Span) *Diagnostic {
	return &Diagnostic{
		Code:           code,
		Message:        msg,
		PrimarySpan:    primary,
		SecondarySpans: []Span{},
	}
}

// Errorf is like New but formats the message.
func Errorf(code Code, primary Span, format string, args ...any) *Diagnostic {
	return New(code, fmt.Sprintf(format, args...), primary)
}

// WithSecondary appends a secondary span and returns d.
func (d *Diagnostic) WithSecondary(span Span) *Diagnostic {
	d.SecondarySpans = append(d.SecondarySpans, span)
	return d
}

// WithNote sets the note and returns d.
func (d *Diagnostic) WithNote(format string, args ...any) *Diagnostic {
	note := fmt.Sprintf(format, args...)
	d.Note = &note
	return d
}

// WithSuggestion sets the suggestion and returns d.
func (d *Diagnostic) WithSuggestion(msg, replacement string) *Diagnostic {
	d.Suggestion = &Suggestion{Message: msg, Replacement: replacement}
	return d
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.PrimarySpan.Line, d.PrimarySpan.Column, d.Code, d.Message)
}

// MarshalJSON encodes d in its wire form. Absent secondary spans are
// written as an empty array, absent suggestion and note as null.
func (d *Diagnostic) MarshalJSON() ([]byte, error) {
	type wire Diagnostic
	w := (*wire)(d)
	if w.SecondarySpans == nil {
		c := *w
		c.SecondarySpans = []Span{}
		w = &c
	}
	return json.Marshal(w)
}

// Decode parses a diagnostic from its wire form.
func Decode(data []byte) (*Diagnostic, error) {
	var d Diagnostic
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode diagnostic: %w", err)
	}
	if d.Code == "" {
		return nil, errors.New("decode diagnostic: missing code")
	}
	return &d, nil
}
