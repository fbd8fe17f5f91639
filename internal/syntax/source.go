package syntax

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// source is a character reader with position tracking.
// It reads UTF-8 encoded source text and provides character-by-character access.
type source struct {
	// Input
	buf string // source text

	// Position tracking
	line uint32 // current line number (1-based)
	col  uint32 // current column number (1-based, in characters)
	abs  int    // absolute character offset of ch (0-based)

	// Current state
	ch   rune // current character, -1 for EOF
	offs int  // byte offset just past ch in buf
}

// init prepares s to read text.
func (s *source) init(text string) {
	*s = source{
		buf:  text,
		line: 1,
		col:  0,  // Will be incremented to 1 by first nextch()
		abs:  -1, // Will be incremented to 0 by first nextch()
		ch:   -1, // Sentinel: -1 means "before first char", prevents position update
	}
	s.nextch()
}

// nextch reads the next character from the source and updates position.
// Sets s.ch to -1 at EOF.
//
// Position tracking: (line, col, abs) always refers to the position of s.ch
// after nextch() returns. Initial state: line=1, col=0, s.ch=-1.
// After first nextch(): line=1, col=1, abs=0, s.ch=first char.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.abs++

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// peek returns the character n positions after the current one without
// consuming anything. peek(1) is the character immediately following s.ch.
func (s *source) peek(n int) rune {
	offs := s.offs
	for ; n > 1; n-- {
		if offs >= len(s.buf) {
			return -1
		}
		_, width := utf8.DecodeRuneInString(s.buf[offs:])
		offs += width
	}
	if offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.buf[offs:])
	return r
}

// pos returns the current position (position of current character).
func (s *source) pos() Pos {
	return NewPos(s.line, s.col)
}

// Normalize returns text in Unicode normalization form C, so that visually
// identical identifiers and string literals lex to identical tokens.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Character classification helpers

// isLetter reports whether r may start an identifier.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_' || r >= utf8.RuneSelf && unicode.IsLetter(r)
}

// isIdentChar reports whether r may continue an identifier.
func isIdentChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r >= utf8.RuneSelf && unicode.IsDigit(r)
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isHexDigit reports whether r is a hexadecimal digit (0-9, a-f, A-F).
func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= lower(r) && lower(r) <= 'f'
}

// isOctalDigit reports whether r is an octal digit (0-7).
func isOctalDigit(r rune) bool {
	return '0' <= r && r <= '7'
}

// isBinaryDigit reports whether r is a binary digit (0 or 1).
func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// lower returns the lowercase version of r if r is an ASCII letter,
// otherwise returns r unchanged.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

// isWhitespace reports whether r is skipped between tokens.
// Newlines are included; nextch does the line bookkeeping.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\v' || r == '\f' ||
		r >= utf8.RuneSelf && unicode.IsSpace(r)
}
