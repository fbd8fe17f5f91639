package syntax

import "testing"

func newTestSource(text string) *source {
	s := &source{}
	s.init(text)
	return s
}

func TestSourceBasic(t *testing.T) {
	src := newTestSource("abc")

	// First character should be 'a'
	if src.ch != 'a' {
		t.Errorf("initial ch = %q, want 'a'", src.ch)
	}
	if src.line != 1 || src.col != 1 || src.abs != 0 {
		t.Errorf("initial pos = %d:%d@%d, want 1:1@0", src.line, src.col, src.abs)
	}

	src.nextch()
	if src.ch != 'b' || src.col != 2 || src.abs != 1 {
		t.Errorf("got ch=%q col=%d abs=%d, want 'b' 2 1", src.ch, src.col, src.abs)
	}

	src.nextch()
	if src.ch != 'c' || src.col != 3 {
		t.Errorf("got ch=%q col=%d, want 'c' 3", src.ch, src.col)
	}

	// EOF
	src.nextch()
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
}

func TestSourceNewline(t *testing.T) {
	src := newTestSource("a\nb\nc")

	want := []struct {
		ch        rune
		line, col uint32
		abs       int
	}{
		{'a', 1, 1, 0},
		{'\n', 1, 2, 1},
		{'b', 2, 1, 2},
		{'\n', 2, 2, 3},
		{'c', 3, 1, 4},
	}
	for i, w := range want {
		if src.ch != w.ch || src.line != w.line || src.col != w.col || src.abs != w.abs {
			t.Errorf("step %d: got ch=%q pos=%d:%d@%d, want ch=%q pos=%d:%d@%d",
				i, src.ch, src.line, src.col, src.abs, w.ch, w.line, w.col, w.abs)
		}
		src.nextch()
	}
}

func TestSourceUTF8(t *testing.T) {
	src := newTestSource("日本x")

	if src.ch != '日' {
		t.Errorf("ch = %q, want '日'", src.ch)
	}
	src.nextch()
	if src.ch != '本' || src.col != 2 || src.abs != 1 {
		t.Errorf("got ch=%q col=%d abs=%d, want '本' 2 1", src.ch, src.col, src.abs)
	}
	src.nextch()
	// Columns and offsets count characters, not bytes.
	if src.ch != 'x' || src.col != 3 || src.abs != 2 {
		t.Errorf("got ch=%q col=%d abs=%d, want 'x' 3 2", src.ch, src.col, src.abs)
	}
}

func TestSourceEmpty(t *testing.T) {
	src := newTestSource("")
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
}

func TestSourcePeek(t *testing.T) {
	src := newTestSource("<<=")

	if got := src.peek(1); got != '<' {
		t.Errorf("peek(1) = %q, want '<'", got)
	}
	if got := src.peek(2); got != '=' {
		t.Errorf("peek(2) = %q, want '='", got)
	}
	if got := src.peek(3); got != -1 {
		t.Errorf("peek(3) = %d, want -1", got)
	}
	if src.ch != '<' || src.abs != 0 {
		t.Errorf("peek consumed input: ch=%q abs=%d", src.ch, src.abs)
	}
}

func TestSourcePos(t *testing.T) {
	src := newTestSource("ab\ncd")
	src.nextch() // b
	src.nextch() // \n
	src.nextch() // c

	if got := src.pos(); got != NewPos(2, 1) {
		t.Errorf("pos() = %v, want 2:1", got)
	}
}

func TestNormalize(t *testing.T) {
	// "é" as e + combining acute accent normalizes to the precomposed form.
	decomposed := "cafe\u0301"
	if got := Normalize(decomposed); got != "caf\u00e9" {
		t.Errorf("Normalize(%q) = %q, want %q", decomposed, got, "caf\u00e9")
	}
}

func TestIsLetter(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true}, {'Z', true}, {'_', true}, {'é', true},
		{'0', false}, {'-', false}, {' ', false}, {-1, false},
	}
	for _, tt := range tests {
		if got := isLetter(tt.r); got != tt.want {
			t.Errorf("isLetter(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		if !isDigit(r) {
			t.Errorf("isDigit(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '/', ':', -1} {
		if isDigit(r) {
			t.Errorf("isDigit(%q) = true, want false", r)
		}
	}
}

func TestIsHexDigit(t *testing.T) {
	for _, r := range "0123456789abcdefABCDEF" {
		if !isHexDigit(r) {
			t.Errorf("isHexDigit(%q) = false, want true", r)
		}
	}
	for _, r := range "gG-x" {
		if isHexDigit(r) {
			t.Errorf("isHexDigit(%q) = true, want false", r)
		}
	}
}

func TestIsOctalDigit(t *testing.T) {
	for _, r := range "01234567" {
		if !isOctalDigit(r) {
			t.Errorf("isOctalDigit(%q) = false, want true", r)
		}
	}
	for _, r := range "89a" {
		if isOctalDigit(r) {
			t.Errorf("isOctalDigit(%q) = true, want false", r)
		}
	}
}

func TestIsBinaryDigit(t *testing.T) {
	tests := map[rune]bool{'0': true, '1': true, '2': false, 'b': false}
	for r, want := range tests {
		if got := isBinaryDigit(r); got != want {
			t.Errorf("isBinaryDigit(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestLower(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'A', 'a'}, {'X', 'x'}, {'a', 'a'}, {'0', '0'},
	}
	for _, tt := range tests {
		if got := lower(tt.in); got != tt.want {
			t.Errorf("lower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range " \t\r\n\v\f " {
		if !isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '/', -1} {
		if isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = true, want false", r)
		}
	}
}
