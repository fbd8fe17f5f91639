package logging

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/you-not-fish/fax/internal/diag"
	"github.com/you-not-fish/fax/internal/syntax"
)

// bannerLen is the width of the banner above a rendered message.
const bannerLen = 50

// Diagnostic prints d for a person. When src holds the text the tree was
// parsed from, the spans are shown underlined in a code excerpt; otherwise
// each span is listed by position.
func (l *Logger) Diagnostic(d *diag.Diagnostic, file, src string) {
	var b strings.Builder
	writeBanner(&b, d.Code.Title(), file)
	fmt.Fprintf(&b, "%s: %s\n", ErrorColorFG.Sprint(string(d.Code)), d.Message)

	lines := sourceLines(src)
	writeSpan(&b, lines, d.PrimarySpan, '^', ErrorColorFG)
	for _, s := range d.SecondarySpans {
		writeSpan(&b, lines, s, '-', InfoColorFG)
	}

	if d.Note != nil {
		fmt.Fprintf(&b, "%s %s\n", InfoColorFG.Sprint("note:"), *d.Note)
	}
	if s := d.Suggestion; s != nil {
		fmt.Fprintf(&b, "%s %s: `%s`\n", SuccessColorFG.Sprint("help:"), s.Message, s.Replacement)
	}
	l.print(LevelError, b.String())
}

// LexError prints a tokenization failure in the same layout as a diagnostic.
func (l *Logger) LexError(e *syntax.LexError, file, src string) {
	var b strings.Builder
	writeBanner(&b, "Token Error", file)
	fmt.Fprintf(&b, "%s\n", e.Msg)

	span := diag.At(e.Pos, 1, e.Kind.String())
	writeSpan(&b, sourceLines(src), span, '^', ErrorColorFG)
	l.print(LevelError, b.String())
}

// writeBanner writes the line that heads every rendered message:
//
//	-- Type Error ------------------------------ main.fax
func writeBanner(b *strings.Builder, title, file string) {
	b.WriteString("\n-- ")
	b.WriteString(ErrorStyleBG.Sprint(title))
	b.WriteByte(' ')

	name := filepath.Base(file)
	if file == "" {
		name = "<input>"
	}
	dashCount := max(bannerLen-len(name)-len(title)-1, 3)
	b.WriteString(strings.Repeat("-", dashCount) + " ")
	b.WriteString(InfoColorFG.Sprint(name))
	b.WriteByte('\n')
}

// writeSpan writes the source line a span points into, underlined with
// marker characters, followed by the span's label. Spans that fall outside
// the source are written as a position reference.
func writeSpan(b *strings.Builder, lines []string, s diag.Span, marker rune, color pterm.Color) {
	if s.Line < 1 || s.Line > len(lines) || s.Column < 1 {
		fmt.Fprintf(b, " --> %d:%d: %s\n", s.Line, s.Column, s.Label)
		return
	}

	line := []rune(lines[s.Line-1])
	col := min(s.Column-1, len(line))

	// Tabs are widened so that the underline stays aligned.
	text := strings.ReplaceAll(string(line), "\t", "    ")
	indent := len([]rune(strings.ReplaceAll(string(line[:col]), "\t", "    ")))

	gutter := len(strconv.Itoa(s.Line)) + 1
	fmt.Fprintf(b, "%s|  %s\n", InfoColorFG.Sprintf("%-"+strconv.Itoa(gutter)+"d", s.Line), text)
	fmt.Fprintf(b, "%s|  %s%s %s\n",
		strings.Repeat(" ", gutter),
		strings.Repeat(" ", indent),
		color.Sprint(strings.Repeat(string(marker), max(s.Length, 1))),
		s.Label)
}

// sourceLines splits src into lines. Empty text yields no lines.
func sourceLines(src string) []string {
	if src == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}
