package syntax

import (
	"fmt"
	"go/constant"
	"strconv"
	"strings"
)

// Lexer performs lexical analysis on Fax source text.
// A Lexer is forward-only; create a new one to scan the text again.
type Lexer struct {
	source // embedded character reader

	// Current token
	tok Token

	// Literal accumulation
	litBuf strings.Builder

	// Set once EOF has been produced or an error returned.
	done bool
	err  error
}

// NewLexer creates a new Lexer for text.
func NewLexer(text string) *Lexer {
	l := &Lexer{}
	l.source.init(text)
	return l
}

// Tokenize scans all of text and returns its tokens. The last token is
// always the single EOF token. On the first lexical error the scan stops
// and a *LexError is returned.
func Tokenize(text string) ([]Token, error) {
	l := NewLexer(text)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// Next scans and returns the next token. After the EOF token has been
// returned, further calls keep returning it. After an error, further
// calls return the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	if l.done {
		return l.tok, nil
	}
	if err := l.next(); err != nil {
		l.err = err
		return Token{}, err
	}
	if l.tok.Kind == EOF {
		l.done = true
	}
	return l.tok, nil
}

func (l *Lexer) next() error {
redo:
	// 1. Skip whitespace, newlines included
	for isWhitespace(l.ch) {
		l.nextch()
	}

	// 2. Record token start position
	l.tok = Token{Pos: l.pos(), Offset: l.abs}

	// 3. Scan token based on current character
	switch {
	case l.ch < 0:
		l.tok.Kind = EOF

	case isLetter(l.ch):
		l.scanIdent()

	case isDigit(l.ch):
		return l.scanNumber()

	case l.ch == '"' || l.ch == '\'':
		return l.scanString()

	case l.ch == '/' && (l.peek(1) == '/' || l.peek(1) == '*'):
		if err := l.skipComment(); err != nil {
			return err
		}
		goto redo

	default:
		return l.scanOperator()
	}
	return nil
}

// errorf returns a *LexError anchored at the current token start.
func (l *Lexer) errorf(kind ErrorKind, format string, args ...any) error {
	return &LexError{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: l.tok.Pos, Offset: l.tok.Offset}
}

// errorHere returns a *LexError anchored at the current character.
func (l *Lexer) errorHere(kind ErrorKind, msg string) error {
	return &LexError{Kind: kind, Msg: msg, Pos: l.pos(), Offset: l.abs}
}

// skipComment skips a line or block comment starting at the current '/'.
func (l *Lexer) skipComment() error {
	l.nextch() // skip first /
	if l.ch == '/' {
		for l.ch != '\n' && l.ch >= 0 {
			l.nextch()
		}
		return nil
	}

	l.nextch() // skip *
	for l.ch >= 0 {
		if l.ch == '*' && l.peek(1) == '/' {
			l.nextch()
			l.nextch()
			return nil
		}
		l.nextch()
	}
	return l.errorf(UnexpectedEOF, "Unterminated block comment")
}

// startLit begins accumulating a literal.
func (l *Lexer) startLit() {
	l.litBuf.Reset()
	l.litBuf.WriteRune(l.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (l *Lexer) continueLit() {
	l.litBuf.WriteRune(l.ch)
}

// scanIdent scans an identifier, keyword or boolean literal.
func (l *Lexer) scanIdent() {
	l.startLit()
	l.nextch()

	for isIdentChar(l.ch) {
		l.continueLit()
		l.nextch()
	}

	l.tok.Lit = l.litBuf.String()
	switch l.tok.Lit {
	case "true", "false":
		l.tok.Kind = BoolLit
		l.tok.Val = constant.MakeBool(l.tok.Lit == "true")
	default:
		l.tok.Kind = LookupKeyword(l.tok.Lit)
	}
}

// scanNumber scans a number literal. A leading 0x, 0b or 0o (or a 0
// followed by an octal digit) selects a radix; otherwise the literal is
// decimal, and a float if it contains a dot.
func (l *Lexer) scanNumber() error {
	l.startLit()

	if l.ch == '0' {
		switch next := l.peek(1); {
		case lower(next) == 'x':
			return l.scanRadix(HexLit, 16, "hexadecimal", isHexDigit)
		case lower(next) == 'b':
			return l.scanRadix(BinaryLit, 2, "binary", isBinaryDigit)
		case lower(next) == 'o':
			return l.scanRadix(OctalLit, 8, "octal", isOctalDigit)
		case isOctalDigit(next):
			return l.scanLegacyOctal()
		}
	}

	l.nextch()
	for isDigit(l.ch) {
		l.continueLit()
		l.nextch()
	}

	// Only one dot belongs to the literal; it needs a digit or a non-name
	// after it, so 1.foo stays a member access.
	if l.ch == '.' && !isLetter(l.peek(1)) {
		l.continueLit()
		l.nextch()
		for isDigit(l.ch) {
			l.continueLit()
			l.nextch()
		}
		l.tok.Lit = l.litBuf.String()
		f, err := strconv.ParseFloat(l.tok.Lit, 64)
		if err != nil {
			return l.errorf(InvalidNumber, "Invalid float number: %s", l.tok.Lit)
		}
		l.tok.Kind = FloatLit
		l.tok.Val = constant.MakeFloat64(f)
		return nil
	}

	l.tok.Lit = l.litBuf.String()
	n, err := strconv.ParseInt(l.tok.Lit, 10, 64)
	if err != nil {
		return l.errorf(InvalidNumber, "Invalid integer number: %s", l.tok.Lit)
	}
	l.tok.Kind = IntLit
	l.tok.Val = constant.MakeInt64(n)
	return nil
}

// scanRadix scans a prefixed literal. The current character is the 0.
func (l *Lexer) scanRadix(kind Kind, base int, name string, isRadixDigit func(rune) bool) error {
	l.nextch() // skip 0
	l.continueLit()
	l.nextch() // skip prefix letter

	for isRadixDigit(l.ch) {
		l.continueLit()
		l.nextch()
	}

	l.tok.Lit = l.litBuf.String()
	if len(l.tok.Lit) <= 2 {
		return l.errorf(InvalidNumber, "Invalid %s number: %s", name, l.tok.Lit)
	}
	n, err := strconv.ParseInt(l.tok.Lit[2:], base, 64)
	if err != nil {
		return l.errorf(InvalidNumber, "Invalid %s number: %s", name, l.tok.Lit)
	}
	l.tok.Kind = kind
	l.tok.Val = constant.MakeInt64(n)
	return nil
}

// scanLegacyOctal scans an octal literal of the form 0755.
func (l *Lexer) scanLegacyOctal() error {
	l.nextch() // skip 0
	for isOctalDigit(l.ch) {
		l.continueLit()
		l.nextch()
	}

	l.tok.Lit = l.litBuf.String()
	n, err := strconv.ParseInt(l.tok.Lit[1:], 8, 64)
	if err != nil {
		return l.errorf(InvalidNumber, "Invalid octal number: %s", l.tok.Lit)
	}
	l.tok.Kind = OctalLit
	l.tok.Val = constant.MakeInt64(n)
	return nil
}

// scanString scans a string literal closed by the quote that opened it.
// The resulting literal is the decoded string content.
func (l *Lexer) scanString() error {
	quote := l.ch
	l.nextch() // skip opening quote
	var b strings.Builder

	for {
		switch {
		case l.ch == quote:
			l.nextch()
			l.tok.Kind = StringLit
			l.tok.Lit = b.String()
			l.tok.Val = constant.MakeString(l.tok.Lit)
			return nil

		case l.ch == '\\':
			l.nextch() // skip \
			if l.ch < 0 {
				return l.errorHere(UnexpectedEOF, "Unterminated escape sequence in string")
			}
			b.WriteRune(unescape(l.ch))
			l.nextch()

		case l.ch < 0:
			return l.errorf(UnterminatedString, "Unterminated string literal")

		default:
			b.WriteRune(l.ch)
			l.nextch()
		}
	}
}

// unescape decodes the character following a backslash.
// Unknown escapes stand for the character itself.
func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	}
	return r
}

// scanOperator scans an operator or delimiter, taking the longest match.
func (l *Lexer) scanOperator() error {
	ch := l.ch
	l.nextch()

	switch ch {
	case '+':
		l.withAssign(Add, AddAssign)
	case '-':
		if l.ch == '>' {
			l.nextch()
			l.set(Arrow)
		} else {
			l.withAssign(Sub, SubAssign)
		}
	case '*':
		l.withAssign(Mul, MulAssign)
	case '/':
		l.withAssign(Div, DivAssign)
	case '%':
		l.withAssign(Rem, RemAssign)
	case '=':
		l.withAssign(Assign, Eql)
	case '!':
		l.withAssign(Not, Neq)
	case '<':
		if l.ch == '<' {
			l.nextch()
			l.withAssign(Shl, ShlAssign)
		} else {
			l.withAssign(Lss, Leq)
		}
	case '>':
		if l.ch == '>' {
			l.nextch()
			l.withAssign(Shr, ShrAssign)
		} else {
			l.withAssign(Gtr, Geq)
		}
	case '&':
		if l.ch == '&' {
			l.nextch()
			l.set(AndAnd)
		} else {
			l.withAssign(And, AndAssign)
		}
	case '|':
		if l.ch == '|' {
			l.nextch()
			l.set(OrOr)
		} else {
			l.withAssign(Or, OrAssign)
		}
	case '^':
		l.withAssign(Xor, XorAssign)
	case '~':
		l.set(Tilde)
	case ':':
		if l.ch == ':' {
			l.nextch()
			l.set(DoubleColon)
		} else {
			l.set(Colon)
		}
	case '(':
		l.set(Lparen)
	case ')':
		l.set(Rparen)
	case '{':
		l.set(Lbrace)
	case '}':
		l.set(Rbrace)
	case '[':
		l.set(Lbrack)
	case ']':
		l.set(Rbrack)
	case ';':
		l.set(Semi)
	case ',':
		l.set(Comma)
	case '.':
		l.set(Dot)
	default:
		return l.errorf(UnexpectedCharacter, "Unexpected character: %s", quoteRune(ch))
	}
	return nil
}

// set finishes a fixed-text token.
func (l *Lexer) set(kind Kind) {
	l.tok.Kind = kind
	l.tok.Lit = kind.String()
}

// withAssign finishes plain, or withEq if the current character is '='.
func (l *Lexer) withAssign(plain, withEq Kind) {
	if l.ch == '=' {
		l.nextch()
		l.set(withEq)
		return
	}
	l.set(plain)
}

// quoteRune renders r for an error message; printable characters are
// shown as is.
func quoteRune(r rune) string {
	if strconv.IsPrint(r) {
		return string(r)
	}
	return strconv.QuoteRune(r)
}

// FormatValue renders a literal token value as canonical source text,
// such that scanning the text yields a token of the same kind and value.
func FormatValue(kind Kind, val constant.Value) string {
	switch kind {
	case HexLit:
		return "0x" + strconv.FormatUint(uint64(int64Val(val)), 16)
	case BinaryLit:
		return "0b" + strconv.FormatUint(uint64(int64Val(val)), 2)
	case OctalLit:
		return "0o" + strconv.FormatUint(uint64(int64Val(val)), 8)
	case FloatLit:
		f, _ := constant.Float64Val(val)
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case StringLit:
		return quoteString(constant.StringVal(val))
	case BoolLit:
		return strconv.FormatBool(constant.BoolVal(val))
	}
	return constant.ToInt(val).ExactString()
}

func int64Val(val constant.Value) int64 {
	n, _ := constant.Int64Val(constant.ToInt(val))
	return n
}

// binaryOps maps binary operator text as it appears in trees to token kinds.
var binaryOps = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := Add; k <= Shr; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// LookupOperator returns the operator kind for op, or EOF if op is not
// an operator.
func LookupOperator(op string) Kind {
	if k, ok := binaryOps[op]; ok {
		return k
	}
	return EOF
}

// quoteString renders s as a double-quoted literal using only the escapes
// the scanner decodes.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
