package parser

// ASCII character lookup tables for fast classification.
var (
	isSpace     [128]bool
	isDigit     [128]bool
	isWordStart [128]bool
	isWordPart  [128]bool
	isURIPart   [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isSpace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
		isDigit[i] = '0' <= ch && ch <= '9'
		letter := ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		isWordStart[i] = letter || ch == '_'
		isWordPart[i] = letter || ch == '_' || ch == '-' || isDigit[i]
		isURIPart[i] = isWordPart[i] || ch == ':'
	}
}

// lexer scans one input line into tokens.
type lexer struct {
	input string
	pos   int // byte offset of the next unread character
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// tokenize scans the whole line. Lexing never fails outright: unterminated
// strings and stray characters come back as ILLEGAL tokens for the parser
// to report with a position.
func (l *lexer) tokenize() []Token {
	var tokens []Token
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

func (l *lexer) next() Token {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Type: EOF, Pos: l.position()}
	}

	start := l.position()
	ch := l.input[l.pos]

	switch {
	case ch == '"':
		return l.scanString(start)
	case ch < 128 && isDigit[ch]:
		return l.scanNumber(start)
	case ch == '-' && l.pos+1 < len(l.input) && l.input[l.pos+1] < 128 && isDigit[l.input[l.pos+1]]:
		return l.scanNumber(start)
	case ch < 128 && isWordStart[ch]:
		return l.scanWordOrURI(start)
	default:
		l.pos++
		return Token{Type: ILLEGAL, Lit: string(ch), Pos: start}
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch >= 128 || !isSpace[ch] {
			return
		}
		l.pos++
	}
}

func (l *lexer) position() Position {
	return Position{Column: l.pos + 1, Offset: l.pos}
}

func (l *lexer) scanString(start Position) Token {
	l.pos++ // opening quote
	from := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		// Unterminated string: surface the raw remainder as ILLEGAL.
		return Token{Type: ILLEGAL, Lit: l.input[start.Offset:], Pos: start}
	}
	lit := l.input[from:l.pos]
	l.pos++ // closing quote
	return Token{Type: STRING, Lit: lit, Pos: start}
}

func (l *lexer) scanNumber(start Position) Token {
	if l.input[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.input) && l.input[l.pos] < 128 && isDigit[l.input[l.pos]] {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && l.input[l.pos] < 128 && isDigit[l.input[l.pos]] {
			l.pos++
		}
	}
	return Token{Type: NUMBER, Lit: l.input[start.Offset:l.pos], Pos: start}
}

// scanWordOrURI scans a bare word; a ':' continues it into a URI token.
func (l *lexer) scanWordOrURI(start Position) Token {
	sawColon := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch >= 128 || !isURIPart[ch] {
			break
		}
		if ch == ':' {
			sawColon = true
		}
		l.pos++
	}
	lit := l.input[start.Offset:l.pos]
	if sawColon {
		return Token{Type: URI, Lit: lit, Pos: start}
	}
	return Token{Type: WORD, Lit: lit, Pos: start}
}
