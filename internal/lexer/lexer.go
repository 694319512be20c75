// Package lexer implements the scanner: character stream -> token stream.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/token"
)

// Lexer turns Weave source text into a token stream. Column positions are
// rune counts, not byte offsets, so multi-byte UTF-8 sequences each count
// as a single column.
type Lexer struct {
	source string
	sess   *diag.Session

	start        int // byte offset of the lexeme currently being scanned
	position     int // byte offset of ch
	readPosition int // byte offset of the next rune
	line         int
	column       int
	startLine    int
	startColumn  int
	ch           rune
}

// New creates a Lexer over source, reporting lexical errors into sess.
func New(source string, sess *diag.Session) *Lexer {
	l := &Lexer{source: source, sess: sess, line: 1, column: 0}
	l.readChar()
	return l
}

// ScanTokens scans the entire input and returns the token list, terminated
// by a single EOF token carrying the final line/column. Scanning continues
// past lexical errors, which are reported to the Session.
func (l *Lexer) ScanTokens() []*token.Token {
	var tokens []*token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.source) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.source[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
	if r == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPosition:])
	return r
}

func (l *Lexer) peekCharAt(n int) rune {
	pos := l.readPosition
	for i := 0; i < n-1 && pos < len(l.source); i++ {
		_, size := utf8.DecodeRuneInString(l.source[pos:])
		pos += size
	}
	if pos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[pos:])
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.ch != expected {
		return false
	}
	l.readChar()
	return true
}

func (l *Lexer) atEnd() bool { return l.position >= len(l.source) }

func (l *Lexer) startPos() token.Position {
	return token.Position{Line: l.startLine, Column: l.startColumn}
}

func (l *Lexer) make(kind token.Kind, literal any) *token.Token {
	lexeme := l.source[l.byteStart():l.byteEnd()]
	return token.New(kind, lexeme, literal, l.startPos())
}

// byteStart/byteEnd recover the byte offsets bracketing the current lexeme.
// start/position are byte offsets already, kept here as named accessors so
// NextToken reads cleanly.
func (l *Lexer) byteStart() int { return l.start }
func (l *Lexer) byteEnd() int   { return l.position }

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				for l.ch != '\n' && !l.atEnd() {
					l.readChar()
				}
			} else if l.peekChar() == '*' {
				l.readChar() // consume '*'
				l.readChar() // move past the '*' onto the following char
				for !l.atEnd() {
					if l.ch == '*' && l.peekChar() == '/' {
						l.readChar() // consume '*'
						l.readChar() // consume '/'
						break
					}
					l.readChar()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// NextToken scans and returns the next token, advancing past it. At end of
// input it returns an EOF token repeatedly.
func (l *Lexer) NextToken() *token.Token {
	l.skipWhitespaceAndComments()

	l.start = l.position
	l.startLine = l.line
	l.startColumn = l.column

	if l.atEnd() {
		return l.make(token.EOF, nil)
	}

	ch := l.ch

	switch {
	case isDigit(ch):
		return l.number()
	case isIdentStart(ch):
		return l.identifier()
	case ch == '"':
		return l.string()
	}

	l.readChar()

	switch ch {
	case '(':
		return l.make(token.LPAREN, nil)
	case ')':
		return l.make(token.RPAREN, nil)
	case '{':
		return l.make(token.LBRACE, nil)
	case '}':
		return l.make(token.RBRACE, nil)
	case ',':
		return l.make(token.COMMA, nil)
	case '.':
		return l.make(token.DOT, nil)
	case ';':
		return l.make(token.SEMICOLON, nil)
	case '?':
		return l.make(token.QUESTION, nil)
	case ':':
		return l.make(token.COLON, nil)
	case '~':
		return l.make(token.TILDE, nil)
	case '+':
		if l.match('+') {
			return l.make(token.PLUS_PLUS, nil)
		}
		if l.match('=') {
			return l.make(token.PLUS_EQ, nil)
		}
		return l.make(token.PLUS, nil)
	case '-':
		if l.match('-') {
			return l.make(token.MINUS_MINUS, nil)
		}
		if l.match('=') {
			return l.make(token.MINUS_EQ, nil)
		}
		return l.make(token.MINUS, nil)
	case '*':
		if l.match('*') {
			if l.match('=') {
				return l.make(token.STARSTAR_EQ, nil)
			}
			return l.make(token.STARSTAR, nil)
		}
		if l.match('=') {
			return l.make(token.STAR_EQ, nil)
		}
		return l.make(token.STAR, nil)
	case '/':
		if l.match('=') {
			return l.make(token.SLASH_EQ, nil)
		}
		return l.make(token.SLASH, nil)
	case '%':
		if l.match('=') {
			return l.make(token.PERCENT_EQ, nil)
		}
		return l.make(token.PERCENT, nil)
	case '&':
		if l.match('&') {
			return l.make(token.AND_AND, nil)
		}
		if l.match('=') {
			return l.make(token.AMP_EQ, nil)
		}
		return l.make(token.AMP, nil)
	case '|':
		if l.match('|') {
			return l.make(token.OR_OR, nil)
		}
		if l.match('=') {
			return l.make(token.PIPE_EQ, nil)
		}
		return l.make(token.PIPE, nil)
	case '^':
		if l.match('=') {
			return l.make(token.CARET_EQ, nil)
		}
		return l.make(token.CARET, nil)
	case '=':
		if l.match('=') {
			return l.make(token.EQUAL_EQ, nil)
		}
		return l.make(token.EQUAL, nil)
	case '!':
		if l.match('=') {
			return l.make(token.BANG_EQ, nil)
		}
		return l.make(token.BANG, nil)
	case '<':
		if l.match('<') {
			if l.match('=') {
				return l.make(token.SHL_EQ, nil)
			}
			return l.make(token.SHL, nil)
		}
		if l.match('=') {
			return l.make(token.LESS_EQ, nil)
		}
		return l.make(token.LESS, nil)
	case '>':
		if l.match('>') {
			if l.match('=') {
				return l.make(token.SHR_EQ, nil)
			}
			return l.make(token.SHR, nil)
		}
		if l.match('=') {
			return l.make(token.GREATER_EQ, nil)
		}
		return l.make(token.GREATER, nil)
	}

	l.reportError("Unexpected character.")
	return l.make(token.ILLEGAL, nil)
}

func (l *Lexer) number() *token.Token {
	for isDigit(l.ch) {
		l.readChar()
	}
	isFloat := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	text := l.source[l.byteStart():l.byteEnd()]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.reportError("Invalid number literal.")
		value = 0
	}
	_ = isFloat // integers and floats share the same runtime number type
	return l.make(token.NUMBER, value)
}

func (l *Lexer) identifier() *token.Token {
	for isIdentPart(l.ch) {
		l.readChar()
	}
	text := l.source[l.byteStart():l.byteEnd()]
	return l.make(token.LookupIdent(text), nil)
}

func (l *Lexer) string() *token.Token {
	l.readChar() // consume opening quote
	for l.ch != '"' && !l.atEnd() {
		l.readChar() // strings are not escape-processed; line advances on '\n'
	}
	if l.atEnd() {
		l.reportError("Unterminated string.")
		return l.make(token.ILLEGAL, nil)
	}
	value := l.source[l.byteStart()+1 : l.byteEnd()]
	l.readChar() // consume closing quote
	return l.make(token.STRING, value)
}

func (l *Lexer) reportError(message string) {
	if l.sess == nil {
		return
	}
	l.sess.Report(&diag.Diagnostic{
		Stage:    diag.StageLex,
		Severity: diag.SeverityError,
		Pos:      l.startPos(),
		Message:  message,
	})
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// isIdentStart matches the spec's identifier grammar exactly: [A-Za-z_].
// Unlike the teacher's Unicode-aware DWScript lexer, Weave identifiers are
// ASCII-only by spec.
func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
