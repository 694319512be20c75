package lexer

import (
	"testing"

	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/token"
)

func scanAll(t *testing.T, source string) ([]*token.Token, *diag.Session) {
	t.Helper()
	sess := diag.NewSession(source, "<test>", false)
	return New(source, sess).ScanTokens(), sess
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	source := `(){};,.?:~ + - * / % ** & | ^ << >> = == != < <= > >= ++ -- && ||`
	tokens, sess := scanAll(t, source)
	if sess.HadError() {
		t.Fatalf("unexpected lexical errors: %v", sess.Diagnostics())
	}

	want := []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.SEMICOLON,
		token.COMMA, token.DOT, token.QUESTION, token.COLON, token.TILDE,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.STARSTAR,
		token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR,
		token.EQUAL, token.EQUAL_EQ, token.BANG_EQ, token.LESS, token.LESS_EQ,
		token.GREATER, token.GREATER_EQ, token.PLUS_PLUS, token.MINUS_MINUS,
		token.AND_AND, token.OR_OR, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token[%d] = %s, want %s", i, tokens[i].Kind, k)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	source := "and break class continue else false for fn if nil or return super this true var while myVar _count print"
	tokens, sess := scanAll(t, source)
	if sess.HadError() {
		t.Fatalf("unexpected lexical errors: %v", sess.Diagnostics())
	}

	want := []token.Kind{
		token.AND, token.BREAK, token.CLASS, token.CONTINUE, token.ELSE, token.FALSE,
		token.FOR, token.FN, token.IF, token.NIL, token.OR, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE,
		token.IDENT, token.IDENT, token.IDENT, // myVar, _count, print
		token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token[%d] = %s, want %s", i, tokens[i].Kind, k)
		}
	}
	if tokens[len(tokens)-2].Lexeme != "print" {
		t.Errorf("expected 'print' to scan as a plain identifier, got %q", tokens[len(tokens)-2].Lexeme)
	}
}

func TestCompoundAssignmentTokens(t *testing.T) {
	tokens, sess := scanAll(t, "+= -= *= /= %= **= &= |= ^= <<= >>=")
	if sess.HadError() {
		t.Fatalf("unexpected lexical errors: %v", sess.Diagnostics())
	}
	want := []token.Kind{
		token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ, token.PERCENT_EQ,
		token.STARSTAR_EQ, token.AMP_EQ, token.PIPE_EQ, token.CARET_EQ, token.SHL_EQ, token.SHR_EQ,
		token.EOF,
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token[%d] = %s, want %s", i, tokens[i].Kind, k)
		}
	}
}
