package lexer

import "testing"

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"0", 0},
		{"7", 7},
		{"3.14", 3.14},
		{"100.0", 100},
		{"0.5", 0.5},
	}
	for _, tt := range tests {
		tokens, sess := scanAll(t, tt.source)
		if sess.HadError() {
			t.Fatalf("%q: unexpected lexical errors: %v", tt.source, sess.Diagnostics())
		}
		if got := tokens[0].Literal.(float64); got != tt.want {
			t.Errorf("%q: literal = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestNumberFollowedByDotWithoutDigitIsTwoTokens(t *testing.T) {
	// "5." with no following digit is not part of the number: it's NUMBER(5)
	// followed by DOT, matching the lexer's one-character lookahead rule.
	tokens, sess := scanAll(t, "5.method()")
	if sess.HadError() {
		t.Fatalf("unexpected lexical errors: %v", sess.Diagnostics())
	}
	if tokens[0].Literal.(float64) != 5 {
		t.Fatalf("expected first token to be number 5, got %v", tokens[0])
	}
	if tokens[1].Lexeme != "." {
		t.Fatalf("expected second token to be '.', got %v", tokens[1])
	}
}
