package interp

import (
	"bytes"
	"testing"

	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/lexer"
	"github.com/weaveland/weave/internal/parser"
	"github.com/weaveland/weave/internal/resolver"
)

// run lexes, parses, resolves and interprets source against a fresh
// Interpreter, returning everything printed via `print` plus the Session
// used, so tests can assert on output and on error state in one call.
func run(t *testing.T, source string) (string, *diag.Session) {
	t.Helper()
	sess := diag.NewSession(source, "<test>", false)
	tokens := lexer.New(source, sess).ScanTokens()
	prog := parser.New(tokens, sess).ParseProgram()
	if sess.HadError() {
		t.Fatalf("unexpected static errors: %v", sess.Diagnostics())
	}

	var out bytes.Buffer
	interpreter := New(&out, sess)
	resolver.New(interpreter, sess).ResolveProgram(prog)
	if sess.HadError() {
		t.Fatalf("unexpected resolve errors: %v", sess.Diagnostics())
	}

	interpreter.Run(prog)
	return out.String(), sess
}
