package interp

import (
	"fmt"

	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/token"
)

// RuntimeError is an alias for diag.RuntimeError: the interpreter package
// constructs them constantly, so it gets its own short name, but the
// Session that collects them for reporting lives in internal/diag.
type RuntimeError = diag.RuntimeError

func newRuntimeError(tok *token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Tok: tok, Message: fmt.Sprintf(format, args...)}
}
