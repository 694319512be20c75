// Package diag provides the diagnostic sink shared by the scanner, parser,
// resolver and interpreter: error/warning formatting with source context
// and a Session that threads error-state flags through the pipeline without
// resorting to package-level globals.
package diag

import (
	"fmt"
	"strings"

	"github.com/weaveland/weave/internal/token"
)

// Severity classifies a Diagnostic as an error or a warning. Warnings never
// set a Session's error flags.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Stage identifies which pipeline phase raised a Diagnostic; the wire
// format is identical across stages.
type Stage int

const (
	StageLex Stage = iota
	StageParse
	StageResolve
)

// Diagnostic is a single lexical, syntactic or static-analysis finding.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Pos      token.Position
	Lexeme   string // offending token text, or "" to render "at end"
	AtEnd    bool
	Message  string
}

// Format renders the diagnostic per spec:
//
//	[line L] Error <at 'lexeme'|at end>: message
//	[line L] Warning at 'lexeme': Unused variable 'name' in the current scope.
func (d *Diagnostic) Format() string { return d.FormatColor(false) }

// FormatColor is Format with the severity label wrapped in ANSI color
// (red for errors, yellow for warnings) when color is true — the
// `--no-color` CLI flag passes false, matching the teacher's
// CompilerError.Format(color bool) hand-rolled-ANSI approach.
func (d *Diagnostic) FormatColor(color bool) string {
	label := "Error"
	code := ansiRed
	if d.Severity == SeverityWarning {
		label = "Warning"
		code = ansiYellow
	}
	if color {
		label = code + label + ansiReset
	}

	var where string
	if d.Severity == SeverityWarning {
		where = fmt.Sprintf("at '%s'", d.Lexeme)
		return fmt.Sprintf("[line %d] %s %s: %s", d.Pos.Line, label, where, d.Message)
	}
	if d.AtEnd {
		where = "at end"
	} else {
		where = fmt.Sprintf("at '%s'", d.Lexeme)
	}
	return fmt.Sprintf("[line %d] %s %s: %s", d.Pos.Line, label, where, d.Message)
}

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// RuntimeError is the single live runtime fault carried by the interpreter.
// It aborts the current top-level statement.
type RuntimeError struct {
	Tok     *token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Format renders the runtime error per spec: "[line L] message".
func (e *RuntimeError) Format() string {
	line := 0
	if e.Tok != nil {
		line = e.Tok.Pos.Line
	}
	return fmt.Sprintf("[line %d] %s", line, e.Message)
}

// Session threads error-state flags through scan -> parse -> resolve ->
// interpret for a single program run. It is owned by the caller (a CLI
// command or the REPL loop) rather than kept as process-wide state, per the
// "no global singletons" design note: every stage receives the Session it
// should report into instead of reaching for a shared package variable.
type Session struct {
	Source           string
	File             string
	REPL             bool
	diagnostics      []*Diagnostic
	hadError         bool
	hadRuntimeError  bool
	lastRuntimeError *RuntimeError
}

// NewSession creates a Session for running source from file (use "" or
// "<stdin>" for REPL input) in repl mode or not.
func NewSession(source, file string, repl bool) *Session {
	return &Session{Source: source, File: file, REPL: repl}
}

// Report records a Diagnostic. Errors set HadError; warnings never do.
func (s *Session) Report(d *Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
	if d.Severity == SeverityError {
		s.hadError = true
	}
}

// ReportRuntime records the single runtime fault for this statement/run.
func (s *Session) ReportRuntime(err *RuntimeError) {
	s.hadRuntimeError = true
	s.lastRuntimeError = err
}

// HadError reports whether any lexical, syntactic or static error was
// reported this session. Static errors stop the pipeline before execution.
func (s *Session) HadError() bool { return s.hadError }

// HadRuntimeError reports whether a runtime fault occurred.
func (s *Session) HadRuntimeError() bool { return s.hadRuntimeError }

// LastRuntimeError returns the most recently reported runtime fault, or nil.
func (s *Session) LastRuntimeError() *RuntimeError { return s.lastRuntimeError }

// Diagnostics returns all diagnostics recorded this session, in report order.
func (s *Session) Diagnostics() []*Diagnostic { return s.diagnostics }

// Reset clears error flags and recorded diagnostics. The REPL calls this
// between lines so that one line's error does not poison the next.
func (s *Session) Reset() {
	s.diagnostics = nil
	s.hadError = false
	s.hadRuntimeError = false
	s.lastRuntimeError = nil
}

// FormatAll joins every recorded diagnostic's Format() with newlines,
// suitable for writing directly to stderr.
func (s *Session) FormatAll() string { return s.FormatAllColor(false) }

// FormatAllColor is FormatAll with FormatColor(color) applied to each entry.
func (s *Session) FormatAllColor(color bool) string {
	var sb strings.Builder
	for _, d := range s.diagnostics {
		sb.WriteString(d.FormatColor(color))
		sb.WriteByte('\n')
	}
	return sb.String()
}
