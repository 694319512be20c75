package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/interp"
	"github.com/weaveland/weave/internal/lexer"
	"github.com/weaveland/weave/internal/parser"
	"github.com/weaveland/weave/internal/resolver"
)

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runREPL()
	}
	return runFile(args[0])
}

func runFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return &exitError{code: 74, err: fmt.Errorf("can't read file %q: %w", filename, err)}
	}

	sess := diag.NewSession(string(content), filename, false)
	interpreter := interp.New(os.Stdout, sess)

	prog, staticErr := compile(sess, string(content), interpreter)
	if staticErr != nil {
		return staticErr
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[trace] running %s\n", filename)
	}

	return execute(interpreter, prog)
}

// compile runs the lex -> parse -> resolve pipeline against interpreter
// (the Resolve-sink), printing diagnostics and mapping a static failure to
// exit code 65. It returns a nil *ast.Program on failure.
func compile(sess *diag.Session, source string, interpreter *interp.Interpreter) (*ast.Program, error) {
	l := lexer.New(source, sess)
	tokens := l.ScanTokens()

	p := parser.New(tokens, sess)
	prog := p.ParseProgram()

	if sess.HadError() {
		printDiagnostics(sess)
		return nil, &exitError{code: 65, err: fmt.Errorf("%d static error(s)", countErrors(sess))}
	}

	r := resolver.New(interpreter, sess)
	r.ResolveProgram(prog)

	printDiagnostics(sess) // resolver warnings and errors; lex/parse errors returned above
	if sess.HadError() {
		return nil, &exitError{code: 65, err: fmt.Errorf("%d static error(s)", countErrors(sess))}
	}

	return prog, nil
}

func execute(interpreter *interp.Interpreter, prog *ast.Program) error {
	if dumpAST {
		fmt.Println("AST:")
		for _, stmt := range prog.Statements {
			fmt.Println(stmt.String())
		}
		fmt.Println()
	}

	if runtimeErr := interpreter.Run(prog); runtimeErr != nil {
		return &exitError{code: 70, err: fmt.Errorf("%s", runtimeErr.Format())}
	}
	return nil
}

func printDiagnostics(sess *diag.Session) {
	if out := sess.FormatAllColor(!noColor); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
}

func countErrors(sess *diag.Session) int {
	n := 0
	for _, d := range sess.Diagnostics() {
		if d.Severity == diag.SeverityError {
			n++
		}
	}
	return n
}
