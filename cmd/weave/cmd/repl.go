package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/interp"
)

// runREPL reads one statement per line from stdin and executes it against a
// single running Interpreter, so variable and function declarations persist
// across lines. The "> " prompt and the value-echo banner are both gated on
// stdin being a terminal: a piped script (`weave < script.weave`) must
// produce only the program's own output.
func runREPL() error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	sess := diag.NewSession("", "<stdin>", true)
	interpreter := interp.New(os.Stdout, sess)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && err != io.EOF {
				return err
			}
			if interactive {
				fmt.Println()
			}
			return nil
		}

		line := autoSemicolon(scanner.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		sess.Source = line
		sess.Reset()

		runLine(interpreter, sess, line, interactive)
	}
}

// autoSemicolon appends a trailing ';' if the trimmed line doesn't already
// end with ';', '{' or '}' — letting the REPL accept bare
// expressions without the user typing the statement terminator.
func autoSemicolon(line string) string {
	trimmed := strings.TrimRight(line, " \t")
	t := strings.TrimSpace(trimmed)
	if t == "" {
		return trimmed
	}
	switch t[len(t)-1] {
	case ';', '{', '}':
		return trimmed
	}
	return trimmed + ";"
}

func runLine(interpreter *interp.Interpreter, sess *diag.Session, line string, interactive bool) {
	prog, staticErr := compile(sess, line, interpreter)
	if staticErr != nil {
		return // diagnostics already printed by compile
	}

	if len(prog.Statements) == 1 {
		echo, hasEcho, err := interpreter.RunREPLStatement(prog.Statements[0])
		if err != nil {
			sess.ReportRuntime(err)
			fmt.Fprintln(os.Stderr, err.Format())
			return
		}
		if hasEcho && interactive {
			fmt.Println(interp.QuoteValue(echo))
		}
		return
	}

	for _, stmt := range prog.Statements {
		if _, _, err := interpreter.RunREPLStatement(stmt); err != nil {
			sess.ReportRuntime(err)
			fmt.Fprintln(os.Stderr, err.Format())
			return
		}
	}
}
