// Package cmd implements the weave command-line interface: the root command
// runs a script file or drops into a REPL, with a version subcommand
// alongside it, organized the way the teacher project splits cmd/dwscript/cmd
// (one file per concern, PersistentFlags on root, RunE handlers returning
// errors up to Execute()).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set by build flags; left at its development default otherwise.
var Version = "0.1.0-dev"

var (
	dumpAST bool
	trace   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:     "weave [script]",
	Short:   "Weave scripting language interpreter",
	Version: Version,
	Long: `weave is a tree-walking interpreter for the Weave scripting language.

With no arguments it starts an interactive REPL. With one argument it runs
the named script file and exits with a status reflecting the outcome:

  0   program ran to completion
  64  usage error (wrong number of arguments)
  65  static error (lexical, syntax, or resolution failure)
  70  uncaught runtime error
  74  the named script could not be read`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return usageErrorf("usage: weave [script]")
		}
		return nil
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed program before executing it")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log a one-line notice before execution begins")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in diagnostic output")
	rootCmd.AddCommand(versionCmd)
}

// exitError carries a specific process exit code up through cobra's
// error-returning RunE chain, since Execute() needs to distinguish usage
// (64), static (65), runtime (70), and file-not-found (74) failures rather
// than collapsing them to cobra's default exit(1).
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func usageErrorf(format string, args ...any) error {
	return &exitError{code: 64, err: fmt.Errorf(format, args...)}
}

// Execute runs the root command and exits the process with the code the
// failing stage reported, or 0 on success.
func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var ee *exitError
	if e, ok := err.(*exitError); ok {
		ee = e
	} else {
		ee = &exitError{code: 1, err: err}
	}
	if ee.err != nil {
		fmt.Fprintln(os.Stderr, ee.err.Error())
	}
	os.Exit(ee.code)
}
