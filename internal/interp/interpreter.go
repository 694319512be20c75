// Package interp implements the tree-walking evaluator: the runtime value
// model (closures, classes, instances, environments) and the statement and
// expression evaluators that walk the resolved AST.
package interp

import (
	"io"

	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/diag"
)

// maxCallDepth bounds function-call recursion. The Python reference this
// language is modeled on relies on the host interpreter's own recursion
// limit to turn runaway recursion into a catchable error; Go's goroutine
// stack grows instead of raising a catchable condition at a fixed depth,
// so the interpreter tracks call depth itself and raises a runtime error
// in its place.
const maxCallDepth = 1000

// Interpreter evaluates a resolved Program against an environment chain
// rooted at globals. It implements resolver.Resolve so the resolver can
// hand it scope-distance annotations directly.
type Interpreter struct {
	globals   *Environment
	env       *Environment
	locals    map[ast.NodeID]int
	out       io.Writer
	sess      *diag.Session
	callDepth int
}

// New creates an Interpreter writing `print` output to out and reporting
// runtime errors into sess. The two built-ins, clock and print, are
// registered in globals.
func New(out io.Writer, sess *diag.Session) *Interpreter {
	globals := NewEnvironment()
	i := &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.NodeID]int),
		out:     out,
		sess:    sess,
	}
	registerBuiltins(globals)
	return i
}

// Resolve records the scope distance the resolver computed for a
// Variable/Assign/This/Super node, keyed by its stable NodeID.
func (i *Interpreter) Resolve(id ast.NodeID, depth int) {
	i.locals[id] = depth
}

// Run executes every statement of prog against the global environment.
// Execution stops at the first runtime error, which is both returned and
// reported into the Session (file-mode callers map it to exit code 70).
func (i *Interpreter) Run(prog *ast.Program) *RuntimeError {
	for _, stmt := range prog.Statements {
		if _, err := i.execStmt(stmt); err != nil {
			i.sess.ReportRuntime(err)
			return err
		}
	}
	return nil
}

// RunREPLStatement executes a single REPL-mode statement. Unlike Run, an
// expression statement whose value was not already printed by `print` is
// echoed via the returned value; the REPL driver is responsible for
// stringifying and printing it.
func (i *Interpreter) RunREPLStatement(stmt ast.Stmt) (echo Value, hasEcho bool, err *RuntimeError) {
	exprStmt, ok := stmt.(*ast.ExpressionStmt)
	if !ok {
		_, err = i.execStmt(stmt)
		return nil, false, err
	}
	if call, ok := exprStmt.Expr.(*ast.Call); ok {
		if v, ok := call.Callee.(*ast.Variable); ok && v.Name.Lexeme == "print" {
			_, err = i.evalExpr(exprStmt.Expr)
			return nil, false, err
		}
	}
	value, err := i.evalExpr(exprStmt.Expr)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}
