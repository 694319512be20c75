package interp

import (
	"fmt"
	"time"
)

// nativeFunction adapts a Go closure to the Callable interface for the
// language's built-ins. Native functions never return a *RuntimeError
// themselves in this language's small built-in set, but the signature
// matches Callable so they can be stored in an Environment like any other
// value.
type nativeFunction struct {
	name  string
	arity int
	fn    func(i *Interpreter, args []Value) (Value, *RuntimeError)
}

func (n *nativeFunction) CallableName() string { return n.name }
func (n *nativeFunction) Arity() int            { return n.arity }
func (n *nativeFunction) Call(i *Interpreter, args []Value) (Value, *RuntimeError) {
	return n.fn(i, args)
}

// registerBuiltins defines the language's two native functions in globals:
// clock, for benchmarking and seeding time-based programs, and print, the
// only way a Weave program produces output.
func registerBuiltins(globals *Environment) {
	globals.Define("clock", &nativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(i *Interpreter, args []Value) (Value, *RuntimeError) {
			return float64(time.Now().Round(time.Second).Unix()), nil
		},
	})

	globals.Define("print", &nativeFunction{
		name:  "print",
		arity: 1,
		fn: func(i *Interpreter, args []Value) (Value, *RuntimeError) {
			fmt.Fprintln(i.out, stringify(args[0]))
			return nil, nil
		},
	})
}
