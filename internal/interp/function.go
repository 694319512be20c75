package interp

import "github.com/weaveland/weave/internal/ast"

// Function is a closure: an AST function literal paired with the
// environment it was created in. User-defined named functions, anonymous
// function expressions, and class methods are all represented this way;
// isInitializer distinguishes a class's constructor method for the
// always-return-this discipline.
type Function struct {
	name          string
	decl          *ast.FunctionExpr
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps decl as a closure over closure, named name (empty for
// an anonymous function expression).
func NewFunction(name string, decl *ast.FunctionExpr, closure *Environment, isInitializer bool) *Function {
	return &Function{name: name, decl: decl, closure: closure, isInitializer: isInitializer}
}

// CallableName satisfies Callable.
func (f *Function) CallableName() string {
	if f.name == "" {
		return "anonymous"
	}
	return f.name
}

// Arity is the declared parameter count.
func (f *Function) Arity() int { return len(f.decl.Params) }

// Bind produces a new Function whose closure is a fresh environment
// defining `this` as instance, parented by the method's original closure.
// Initializer-ness is preserved.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.name, f.decl, env, f.isInitializer)
}

// Call creates a fresh environment parented by the closure, binds
// parameters positionally, and executes the body. A Return statement's
// value becomes the result; falling off the end yields nil. An
// initializer always returns the bound `this`, regardless of the body's
// own Return statements (a bare `return;` short-circuits to `this` too).
func (f *Function) Call(i *Interpreter, args []Value) (Value, *RuntimeError) {
	env := NewEnclosedEnvironment(f.closure)
	for idx, param := range f.decl.Params {
		env.Define(param.Lexeme, args[idx])
	}

	c, err := i.execBlockBody(f.decl.Body, env)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		v, _ := f.closure.GetAt(0, "this")
		return v, nil
	}

	if c.kind == ctrlReturn {
		return c.value, nil
	}
	return nil, nil
}
