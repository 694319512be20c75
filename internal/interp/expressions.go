package interp

import (
	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/token"
)

func (i *Interpreter) evalExpr(expr ast.Expr) (Value, *RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evalExpr(e.Inner)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Ternary:
		return i.evalTernary(e)
	case *ast.Comma:
		if _, err := i.evalExpr(e.Left); err != nil {
			return nil, err
		}
		return i.evalExpr(e.Right)
	case *ast.Variable:
		return i.lookupVariable(e.Name, e.ID)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookupVariable(e.Keyword, e.ID)
	case *ast.Super:
		return i.evalSuper(e)
	case *ast.FunctionExpr:
		return NewFunction("", e, i.env, false), nil
	default:
		panic("interp: unhandled expression node")
	}
}

// lookupVariable resolves name via the resolver's recorded distance, or
// falls back to globals for unresolved (global) references. Reading an
// uninitialized binding is an error.
func (i *Interpreter) lookupVariable(name *token.Token, id ast.NodeID) (Value, *RuntimeError) {
	var value Value
	if depth, ok := i.locals[id]; ok {
		v, found := i.env.GetAt(depth, name.Lexeme)
		if !found {
			return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
		}
		value = v
	} else {
		v, err := i.globals.Get(name)
		if err != nil {
			return nil, err
		}
		value = v
	}
	if isUninitialized(value) {
		return nil, newRuntimeError(name, "Cannot read uninitialized variable '%s'.", name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) assignVariable(name *token.Token, id ast.NodeID, value Value) *RuntimeError {
	if depth, ok := i.locals[id]; ok {
		i.env.AssignAt(depth, name.Lexeme, value)
		return nil
	}
	return i.globals.Assign(name, value)
}

func (i *Interpreter) evalAssign(e *ast.Assign) (Value, *RuntimeError) {
	value, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	if err := i.assignVariable(e.Name, e.ID, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evalLogical(e *ast.Logical) (Value, *RuntimeError) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR_OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return i.evalExpr(e.Right)
}

func (i *Interpreter) evalTernary(e *ast.Ternary) (Value, *RuntimeError) {
	cond, err := i.evalExpr(e.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return i.evalExpr(e.Then)
	}
	return i.evalExpr(e.Else)
}

func (i *Interpreter) evalGet(e *ast.Get) (Value, *RuntimeError) {
	obj, err := i.evalExpr(e.Obj)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	value, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (Value, *RuntimeError) {
	obj, err := i.evalExpr(e.Obj)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (Value, *RuntimeError) {
	depth := i.locals[e.ID]
	superVal, _ := i.env.GetAt(depth, "super")
	superclass := superVal.(*Class)
	thisVal, _ := i.env.GetAt(depth-1, "this")
	instance := thisVal.(*Instance)

	methodName := e.Keyword.Lexeme
	if e.Method != nil {
		methodName = e.Method.Lexeme
	} else {
		methodName = superclass.Name
	}

	method, ok := superclass.FindMethod(methodName)
	if !ok {
		return nil, newRuntimeError(e.Keyword, "Undefined property '%s'.", methodName)
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, *RuntimeError) {
	callee, err := i.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	if i.callDepth >= maxCallDepth {
		return nil, newRuntimeError(e.Paren, "Stack overflow.")
	}
	i.callDepth++
	defer func() { i.callDepth-- }()

	return callable.Call(i, args)
}
