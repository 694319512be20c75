package interp

import (
	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/token"
)

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, *RuntimeError) {
	switch e.Op.Kind {
	case token.BANG:
		v, err := i.evalExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return !isTruthy(v), nil

	case token.MINUS:
		v, err := i.evalExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		n, ok := v.(float64)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil

	case token.PLUS:
		v, err := i.evalExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(float64); !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return v, nil

	case token.PLUS_PLUS, token.MINUS_MINUS:
		return i.evalIncrDecr(e)

	default:
		panic("interp: unhandled unary operator")
	}
}

// evalIncrDecr implements prefix ++/--, which require an l-value operand
// (a Variable or a Get property access) holding a number.
func (i *Interpreter) evalIncrDecr(e *ast.Unary) (Value, *RuntimeError) {
	current, err := i.evalLValue(e.Operand, e.Op)
	if err != nil {
		return nil, err
	}
	n, ok := current.(float64)
	if !ok {
		return nil, newRuntimeError(e.Op, "Operand must be a number.")
	}
	var next float64
	if e.Op.Kind == token.PLUS_PLUS {
		next = n + 1
	} else {
		next = n - 1
	}
	if err := i.assignLValue(e.Operand, next); err != nil {
		return nil, err
	}
	return next, nil
}

// evalLValue reads an l-value's current value, reporting the spec's
// distinct diagnostics for non-l-value operands and uninitialized
// variables.
func (i *Interpreter) evalLValue(operand ast.Expr, op *token.Token) (Value, *RuntimeError) {
	switch target := operand.(type) {
	case *ast.Variable:
		var value Value
		if depth, ok := i.locals[target.ID]; ok {
			v, found := i.env.GetAt(depth, target.Name.Lexeme)
			if !found {
				return nil, newRuntimeError(target.Name, "Undefined variable '%s'.", target.Name.Lexeme)
			}
			value = v
		} else {
			v, err := i.globals.Get(target.Name)
			if err != nil {
				return nil, err
			}
			value = v
		}
		if isUninitialized(value) {
			return nil, newRuntimeError(op, "Cannot assign to uninitialized variable.")
		}
		return value, nil
	case *ast.Get:
		return i.evalGet(target)
	default:
		return nil, newRuntimeError(op, "Cannot assign to literal.")
	}
}

func (i *Interpreter) assignLValue(operand ast.Expr, value Value) *RuntimeError {
	switch target := operand.(type) {
	case *ast.Variable:
		return i.assignVariable(target.Name, target.ID, value)
	case *ast.Get:
		obj, err := i.evalExpr(target.Obj)
		if err != nil {
			return err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return newRuntimeError(target.Name, "Only instances have fields.")
		}
		instance.Set(target.Name.Lexeme, value)
		return nil
	default:
		panic("interp: assignLValue on non-l-value")
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, *RuntimeError) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		return evalAdd(left, right, e.Op)
	case token.MINUS:
		return numericBinary(left, right, e.Op, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numericBinary(left, right, e.Op, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		lf, rf, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		if rf == 0 {
			return nil, newRuntimeError(e.Op, "Division by zero.")
		}
		return lf / rf, nil
	case token.PERCENT:
		lf, rf, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		if rf == 0 {
			return nil, newRuntimeError(e.Op, "Division by zero.")
		}
		return floatMod(lf, rf), nil
	case token.STARSTAR:
		return numericBinary(left, right, e.Op, floatPow)
	case token.GREATER:
		return compare(left, right, e.Op, func(c int) bool { return c > 0 })
	case token.GREATER_EQ:
		return compare(left, right, e.Op, func(c int) bool { return c >= 0 })
	case token.LESS:
		return compare(left, right, e.Op, func(c int) bool { return c < 0 })
	case token.LESS_EQ:
		return compare(left, right, e.Op, func(c int) bool { return c <= 0 })
	case token.EQUAL_EQ:
		return isEqual(left, right), nil
	case token.BANG_EQ:
		return !isEqual(left, right), nil
	default:
		panic("interp: unhandled binary operator")
	}
}

func evalAdd(left, right Value, op *token.Token) (Value, *RuntimeError) {
	if lf, ok := left.(float64); ok {
		if rf, ok := right.(float64); ok {
			return lf + rf, nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs, nil
		}
	}
	return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")
}

func numericBinary(left, right Value, op *token.Token, f func(a, b float64) float64) (Value, *RuntimeError) {
	lf, rf, ok := bothNumbers(left, right)
	if !ok {
		return nil, newRuntimeError(op, "Operands must be numbers.")
	}
	return f(lf, rf), nil
}

func compare(left, right Value, op *token.Token, accept func(int) bool) (Value, *RuntimeError) {
	if lf, ok := left.(float64); ok {
		if rf, ok := right.(float64); ok {
			return accept(sign(lf - rf)), nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			switch {
			case ls < rs:
				return accept(-1), nil
			case ls > rs:
				return accept(1), nil
			default:
				return accept(0), nil
			}
		}
	}
	return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

func bothNumbers(left, right Value) (float64, float64, bool) {
	lf, ok1 := left.(float64)
	rf, ok2 := right.(float64)
	return lf, rf, ok1 && ok2
}
