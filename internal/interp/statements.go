package interp

import "github.com/weaveland/weave/internal/ast"

// execStmt executes a single statement, returning a non-ctrlNone signal
// when a return/break/continue should unwind to an enclosing frame, and a
// *RuntimeError on the single live runtime fault (which also aborts any
// pending ctrl signal).
func (i *Interpreter) execStmt(stmt ast.Stmt) (ctrl, *RuntimeError) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expr)
		return ctrlNormal, err

	case *ast.VarStmt:
		return i.execVarStmt(s)

	case *ast.MultiVarStmt:
		for _, v := range s.Vars {
			if c, err := i.execVarStmt(v); err != nil {
				return c, err
			}
		}
		return ctrlNormal, nil

	case *ast.BlockStmt:
		return i.execBlockBody(s.Statements, NewEnclosedEnvironment(i.env))

	case *ast.IfStmt:
		return i.execIfStmt(s)

	case *ast.WhileStmt:
		return i.execWhileStmt(s)

	case *ast.ForStmt:
		return i.execForStmt(s)

	case *ast.BreakStmt:
		return ctrl{kind: ctrlBreak}, nil

	case *ast.ContinueStmt:
		return ctrl{kind: ctrlContinue}, nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := i.evalExpr(s.Value)
			if err != nil {
				return ctrlNormal, err
			}
			value = v
		}
		return ctrl{kind: ctrlReturn, value: value}, nil

	case *ast.FunctionStmt:
		fn := NewFunction(s.Name.Lexeme, s.Fn, i.env, false)
		i.env.Define(s.Name.Lexeme, fn)
		return ctrlNormal, nil

	case *ast.ClassStmt:
		return i.execClassStmt(s)

	default:
		panic("interp: unhandled statement node")
	}
}

func (i *Interpreter) execVarStmt(v *ast.VarStmt) (ctrl, *RuntimeError) {
	value := Uninitialized
	if v.Init != nil {
		val, err := i.evalExpr(v.Init)
		if err != nil {
			return ctrlNormal, err
		}
		value = val
	}
	i.env.Define(v.Name.Lexeme, value)
	return ctrlNormal, nil
}

// execBlockBody runs stmts in env, restoring the interpreter's current
// environment on every exit path (normal, control-flow unwind, or error).
// Shared by BlockStmt and function call bodies.
func (i *Interpreter) execBlockBody(stmts []ast.Stmt, env *Environment) (ctrl, *RuntimeError) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		c, err := i.execStmt(stmt)
		if err != nil || c.kind != ctrlNone {
			return c, err
		}
	}
	return ctrlNormal, nil
}

func (i *Interpreter) execIfStmt(s *ast.IfStmt) (ctrl, *RuntimeError) {
	cond, err := i.evalExpr(s.Cond)
	if err != nil {
		return ctrlNormal, err
	}
	if isTruthy(cond) {
		return i.execStmt(s.Then)
	}
	if s.Else != nil {
		return i.execStmt(s.Else)
	}
	return ctrlNormal, nil
}

func (i *Interpreter) execWhileStmt(s *ast.WhileStmt) (ctrl, *RuntimeError) {
	for {
		cond, err := i.evalExpr(s.Cond)
		if err != nil {
			return ctrlNormal, err
		}
		if !isTruthy(cond) {
			return ctrlNormal, nil
		}
		c, err := i.execStmt(s.Body)
		if err != nil {
			return ctrlNormal, err
		}
		switch c.kind {
		case ctrlBreak:
			return ctrlNormal, nil
		case ctrlReturn:
			return c, nil
		}
		// ctrlContinue and ctrlNone both fall through to the next
		// iteration, matching spec's while-loop semantics (no increment
		// clause to run).
	}
}

func (i *Interpreter) execForStmt(s *ast.ForStmt) (ctrl, *RuntimeError) {
	if s.Init != nil {
		if c, err := i.execStmt(s.Init); err != nil || c.kind != ctrlNone {
			return c, err
		}
	}
	for {
		if s.Cond != nil {
			cond, err := i.evalExpr(s.Cond)
			if err != nil {
				return ctrlNormal, err
			}
			if !isTruthy(cond) {
				return ctrlNormal, nil
			}
		}

		c, err := i.execStmt(s.Body)
		if err != nil {
			return ctrlNormal, err
		}
		if c.kind == ctrlBreak {
			return ctrlNormal, nil
		}
		if c.kind == ctrlReturn {
			return c, nil
		}
		// ctrlContinue falls through to Incr below, same as ctrlNone: the
		// increment always runs after an iteration, including after
		// continue, but never after break.

		if s.Incr != nil {
			if _, err := i.evalExpr(s.Incr); err != nil {
				return ctrlNormal, err
			}
		}
	}
}

func (i *Interpreter) execClassStmt(s *ast.ClassStmt) (ctrl, *RuntimeError) {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.lookupVariable(s.Superclass.Name, s.Superclass.ID)
		if err != nil {
			return ctrlNormal, err
		}
		sc, ok := v.(*Class)
		if !ok {
			return ctrlNormal, newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	// Pre-bind the class name to nil so methods may refer to the class
	// itself (e.g. a factory method returning `Name(...)`).
	i.env.Define(s.Name.Lexeme, nil)

	classEnv := i.env
	if superclass != nil {
		classEnv = NewEnclosedEnvironment(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		isInit := m.Name.Lexeme == s.Name.Lexeme
		methods[m.Name.Lexeme] = NewFunction(m.Name.Lexeme, m.Fn, classEnv, isInit)
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	i.env.Assign(s.Name, class)
	return ctrlNormal, nil
}
