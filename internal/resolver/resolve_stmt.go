package resolver

import "github.com/weaveland/weave/internal/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	if stmt == nil {
		return
	}
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)
	case *ast.VarStmt:
		r.resolveVarStmt(s)
	case *ast.MultiVarStmt:
		for _, v := range s.Vars {
			r.resolveVarStmt(v)
		}
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		// Both branches must be resolved, even though only one executes at
		// runtime (see spec Redesign Flags: the source this is ported from
		// skips the else branch, which is a bug).
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.ForStmt:
		if s.Init != nil {
			r.resolveStmt(s.Init)
		}
		if s.Cond != nil {
			r.resolveExpr(s.Cond)
		}
		if s.Incr != nil {
			r.resolveExpr(s.Incr)
		}
		r.resolveStmt(s.Body)
	case *ast.BreakStmt, *ast.ContinueStmt:
		// no names to resolve
	case *ast.ReturnStmt:
		r.resolveReturn(s)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunctionBody(s.Fn, fkFunction)
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement node")
	}
}

func (r *Resolver) resolveVarStmt(v *ast.VarStmt) {
	r.declare(v.Name)
	if v.Init != nil {
		r.resolveExpr(v.Init)
	}
	r.define(v.Name)
}

func (r *Resolver) resolveReturn(s *ast.ReturnStmt) {
	if r.currentFunction == fkNone {
		r.error(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == fkInitializer {
			r.error(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

// resolveFunctionBody resolves params and body in a fresh scope, tracking
// the enclosing function kind and (for initializers) the first-statement
// super() discipline.
func (r *Resolver) resolveFunctionBody(fn *ast.FunctionExpr, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	r.beginScope()

	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}

	if kind == fkInitializer {
		for i, stmt := range fn.Body {
			r.superCallContext = i == 0
			r.resolveStmt(stmt)
		}
		r.superCallContext = false
	} else {
		r.resolveStmts(fn.Body)
	}

	r.endScope()
	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(c *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = ckClass

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.error(c.Superclass.Name, "A class can't inherit from itself.")
		} else {
			r.currentClass = ckSubclass
			r.resolveExpr(c.Superclass)
		}
	}

	if c.Superclass != nil {
		r.beginScope()
		r.defineSynthetic("super")
	}

	r.beginScope()
	r.defineSynthetic("this")

	for _, method := range c.Methods {
		kind := fkMethod
		if method.Name.Lexeme == c.Name.Lexeme {
			kind = fkInitializer
		}
		r.resolveFunctionBody(method.Fn, kind)
	}

	r.endScope() // this

	if c.Superclass != nil {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
}
