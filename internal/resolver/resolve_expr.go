package resolver

import "github.com/weaveland/weave/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *ast.Literal:
		// no names to resolve
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Unary:
		r.resolveExpr(e.Operand)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Ternary:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)
	case *ast.Comma:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if r.innermostUninitialized(e.Name) {
			r.error(e.Name, "Can't read local variable in its own initializer.")
		}
		r.resolveLocal(e.ID, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveAssignTarget(e)
	case *ast.Call:
		r.resolveCall(e)
	case *ast.Get:
		r.resolveExpr(e.Obj)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Obj)
	case *ast.This:
		if r.currentClass == ckNone {
			r.error(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID, e.Keyword)
	case *ast.Super:
		r.resolveSuper(e)
	case *ast.FunctionExpr:
		r.resolveFunctionBody(e, fkFunction)
	default:
		panic("resolver: unhandled expression node")
	}
}

// resolveAssignTarget resolves the distance for the token an Assign writes
// to. Assign carries its own NodeID distinct from any Variable node, so it
// is looked up independently.
func (r *Resolver) resolveAssignTarget(a *ast.Assign) {
	r.resolveLocal(a.ID, a.Name)
}

func (r *Resolver) resolveSuper(s *ast.Super) {
	switch r.currentClass {
	case ckNone:
		r.error(s.Keyword, "Can't use 'super' outside of a class.")
		return
	case ckClass:
		r.error(s.Keyword, "Can't use 'super' in a class with no superclass.")
		return
	}
	r.resolveLocal(s.ID, s.Keyword)
}

func (r *Resolver) resolveCall(c *ast.Call) {
	if sup, ok := c.Callee.(*ast.Super); ok && sup.Method == nil {
		r.resolveSuper(sup)
		if r.currentFunction != fkInitializer || !r.superCallContext {
			r.error(sup.Keyword, "'super(...)' may only appear as the first statement of an initializer.")
		}
	} else {
		r.resolveExpr(c.Callee)
	}
	for _, arg := range c.Args {
		r.resolveExpr(arg)
	}
}
