package ast

import (
	"strings"

	"github.com/weaveland/weave/internal/token"
)

// ExpressionStmt wraps an expression evaluated for its side effect (or, in
// REPL mode, for its value echo).
type ExpressionStmt struct {
	Expr Expr
}

func (*ExpressionStmt) stmtNode()      {}
func (e *ExpressionStmt) String() string { return e.Expr.String() + ";" }

// VarStmt is a single `var name [= init];` declaration.
type VarStmt struct {
	Name *token.Token
	Init Expr // nil if uninitialized
}

func (*VarStmt) stmtNode() {}
func (v *VarStmt) String() string {
	if v.Init == nil {
		return "(var " + v.Name.Lexeme + ")"
	}
	return "(var " + v.Name.Lexeme + " = " + v.Init.String() + ")"
}

// MultiVarStmt is a comma-separated list of var declarations:
// `var a = 1, b = 2;`.
type MultiVarStmt struct {
	Vars []*VarStmt
}

func (*MultiVarStmt) stmtNode() {}
func (m *MultiVarStmt) String() string {
	parts := make([]string, len(m.Vars))
	for i, v := range m.Vars {
		parts[i] = v.String()
	}
	return "(multivar " + strings.Join(parts, " ") + ")"
}

// BlockStmt is `{ stmts... }`, executed in a fresh enclosed environment.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}
func (b *BlockStmt) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String()
	}
	return "(block " + strings.Join(parts, " ") + ")"
}

// IfStmt is `if (Cond) Then [else Else]`. Both Then and Else (when present)
// must be resolved by the resolver (see spec Redesign Flags).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else clause
}

func (*IfStmt) stmtNode() {}
func (i *IfStmt) String() string {
	if i.Else == nil {
		return "(if " + i.Cond.String() + " " + i.Then.String() + ")"
	}
	return "(if " + i.Cond.String() + " " + i.Then.String() + " " + i.Else.String() + ")"
}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (*WhileStmt) stmtNode() {}
func (w *WhileStmt) String() string {
	return "(while " + w.Cond.String() + " " + w.Body.String() + ")"
}

// ForStmt is `for (Init; Cond; Incr) Body`, any clause may be absent. The
// parser wraps this in an outer BlockStmt so Init's declarations scope to
// the loop only.
type ForStmt struct {
	Init Stmt // *VarStmt, *MultiVarStmt, *ExpressionStmt, or nil
	Cond Expr // nil means "true"
	Incr Expr // nil means no increment
	Body Stmt
}

func (*ForStmt) stmtNode()      {}
func (f *ForStmt) String() string { return "(for ...)" }

// BreakStmt is `break;`.
type BreakStmt struct {
	Keyword *token.Token
}

func (*BreakStmt) stmtNode()      {}
func (*BreakStmt) String() string { return "(break)" }

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Keyword *token.Token
}

func (*ContinueStmt) stmtNode()      {}
func (*ContinueStmt) String() string { return "(continue)" }

// ReturnStmt is `return [Value];`. Keyword anchors diagnostics.
type ReturnStmt struct {
	Keyword *token.Token
	Value   Expr // nil means implicit nil
}

func (*ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "(return)"
	}
	return "(return " + r.Value.String() + ")"
}

// FunctionStmt is a named function/method declaration:
// `fn name(params) { body }`.
type FunctionStmt struct {
	Name *token.Token
	Fn   *FunctionExpr
}

func (*FunctionStmt) stmtNode()      {}
func (f *FunctionStmt) String() string { return "(fn " + f.Name.Lexeme + ")" }

// ClassStmt is a class declaration, optionally extending Superclass (a
// Variable reference resolved like any other name), with a flat list of
// methods (each a FunctionStmt; a method named identically to the class is
// the initializer).
type ClassStmt struct {
	Name       *token.Token
	Superclass *Variable // nil if no "< Superclass" clause
	Methods    []*FunctionStmt
}

func (*ClassStmt) stmtNode()      {}
func (c *ClassStmt) String() string { return "(class " + c.Name.Lexeme + ")" }
