package ast

import (
	"fmt"
	"strings"

	"github.com/weaveland/weave/internal/token"
)

// Literal is a constant value baked into the source: a number, string,
// bool, or nil.
type Literal struct {
	Value any
}

func (*Literal) exprNode() {}
func (l *Literal) String() string {
	if l.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", l.Value)
}

// Grouping is a parenthesized sub-expression, kept distinct from its inner
// expression so pretty-printing can reproduce parentheses.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode()      {}
func (g *Grouping) String() string { return "(group " + g.Inner.String() + ")" }

// Unary is a prefix operator applied to a single operand: !, -, +, ++, --.
type Unary struct {
	Op      *token.Token
	Operand Expr
}

func (*Unary) exprNode()      {}
func (u *Unary) String() string { return "(" + u.Op.Lexeme + " " + u.Operand.String() + ")" }

// Binary is an infix arithmetic, comparison, or bitwise operator.
type Binary struct {
	Left  Expr
	Op    *token.Token
	Right Expr
}

func (*Binary) exprNode() {}
func (b *Binary) String() string {
	return "(" + b.Op.Lexeme + " " + b.Left.String() + " " + b.Right.String() + ")"
}

// Logical is && or ||: short-circuiting, kept distinct from Binary because
// it must not evaluate its right operand unconditionally.
type Logical struct {
	Left  Expr
	Op    *token.Token
	Right Expr
}

func (*Logical) exprNode() {}
func (l *Logical) String() string {
	return "(" + l.Op.Lexeme + " " + l.Left.String() + " " + l.Right.String() + ")"
}

// Ternary is cond ? then : else.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*Ternary) exprNode() {}
func (t *Ternary) String() string {
	return "(?: " + t.Cond.String() + " " + t.Then.String() + " " + t.Else.String() + ")"
}

// Comma is the left-associative comma operator: evaluate Left for effect,
// discard it, and return Right.
type Comma struct {
	Left  Expr
	Op    *token.Token
	Right Expr
}

func (*Comma) exprNode()      {}
func (c *Comma) String() string { return "(, " + c.Left.String() + " " + c.Right.String() + ")" }

// Variable is a reference to a named binding. ID is the resolver's lookup
// key for its scope-distance side table.
type Variable struct {
	ID   NodeID
	Name *token.Token
}

// NewVariable allocates a Variable with a fresh resolver identity.
func NewVariable(name *token.Token) *Variable {
	return &Variable{ID: newNodeID(), Name: name}
}

func (*Variable) exprNode()      {}
func (v *Variable) String() string { return v.Name.Lexeme }

// Assign is name = value. ID is the resolver's lookup key.
type Assign struct {
	ID    NodeID
	Name  *token.Token
	Value Expr
}

// NewAssign allocates an Assign with a fresh resolver identity.
func NewAssign(name *token.Token, value Expr) *Assign {
	return &Assign{ID: newNodeID(), Name: name, Value: value}
}

func (*Assign) exprNode() {}
func (a *Assign) String() string {
	return "(= " + a.Name.Lexeme + " " + a.Value.String() + ")"
}

// Call is callee(args...). Paren is the closing ')' token, used to anchor
// arity-mismatch diagnostics at the call site.
type Call struct {
	Callee Expr
	Paren  *token.Token
	Args   []Expr
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return "(call " + c.Callee.String() + " " + strings.Join(args, " ") + ")"
}

// Get is obj.name: a property or method read.
type Get struct {
	Obj  Expr
	Name *token.Token
}

func (*Get) exprNode()      {}
func (g *Get) String() string { return "(. " + g.Obj.String() + " " + g.Name.Lexeme + ")" }

// Set is obj.name = value: a property write.
type Set struct {
	Obj   Expr
	Name  *token.Token
	Value Expr
}

func (*Set) exprNode() {}
func (s *Set) String() string {
	return "(.= " + s.Obj.String() + " " + s.Name.Lexeme + " " + s.Value.String() + ")"
}

// This is a `this` reference inside a method body. ID is the resolver's
// lookup key.
type This struct {
	ID      NodeID
	Keyword *token.Token
}

// NewThis allocates a This with a fresh resolver identity.
func NewThis(keyword *token.Token) *This {
	return &This{ID: newNodeID(), Keyword: keyword}
}

func (*This) exprNode()      {}
func (t *This) String() string { return "this" }

// Super is a `super` reference, optionally naming a Method (super.foo) or
// bare (super(...) chain-constructor callee). ID is the resolver's lookup
// key.
type Super struct {
	ID      NodeID
	Keyword *token.Token
	Method  *token.Token // nil for the bare super(...) constructor form
}

// NewSuper allocates a Super with a fresh resolver identity.
func NewSuper(keyword *token.Token, method *token.Token) *Super {
	return &Super{ID: newNodeID(), Keyword: keyword, Method: method}
}

func (*Super) exprNode() {}
func (s *Super) String() string {
	if s.Method != nil {
		return "(super." + s.Method.Lexeme + ")"
	}
	return "(super)"
}

// FunctionExpr is an anonymous function literal: `fn (params) { body }`.
type FunctionExpr struct {
	Params []*token.Token
	Body   []Stmt
}

func (*FunctionExpr) exprNode() {}
func (f *FunctionExpr) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	return "(fn (" + strings.Join(names, " ") + "))"
}
