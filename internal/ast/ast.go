// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed by the resolver and interpreter.
//
// Expression nodes that participate in variable resolution (Variable,
// Assign, This, Super) carry a stable identity via an embedded NodeID,
// assigned monotonically at construction. The resolver keys its
// expression->scope-distance side table by this id rather than by
// structural equality, so that syntactically identical references (e.g.
// "a; a; a;") each get their own entry.
package ast

import "sync/atomic"

// NodeID is a monotonically increasing identifier assigned to every
// expression node that the resolver may annotate.
type NodeID uint64

var nextNodeID atomic.Uint64

func newNodeID() NodeID {
	return NodeID(nextNodeID.Add(1))
}

// Expr is the sum type of all expression nodes.
type Expr interface {
	exprNode()
	String() string
}

// Stmt is the sum type of all statement nodes.
type Stmt interface {
	stmtNode()
	String() string
}

// Program is the root of a parsed source file or REPL line: a sequence of
// statements. A statement that fails to parse is dropped during error
// recovery, so Statements holds no nil entries (normally a session with
// parse errors never reaches the resolver).
type Program struct {
	Statements []Stmt
}
