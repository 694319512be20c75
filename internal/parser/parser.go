// Package parser implements a recursive-descent, operator-precedence parser
// with panic-mode error recovery over the token stream produced by
// internal/lexer.
package parser

import (
	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/diag"
	"github.com/weaveland/weave/internal/token"
)

// maxArgs is the parameter/argument count limit. Exceeding it is reported
// as a non-fatal error; parsing continues.
const maxArgs = 255

// Parser consumes a fixed token slice (the lexer already scanned the whole
// input) and produces a Program. Errors are reported into the Session
// rather than returned, so that one bad statement does not abort the rest
// of the parse.
type Parser struct {
	tokens    []*token.Token
	current   int
	sess      *diag.Session
	loopDepth int
}

// New creates a Parser over tokens, reporting syntax errors into sess.
func New(tokens []*token.Token, sess *diag.Session) *Parser {
	return &Parser{tokens: tokens, sess: sess}
}

// parseError signals panic-mode unwinding back to the nearest recovery
// point (ParseProgram's per-statement loop). It is a distinct type, never
// surfaced to callers — all user-visible reporting happens via sess.Report
// at the point the error is raised.
type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

// ParseProgram parses the full token stream into a Program. A statement
// that fails to parse is skipped (after synchronizing to the next
// statement boundary) rather than aborting the whole parse, so that the
// Session can report every syntax error in one pass.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		stmt := p.declarationRecovering()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

func (p *Parser) declarationRecovering() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

// --- cursor primitives -----------------------------------------------

func (p *Parser) peek() *token.Token      { return p.tokens[p.current] }
func (p *Parser) previous() *token.Token  { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool           { return p.peek().Kind == token.EOF }

func (p *Parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) *token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

// error reports a Diagnostic at tok and returns a parseError to be panicked
// by the caller, unwinding to the nearest synchronize point.
func (p *Parser) error(tok *token.Token, message string) *parseError {
	if p.sess != nil {
		p.sess.Report(&diag.Diagnostic{
			Stage:    diag.StageParse,
			Severity: diag.SeverityError,
			Pos:      tok.Pos,
			Lexeme:   tok.Lexeme,
			AtEnd:    tok.Kind == token.EOF,
			Message:  message,
		})
	}
	return &parseError{msg: message}
}

// reportOnly records an error without raising a parseError, for non-fatal
// conditions (e.g. argument/parameter count overflow) where parsing should
// continue without synchronizing.
func (p *Parser) reportOnly(tok *token.Token, message string) {
	if p.sess != nil {
		p.sess.Report(&diag.Diagnostic{
			Stage:    diag.StageParse,
			Severity: diag.SeverityError,
			Pos:      tok.Pos,
			Lexeme:   tok.Lexeme,
			AtEnd:    tok.Kind == token.EOF,
			Message:  message,
		})
	}
}

// synchronize discards tokens until it reaches a likely statement boundary:
// just past a ';', or just before a token that starts a new
// declaration/statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FN, token.VAR, token.FOR, token.IF, token.WHILE, token.RETURN:
			return
		}
		p.advance()
	}
}
