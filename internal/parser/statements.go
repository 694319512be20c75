package parser

import (
	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/token"
)

// declaration parses a declaration or falls through to statement. Keeping
// declarations (class/fn/var) distinct from other statements mirrors the
// grammar's own split and keeps panic-mode recovery anchored at a single
// dispatch point.
func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.checkFunctionDecl():
		p.advance()
		return p.functionDeclaration("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	}
	return p.statement()
}

// checkFunctionDecl distinguishes `fn name(...)` (a declaration) from
// `fn (...)` (an anonymous function literal, parsed as a primary
// expression) by peeking past FN for an identifier.
func (p *Parser) checkFunctionDecl() bool {
	if !p.check(token.FN) {
		return false
	}
	return p.checkNextIsIdent()
}

func (p *Parser) checkNextIsIdent() bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Kind == token.IDENT
}

func (p *Parser) functionDeclaration(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENT, "Expect "+kind+" name.")
	fn := p.functionBody()
	return &ast.FunctionStmt{Name: name, Fn: fn}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENT, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(token.LBRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		methods = append(methods, p.functionDeclaration("method"))
	}
	p.consume(token.RBRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) varDeclaration() ast.Stmt {
	first := p.singleVarDeclaration()
	if !p.check(token.COMMA) {
		p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
		return first
	}
	vars := []*ast.VarStmt{first}
	for p.match(token.COMMA) {
		vars = append(vars, p.singleVarDeclaration())
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.MultiVarStmt{Vars: vars}
}

func (p *Parser) singleVarDeclaration() *ast.VarStmt {
	name := p.consume(token.IDENT, "Expect variable name.")
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.assignment()
	}
	return &ast.VarStmt{Name: name, Init: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.CONTINUE):
		return p.continueStatement()
	case p.match(token.LBRACE):
		return &ast.BlockStmt{Statements: p.block()}
	}
	return p.expressionStatement()
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt := p.declarationRecovering()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RBRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after while condition.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LPAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.consume(token.RPAREN, "Expect ')' after for clauses.")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	forStmt := &ast.ForStmt{Init: init, Cond: cond, Incr: incr, Body: body}
	// The init clause is wrapped in an outer block so its declarations
	// scope to the loop alone, per spec's for-desugaring.
	return &ast.BlockStmt{Statements: []ast.Stmt{forStmt}}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		panic(p.error(keyword, "'break' outside of a loop."))
	}
	p.consume(token.SEMICOLON, "Expect ';' after 'break'.")
	return &ast.BreakStmt{Keyword: keyword}
}

func (p *Parser) continueStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		panic(p.error(keyword, "'continue' outside of a loop."))
	}
	p.consume(token.SEMICOLON, "Expect ';' after 'continue'.")
	return &ast.ContinueStmt{Keyword: keyword}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}
