package parser

import (
	"github.com/weaveland/weave/internal/ast"
	"github.com/weaveland/weave/internal/token"
)

// expression parses the comma operator, the lowest-precedence level.
func (p *Parser) expression() ast.Expr {
	return p.comma()
}

func (p *Parser) comma() ast.Expr {
	expr := p.assignment()
	for p.match(token.COMMA) {
		op := p.previous()
		right := p.assignment()
		expr = &ast.Comma{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return &ast.Set{Obj: target.Obj, Name: target.Name, Value: value}
		}
		p.reportOnly(equals, "Invalid assignment target.")
		return expr
	}

	if isReservedCompoundAssign(p.peek().Kind) {
		tok := p.advance()
		panic(p.error(tok, "Compound assignment operators are reserved and not yet supported."))
	}

	return expr
}

func isReservedCompoundAssign(k token.Kind) bool {
	switch k {
	case token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ, token.PERCENT_EQ,
		token.STARSTAR_EQ, token.AMP_EQ, token.PIPE_EQ, token.CARET_EQ, token.SHL_EQ, token.SHR_EQ:
		return true
	}
	return false
}

func (p *Parser) ternary() ast.Expr {
	expr := p.or()
	if p.match(token.QUESTION) {
		then := p.assignment()
		p.consume(token.COLON, "Expect ':' after then-branch of ternary expression.")
		elseExpr := p.ternary()
		return &ast.Ternary{Cond: expr, Then: then, Else: elseExpr}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR_OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND_AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EQUAL_EQ, token.BANG_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH, token.PERCENT) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS, token.PLUS, token.PLUS_PLUS, token.MINUS_MINUS) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.exponent()
}

// exponent is left-associative ** over call, one level above unary per
// spec's precedence table: `2**3**2` parses as `(2**3)**2`.
func (p *Parser) exponent() ast.Expr {
	expr := p.call()
	for p.match(token.STARSTAR) {
		op := p.previous()
		right := p.call()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "Expect property name after '.'.")
			expr = &ast.Get{Obj: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.reportOnly(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.assignment()) // assignment, not comma: top-level comma separates args
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.THIS):
		return ast.NewThis(p.previous())
	case p.match(token.SUPER):
		keyword := p.previous()
		if p.match(token.DOT) {
			method := p.consume(token.IDENT, "Expect superclass method name after 'super.'.")
			return ast.NewSuper(keyword, method)
		}
		return ast.NewSuper(keyword, nil)
	case p.match(token.IDENT):
		return ast.NewVariable(p.previous())
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	case p.match(token.FN):
		return p.functionBody()
	}

	panic(p.error(p.peek(), "Expect expression."))
}

// functionBody parses the `(params) { body }` tail shared by anonymous
// function literals and named function/method declarations.
func (p *Parser) functionBody() *ast.FunctionExpr {
	p.consume(token.LPAREN, "Expect '(' after 'fn'.")
	var params []*token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.reportOnly(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters.")
	p.consume(token.LBRACE, "Expect '{' before function body.")
	body := p.block()
	return &ast.FunctionExpr{Params: params, Body: body}
}
