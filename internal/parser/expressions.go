package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/pkg/token"
)

func (p *Parser) expression() (ast.Expr, bool) {
	return p.assignment()
}

// assignment implements `assignment := (call ".")? IDENT "=" assignment
// | logic_or`. The left-hand side is parsed as an ordinary expression
// first; only once an `=` is seen do we check whether it was a valid
// assignment target.
func (p *Parser) assignment() (ast.Expr, bool) {
	expr, ok := p.or()
	if !ok {
		return nil, false
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		value, ok := p.assignment()
		if !ok {
			return nil, false
		}

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssignExpr(target.Name, value), true
		case *ast.GetExpr:
			return ast.NewSetExpr(target.Object, target.Name, value), true
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr, true
		}
	}

	return expr, true
}

func (p *Parser) or() (ast.Expr, bool) {
	expr, ok := p.and()
	if !ok {
		return nil, false
	}
	for p.match(token.OR) {
		op := p.previous()
		right, ok := p.and()
		if !ok {
			return nil, false
		}
		expr = ast.NewLogicalExpr(expr, op, right)
	}
	return expr, true
}

func (p *Parser) and() (ast.Expr, bool) {
	expr, ok := p.equality()
	if !ok {
		return nil, false
	}
	for p.match(token.AND) {
		op := p.previous()
		right, ok := p.equality()
		if !ok {
			return nil, false
		}
		expr = ast.NewLogicalExpr(expr, op, right)
	}
	return expr, true
}

func (p *Parser) equality() (ast.Expr, bool) {
	expr, ok := p.comparison()
	if !ok {
		return nil, false
	}
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right, ok := p.comparison()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr, true
}

func (p *Parser) comparison() (ast.Expr, bool) {
	expr, ok := p.term()
	if !ok {
		return nil, false
	}
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right, ok := p.term()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr, true
}

func (p *Parser) term() (ast.Expr, bool) {
	expr, ok := p.factor()
	if !ok {
		return nil, false
	}
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right, ok := p.factor()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr, true
}

func (p *Parser) factor() (ast.Expr, bool) {
	expr, ok := p.unary()
	if !ok {
		return nil, false
	}
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right, ok := p.unary()
		if !ok {
			return nil, false
		}
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr, true
}

func (p *Parser) unary() (ast.Expr, bool) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right, ok := p.unary()
		if !ok {
			return nil, false
		}
		return ast.NewUnaryExpr(op, right), true
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, bool) {
	expr, ok := p.primary()
	if !ok {
		return nil, false
	}

	for {
		switch {
		case p.match(token.LPAREN):
			expr, ok = p.finishCall(expr)
			if !ok {
				return nil, false
			}
		case p.match(token.DOT):
			name, ok := p.consume(token.IDENT, "Expect property name after '.'.")
			if !ok {
				return nil, false
			}
			expr = ast.NewGetExpr(expr, name)
		default:
			return expr, true
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, bool) {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, ok := p.expression()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	paren, ok := p.consume(token.RPAREN, "Expect ')' after arguments.")
	if !ok {
		return nil, false
	}

	return ast.NewCallExpr(callee, paren, args), true
}

func (p *Parser) primary() (ast.Expr, bool) {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteralExpr(false), true
	case p.match(token.TRUE):
		return ast.NewLiteralExpr(true), true
	case p.match(token.NIL):
		return ast.NewLiteralExpr(nil), true
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteralExpr(p.previous().Literal), true
	case p.match(token.THIS):
		return ast.NewThisExpr(p.previous()), true
	case p.match(token.IDENT):
		return ast.NewVariableExpr(p.previous()), true
	case p.match(token.LPAREN):
		expr, ok := p.expression()
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(token.RPAREN, "Expect ')' after expression."); !ok {
			return nil, false
		}
		return ast.NewGroupingExpr(expr), true
	default:
		p.errorAt(p.peek(), "Expect expression.")
		return nil, false
	}
}
