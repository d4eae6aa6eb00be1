package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/pkg/token"
)

// declaration parses one top-level or block-level declaration.
// On a parse error it synchronizes and reports "no statement" (ok =
// false) so the caller skips it and keeps going.
func (p *Parser) declaration() (ast.Stmt, bool) {
	stmt, ok := p.declarationOrStatement()
	if !ok {
		p.synchronize()
		return nil, false
	}
	return stmt, true
}

func (p *Parser) declarationOrStatement() (ast.Stmt, bool) {
	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, "Expect class name.")
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.LBRACE, "Expect '{' before class body."); !ok {
		return nil, false
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		method, ok := p.function("method")
		if !ok {
			return nil, false
		}
		methods = append(methods, method.(*ast.FunctionStmt))
	}

	if _, ok := p.consume(token.RBRACE, "Expect '}' after class body."); !ok {
		return nil, false
	}

	return &ast.ClassStmt{Name: name, Methods: methods}, true
}

func (p *Parser) function(kind string) (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, "Expect "+kind+" name.")
	if !ok {
		return nil, false
	}

	if _, ok := p.consume(token.LPAREN, "Expect '(' after "+kind+" name."); !ok {
		return nil, false
	}

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, ok := p.consume(token.IDENT, "Expect parameter name.")
			if !ok {
				return nil, false
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(token.RPAREN, "Expect ')' after parameters."); !ok {
		return nil, false
	}

	if _, ok := p.consume(token.LBRACE, "Expect '{' before "+kind+" body."); !ok {
		return nil, false
	}
	body, ok := p.block()
	if !ok {
		return nil, false
	}

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, true
}

func (p *Parser) varDeclaration() (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, "Expect variable name.")
	if !ok {
		return nil, false
	}

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer, ok = p.expression()
		if !ok {
			return nil, false
		}
	}

	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		return nil, false
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, true
}

func (p *Parser) statement() (ast.Stmt, bool) {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LBRACE):
		stmts, ok := p.block()
		if !ok {
			return nil, false
		}
		return &ast.BlockStmt{Stmts: stmts}, true
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() ([]ast.Stmt, bool) {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, ok := p.declaration()
		if ok {
			stmts = append(stmts, stmt)
		}
	}
	if _, ok := p.consume(token.RBRACE, "Expect '}' after block."); !ok {
		return nil, false
	}
	return stmts, true
}

func (p *Parser) ifStatement() (ast.Stmt, bool) {
	if _, ok := p.consume(token.LPAREN, "Expect '(' after 'if'."); !ok {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.RPAREN, "Expect ')' after if condition."); !ok {
		return nil, false
	}

	thenBranch, ok := p.statement()
	if !ok {
		return nil, false
	}

	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, ok = p.statement()
		if !ok {
			return nil, false
		}
	}

	return &ast.IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}, true
}

func (p *Parser) printStatement() (ast.Stmt, bool) {
	value, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after value."); !ok {
		return nil, false
	}
	return &ast.PrintStmt{Expr: value}, true
}

func (p *Parser) returnStatement() (ast.Stmt, bool) {
	keyword := p.previous()

	var value ast.Expr
	var ok bool
	if !p.check(token.SEMICOLON) {
		value, ok = p.expression()
		if !ok {
			return nil, false
		}
	}

	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after return value."); !ok {
		return nil, false
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, true
}

func (p *Parser) whileStatement() (ast.Stmt, bool) {
	if _, ok := p.consume(token.LPAREN, "Expect '(' after 'while'."); !ok {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.RPAREN, "Expect ')' after condition."); !ok {
		return nil, false
	}
	body, ok := p.statement()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{Condition: cond, Body: body}, true
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`. Every node synthesized here
// is freshly constructed, so it carries a fresh expression identity;
// the resolver never sees a reused id.
func (p *Parser) forStatement() (ast.Stmt, bool) {
	if _, ok := p.consume(token.LPAREN, "Expect '(' after 'for'."); !ok {
		return nil, false
	}

	var initializer ast.Stmt
	var ok bool
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer, ok = p.varDeclaration()
		if !ok {
			return nil, false
		}
	default:
		initializer, ok = p.expressionStatement()
		if !ok {
			return nil, false
		}
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); !ok {
		return nil, false
	}

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.RPAREN, "Expect ')' after for clauses."); !ok {
		return nil, false
	}

	body, ok := p.statement()
	if !ok {
		return nil, false
	}

	if increment != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = ast.NewLiteralExpr(true)
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	stmts := []ast.Stmt{body}
	if initializer != nil {
		stmts = []ast.Stmt{initializer, body}
	}

	return &ast.BlockStmt{Stmts: stmts}, true
}

func (p *Parser) expressionStatement() (ast.Stmt, bool) {
	expr, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.SEMICOLON, "Expect ';' after expression."); !ok {
		return nil, false
	}
	return &ast.ExpressionStmt{Expr: expr}, true
}
