package parser

import (
	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/token"
)

// parsePostfix: primary, затем [index], .name, (args) и ? слева направо.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	x, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch p.peek().Kind {
		case token.LBracket:
			x, ok = p.parseIndexExpr(x)
		case token.Dot:
			x, ok = p.parseFieldExpr(x)
		case token.LParen:
			x, ok = p.parseCallExpr(x)
		case token.Question:
			p.advance()
			x = &ast.TryExpr{Base: ast.At(x.Pos()), X: x}
		default:
			return x, true
		}
		if !ok {
			return nil, false
		}
	}
}

// parseIndexExpr парсит индексацию: expr[index]
func (p *Parser) parseIndexExpr(target ast.Expr) (ast.Expr, bool) {
	p.advance() // съедаем '['
	index, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' after array index", ""); !ok {
		return nil, false
	}
	return &ast.ArrayAccess{Base: ast.At(target.Pos()), X: target, Index: index}, true
}

// parseFieldExpr парсит доступ к полю: expr.name
func (p *Parser) parseFieldExpr(target ast.Expr) (ast.Expr, bool) {
	p.advance() // съедаем '.'
	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected property name after '.'")
	if !ok {
		return nil, false
	}
	return &ast.FieldAccess{Base: ast.At(target.Pos()), X: target, Name: name.Lexeme}, true
}

// parseCallExpr парсит вызов функции: expr(args...), завершающая запятая разрешена.
func (p *Parser) parseCallExpr(callee ast.Expr) (ast.Expr, bool) {
	p.advance() // съедаем '('
	var args []ast.Expr
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after arguments", ""); !ok {
		return nil, false
	}
	return &ast.FnCall{Base: ast.At(callee.Pos()), Callee: callee, Args: args}, true
}

// parsePrimary: литералы, идентификаторы (и self), группировка в скобках.
func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.CharLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwNone:
		p.advance()
		return &ast.Literal{
			Base:   ast.At(tok.Loc),
			Kind:   tok.Kind,
			Value:  tok.Value,
			Raw:    tok.Lexeme,
			Suffix: tok.Suffix,
		}, true
	case token.Ident, token.KwSelf:
		p.advance()
		return &ast.Ident{Base: ast.At(tok.Loc), Name: tok.Lexeme}, true
	case token.LParen:
		p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok = p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after expression", ""); !ok {
			return nil, false
		}
		return &ast.Grouping{Base: ast.At(tok.Loc), X: x}, true
	default:
		p.err(diag.SynExpectExpression, "expected expression, found "+describe(tok), "")
		return nil, false
	}
}
