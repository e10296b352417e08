package parser

import (
	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseAssignment()
}

// parseAssignment: target op value, правоассоциативно.
// Слева должно стоять lvalue: идентификатор, поле или индекс.
func (p *Parser) parseAssignment() (ast.Expr, bool) {
	target, ok := p.parseConditional()
	if !ok {
		return nil, false
	}
	if !p.peek().Kind.IsAssign() {
		return target, true
	}
	opTok := p.peek()
	if !target.IsLvalue() {
		p.err(diag.SynInvalidAssignTarget,
			"cannot assign to this expression - not a valid assignment target",
			"only variables, fields and indexed elements can be assigned")
		return nil, false
	}
	p.advance()
	value, ok := p.parseAssignment()
	if !ok {
		return nil, false
	}
	return &ast.Assign{Base: ast.At(target.Pos()), Target: target, Op: opTok.Kind, Value: value}, true
}

// parseConditional: then if cond else otherwise, правоассоциативно; else обязателен.
func (p *Parser) parseConditional() (ast.Expr, bool) {
	then, ok := p.parseBinary(precLogicalOr)
	if !ok {
		return nil, false
	}
	if !p.accept(token.KwIf) {
		return then, true
	}
	cond, ok := p.parseBinary(precLogicalOr)
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwElse, diag.SynExpectElse, "expected 'else' after conditional expression",
		"a conditional expression is written as `a if cond else b`"); !ok {
		return nil, false
	}
	otherwise, ok := p.parseConditional()
	if !ok {
		return nil, false
	}
	return &ast.Conditional{Base: ast.At(then.Pos()), Then: then, Cond: cond, Else: otherwise}, true
}

// parseBinary реализует Pratt parsing для бинарных операторов.
// minPrec - минимальный приоритет для текущего уровня.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		prec := binaryPrec(p.peek().Kind)
		if prec < minPrec {
			return left, true
		}
		opTok := p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.Binary{Base: ast.At(left.Pos()), Op: opTok.Kind, X: left, Y: right}
	}
}

// parseUnary: ! - ~ &: префиксы, правоассоциативно.
func (p *Parser) parseUnary() (ast.Expr, bool) {
	if !isUnaryOp(p.peek().Kind) {
		return p.parseCast()
	}
	opTok := p.advance()
	x, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.Unary{Base: ast.At(opTok.Loc), Op: opTok.Kind, X: x}, true
}

// parseCast: postfix [as Type]*
func (p *Parser) parseCast() (ast.Expr, bool) {
	x, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	for p.accept(token.KwAs) {
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		x = &ast.Cast{Base: ast.At(x.Pos()), X: x, Type: typ}
	}
	return x, true
}
