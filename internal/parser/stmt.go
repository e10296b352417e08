package parser

import (
	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/token"
)

// parseBlock: { stmt* }. openMsg: текст ошибки при отсутствии '{'.
func (p *Parser) parseBlock(openMsg string) (*ast.BlockStmt, bool) {
	lbrace, ok := p.expect(token.LBrace, diag.SynExpectLBrace, openMsg, "a block must always have an opening '{'")
	if !ok {
		return nil, false
	}
	block := &ast.BlockStmt{Base: ast.At(lbrace.Loc)}
	for p.skipTerminators(); !p.atOr(token.RBrace, token.EOF); p.skipTerminators() {
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	if _, ok = p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after block",
		"a block must always have a closing '}' for every open '{'"); !ok {
		return nil, false
	}
	return block, true
}

// parseStmt выбирает распознаватель оператора по первому токену.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.At, token.KwPub, token.KwModifies, token.KwFn,
		token.KwLet, token.KwConst, token.KwStruct, token.KwClass, token.KwTrait, token.KwWith:
		decl, ok := p.parseDecl()
		if !ok {
			return nil, false
		}
		return &ast.DeclStmt{Base: ast.At(tok.Loc), Decl: decl}, true
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwBreak, token.KwContinue:
		return p.parseJumpStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwLoop:
		p.advance()
		body, ok := p.parseBlock("expected '{' after 'loop'")
		if !ok {
			return nil, false
		}
		return &ast.LoopStmt{Base: ast.At(tok.Loc), Body: body}, true
	case token.KwMatch:
		return p.parseMatchStmt()
	case token.LBrace:
		return p.parseBlock("expected '{' before block")
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.expectTerminator("expected ';' after expression", "") {
		return nil, false
	}
	return &ast.ExprStmt{Base: ast.At(x.Pos()), X: x}, true
}

// parseReturnStmt: return [expr] <terminator>
func (p *Parser) parseReturnStmt() (ast.Stmt, bool) {
	retTok := p.advance()
	ret := &ast.ReturnStmt{Base: ast.At(retTok.Loc)}
	if !p.atOr(token.Semicolon, token.Newline, token.RBrace, token.EOF) {
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		ret.Value = value
	}
	if !p.expectTerminator("expected ';' after return value", "a return statement must end with ';' or a newline") {
		return nil, false
	}
	return ret, true
}

// parseJumpStmt: break | continue <terminator>
func (p *Parser) parseJumpStmt() (ast.Stmt, bool) {
	tok := p.advance()
	if !p.expectTerminator("expected ';' after '"+tok.Lexeme+"'", "") {
		return nil, false
	}
	if tok.Kind == token.KwBreak {
		return &ast.BreakStmt{Base: ast.At(tok.Loc)}, true
	}
	return &ast.ContinueStmt{Base: ast.At(tok.Loc)}, true
}

// parseIfStmt: if cond { } [else (if ... | { })]
func (p *Parser) parseIfStmt() (*ast.IfStmt, bool) {
	ifTok := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock("expected '{' after if condition")
	if !ok {
		return nil, false
	}
	stmt := &ast.IfStmt{Base: ast.At(ifTok.Loc), Cond: cond, Then: then}
	if !p.accept(token.KwElse) {
		return stmt, true
	}
	if p.at(token.KwIf) {
		elseIf, ok := p.parseIfStmt()
		if !ok {
			return nil, false
		}
		stmt.Else = elseIf
		return stmt, true
	}
	elseBlock, ok := p.parseBlock("expected '{' or 'if' after 'else'")
	if !ok {
		return nil, false
	}
	stmt.Else = elseBlock
	return stmt, true
}

// parseWhileStmt: while cond { }
func (p *Parser) parseWhileStmt() (ast.Stmt, bool) {
	whileTok := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock("expected '{' after while condition")
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{Base: ast.At(whileTok.Loc), Cond: cond, Body: body}, true
}

// parseForStmt: for x in expr { }: итератор;
// for x in a..b { } / a..=b { }: диапазон, вид выбирает оператор.
func (p *Parser) parseForStmt() (ast.Stmt, bool) {
	forTok := p.advance()
	binder, ok := p.expectIdent(diag.SynExpectIdentifier, "expected identifier after 'for'")
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwIn, diag.SynForMissingIn, "expected 'in' after identifier", ""); !ok {
		return nil, false
	}
	start, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.atOr(token.DotDot, token.DotDotEq) {
		inclusive := p.advance().Kind == token.DotDotEq
		end, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		body, ok := p.parseBlock("expected '{' after for range")
		if !ok {
			return nil, false
		}
		return &ast.RangeForStmt{
			Base:      ast.At(forTok.Loc),
			Binder:    binder.Lexeme,
			Start:     start,
			End:       end,
			Inclusive: inclusive,
			Body:      body,
		}, true
	}

	body, ok := p.parseBlock("expected '{' after for collection")
	if !ok {
		return nil, false
	}
	return &ast.IteratorForStmt{
		Base:       ast.At(forTok.Loc),
		Binder:     binder.Lexeme,
		Collection: start,
		Body:       body,
	}, true
}

// parseMatchStmt: match expr { pattern => expr, ... }: запятая после
// последней ветки необязательна.
func (p *Parser) parseMatchStmt() (ast.Stmt, bool) {
	matchTok := p.advance()
	scrutinee, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after match value", ""); !ok {
		return nil, false
	}
	stmt := &ast.MatchStmt{Base: ast.At(matchTok.Loc), Scrutinee: scrutinee}
	for p.skipTerminators(); !p.atOr(token.RBrace, token.EOF); p.skipTerminators() {
		pattern, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok = p.expect(token.FatArrow, diag.SynExpectFatArrow, "expected '=>' after match pattern", ""); !ok {
			return nil, false
		}
		body, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Clauses = append(stmt.Clauses, &ast.MatchClause{Base: ast.At(pattern.Pos()), Pattern: pattern, Body: body})
		if !p.accept(token.Comma) {
			break
		}
	}
	p.skipTerminators()
	if _, ok = p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after match clauses", ""); !ok {
		return nil, false
	}
	return stmt, true
}
