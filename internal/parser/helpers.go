package parser

import (
	"fmt"
	"slices"

	"aera/internal/diag"
	"aera/internal/token"
)

func (p *Parser) peek() token.Token {
	if p.pos < len(p.toks) {
		if p.halfGt {
			return secondHalf(p.toks[p.pos])
		}
		return p.toks[p.pos]
	}
	return p.toks[len(p.toks)-1]
}

// secondHalf: правая '>' от токена '>>'.
func secondHalf(tok token.Token) token.Token {
	tok.Kind = token.Gt
	tok.Lexeme = ">"
	tok.Loc.Col++
	return tok
}

// peekAt возвращает токен на n позиций вперёд (0 = текущий), за концом EOF.
func (p *Parser) peekAt(n int) token.Token {
	if n == 0 {
		return p.peek()
	}
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance съедает текущий токен. EOF не съедается никогда.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
		p.halfGt = false
	}
	return tok
}

// accept съедает токен нужного вида, если он текущий.
func (p *Parser) accept(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect: ожидаем конкретный токен. Если нет: репортим и возвращаем (текущий, false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg, note string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg, note)
	return p.peek(), false
}

func (p *Parser) expectIdent(code diag.Code, msg string) (token.Token, bool) {
	return p.expect(token.Ident, code, msg, "")
}

// skipTerminators пропускает пустые операторы: ';' и Newline.
func (p *Parser) skipTerminators() {
	for p.atOr(token.Semicolon, token.Newline) {
		p.advance()
	}
}

// expectTerminator требует конец оператора: ';' или Newline съедаются,
// '}' и EOF подходят без поглощения.
func (p *Parser) expectTerminator(msg, note string) bool {
	switch p.peek().Kind {
	case token.Semicolon, token.Newline:
		p.advance()
		return true
	case token.RBrace, token.EOF:
		return true
	}
	p.err(diag.SynExpectSemicolon, msg, note)
	return false
}

// err репортит ошибку на текущем токене. Для Illegal токена лексер уже
// выдал диагностику: вторую не пишем.
func (p *Parser) err(code diag.Code, msg, note string) {
	p.errAt(p.peek(), code, msg, note)
}

func (p *Parser) errAt(tok token.Token, code diag.Code, msg, note string) {
	if tok.Kind == token.Illegal {
		return
	}
	p.report(diag.At(p.file, diag.SevError, code, tok.Loc, tok.Len(), msg, note))
}

func (p *Parser) report(d diag.Diagnostic) {
	if p.opts.Reporter == nil {
		return
	}
	p.errors++
	if p.opts.MaxErrors != 0 && p.errors > p.opts.MaxErrors {
		return // достигли максимального количества ошибок
	}
	p.opts.Reporter.Report(d)
}

// describe: как показать токен в тексте ошибки.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Newline:
		return "newline"
	default:
		return fmt.Sprintf("'%s'", tok.Lexeme)
	}
}
