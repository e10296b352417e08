package parser

import (
	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/token"
)

// parseDecl выбирает по первому токену нужный распознаватель декларации.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch p.peek().Kind {
	case token.At, token.KwPub, token.KwModifies, token.KwFn:
		return p.parseFnDecl(false)
	case token.KwLet:
		return p.parseVarDecl()
	case token.KwConst:
		return p.parseConstDecl()
	case token.KwStruct:
		return p.parseStructDecl()
	case token.KwClass:
		return p.parseClassDecl()
	case token.KwTrait:
		return p.parseTraitDecl()
	case token.KwWith:
		return p.parseWithDecl()
	default:
		// bind, import, enum, alias зарезервированы, но грамматики у них нет
		p.err(diag.SynUnexpectedTopLevel, "couldn't parse declaration",
			"expected function, variable, user-defined, trait or with declaration")
		return nil, false
	}
}

// parseFnDecl: [@name]* [pub] [modifies] fn name(params) [-> Type] { ... }
// signatureOnly разрешает объявление без тела (методы трейтов).
func (p *Parser) parseFnDecl(signatureOnly bool) (*ast.FnDecl, bool) {
	fn := &ast.FnDecl{Base: ast.At(p.peek().Loc)}

	for p.accept(token.At) {
		name, ok := p.expectIdent(diag.SynExpectDecoratorName, "expected decorator name after '@'")
		if !ok {
			return nil, false
		}
		fn.Decorators = append(fn.Decorators, name.Lexeme)
		// декоратор может стоять на отдельной строке
		for p.accept(token.Newline) {
		}
	}
	fn.Pub = p.accept(token.KwPub)
	fn.Modifies = p.accept(token.KwModifies)

	if _, ok := p.expect(token.KwFn, diag.SynExpectFn, "expected 'fn' keyword", ""); !ok {
		return nil, false
	}
	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected function name after 'fn'")
	if !ok {
		return nil, false
	}
	fn.Name = name.Lexeme

	if fn.Params, ok = p.parseParams(); !ok {
		return nil, false
	}

	if p.accept(token.Arrow) {
		if fn.Return, ok = p.parseType(); !ok {
			return nil, false
		}
	}

	if signatureOnly && !p.at(token.LBrace) {
		if !p.expectTerminator("expected '{' or ';' after method signature", "") {
			return nil, false
		}
		return fn, true
	}
	if fn.Body, ok = p.parseBlock("expected '{' before function body"); !ok {
		return nil, false
	}
	return fn, true
}

func (p *Parser) parseParams() ([]*ast.Param, bool) {
	if _, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after function name", ""); !ok {
		return nil, false
	}
	var params []*ast.Param
	for !p.at(token.RParen) {
		name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			return nil, false
		}
		if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name", ""); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = append(params, &ast.Param{Base: ast.At(name.Loc), Name: name.Lexeme, Type: typ})
		if !p.accept(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after parameters", ""); !ok {
		return nil, false
	}
	return params, true
}

// parseVarDecl: let [mut] name [: Type] [= expr] <terminator>
func (p *Parser) parseVarDecl() (*ast.VarDecl, bool) {
	letTok := p.advance()
	v := &ast.VarDecl{Base: ast.At(letTok.Loc)}
	v.Mutable = p.accept(token.KwMut)

	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected identifier name")
	if !ok {
		return nil, false
	}
	v.Name = name.Lexeme

	if p.accept(token.Colon) {
		if v.Type, ok = p.parseType(); !ok {
			return nil, false
		}
	}
	if p.accept(token.Assign) {
		if v.Init, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}
	if !p.expectTerminator("expected ';' after variable declaration",
		"a declaration must end with ';' or a newline") {
		return nil, false
	}
	return v, true
}

// parseConstDecl: const name [: Type] = expr <terminator>
func (p *Parser) parseConstDecl() (*ast.ConstDecl, bool) {
	constTok := p.advance()
	c := &ast.ConstDecl{Base: ast.At(constTok.Loc)}

	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected identifier name")
	if !ok {
		return nil, false
	}
	c.Name = name.Lexeme

	if p.accept(token.Colon) {
		if c.Type, ok = p.parseType(); !ok {
			return nil, false
		}
	}
	if _, ok = p.expect(token.Assign, diag.SynExpectAssign, "expected '=' for constant declaration",
		"constants must be initialized"); !ok {
		return nil, false
	}
	if c.Init, ok = p.parseExpr(); !ok {
		return nil, false
	}
	if !p.expectTerminator("expected ';' after constant declaration",
		"a declaration must end with ';' or a newline") {
		return nil, false
	}
	return c, true
}

// parseFieldDecl: name: Type [= expr]. Терминатор не нужен; ';' или ','
// после поля съедает вызывающий.
func (p *Parser) parseFieldDecl() (*ast.FieldDecl, bool) {
	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected identifier name")
	if !ok {
		return nil, false
	}
	f := &ast.FieldDecl{Base: ast.At(name.Loc), Name: name.Lexeme}
	if _, ok = p.expect(token.Colon, diag.SynExpectType, "expected type",
		"a field declaration must have an explicit type"); !ok {
		return nil, false
	}
	if f.Type, ok = p.parseType(); !ok {
		return nil, false
	}
	if p.accept(token.Assign) {
		if f.Init, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}
	return f, true
}

// skipMemberSeparators: между членами допускаются ';', ',' и Newline.
func (p *Parser) skipMemberSeparators() {
	for p.atOr(token.Semicolon, token.Comma, token.Newline) {
		p.advance()
	}
}

// parseStructDecl: struct Name { field* }
func (p *Parser) parseStructDecl() (*ast.StructDecl, bool) {
	structTok := p.advance()
	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected identifier name")
	if !ok {
		return nil, false
	}
	s := &ast.StructDecl{Base: ast.At(structTok.Loc), Name: name.Lexeme}

	if _, ok = p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after struct name", ""); !ok {
		return nil, false
	}
	for p.skipMemberSeparators(); !p.atOr(token.RBrace, token.EOF); p.skipMemberSeparators() {
		f, ok := p.parseFieldDecl()
		if !ok {
			return nil, false
		}
		s.Fields = append(s.Fields, f)
	}
	if _, ok = p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after field declarations", ""); !ok {
		return nil, false
	}
	return s, true
}

// parseClassDecl: class Name [: Parent] { (field | method)* }
// Член класса различаем по двум токенам: `ident :`: поле, иначе метод.
func (p *Parser) parseClassDecl() (*ast.ClassDecl, bool) {
	classTok := p.advance()
	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected class name")
	if !ok {
		return nil, false
	}
	c := &ast.ClassDecl{Base: ast.At(classTok.Loc), Name: name.Lexeme}

	if p.accept(token.Colon) {
		parent, ok := p.expectIdent(diag.SynExpectIdentifier, "expected parent class name after ':'")
		if !ok {
			return nil, false
		}
		c.Parent = parent.Lexeme
	}

	if _, ok = p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' before class body", ""); !ok {
		return nil, false
	}
	for p.skipMemberSeparators(); !p.atOr(token.RBrace, token.EOF); p.skipMemberSeparators() {
		switch {
		case p.at(token.Ident) && p.peekAt(1).Kind == token.Colon:
			f, ok := p.parseFieldDecl()
			if !ok {
				return nil, false
			}
			c.Members = append(c.Members, f)
		case p.atFnStart():
			fn, ok := p.parseFnDecl(false)
			if !ok {
				return nil, false
			}
			c.Members = append(c.Members, fn)
		default:
			p.err(diag.SynExpectClassMember, "expected field or function declaration in class body", "")
			return nil, false
		}
	}
	if _, ok = p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after class body", ""); !ok {
		return nil, false
	}
	return c, true
}

// atFnStart: fn | pub fn | modifies fn | pub modifies fn | @decorator ...
func (p *Parser) atFnStart() bool {
	switch p.peek().Kind {
	case token.KwFn, token.At:
		return true
	case token.KwPub:
		next := p.peekAt(1).Kind
		return next == token.KwFn || next == token.KwModifies
	case token.KwModifies:
		return p.peekAt(1).Kind == token.KwFn
	default:
		return false
	}
}

// parseMethods: { fn* }: тело трейта и блока with.
func (p *Parser) parseMethods(signatureOnly bool, open, closeMsg string) ([]*ast.FnDecl, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, open, ""); !ok {
		return nil, false
	}
	var methods []*ast.FnDecl
	for p.skipMemberSeparators(); !p.atOr(token.RBrace, token.EOF); p.skipMemberSeparators() {
		if !p.atFnStart() {
			p.err(diag.SynExpectFn, "expected method declaration", "only functions may appear here")
			return nil, false
		}
		fn, ok := p.parseFnDecl(signatureOnly)
		if !ok {
			return nil, false
		}
		methods = append(methods, fn)
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, closeMsg, ""); !ok {
		return nil, false
	}
	return methods, true
}

// parseTraitDecl: trait Name { method* }; методы могут быть без тела.
func (p *Parser) parseTraitDecl() (*ast.TraitDecl, bool) {
	traitTok := p.advance()
	name, ok := p.expectIdent(diag.SynExpectIdentifier, "expected trait name")
	if !ok {
		return nil, false
	}
	t := &ast.TraitDecl{Base: ast.At(traitTok.Loc), Name: name.Lexeme}
	if t.Methods, ok = p.parseMethods(true, "expected '{' before trait body", "expected '}' after trait body"); !ok {
		return nil, false
	}
	return t, true
}

// parseWithDecl: with Trait for Type { method* }
func (p *Parser) parseWithDecl() (*ast.WithDecl, bool) {
	withTok := p.advance()
	trait, ok := p.expectIdent(diag.SynExpectIdentifier, "expected trait name")
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwFor, diag.SynUnexpectedToken, "expected 'for' keyword", ""); !ok {
		return nil, false
	}
	target, ok := p.expectIdent(diag.SynExpectIdentifier, "expected user-defined type name")
	if !ok {
		return nil, false
	}
	w := &ast.WithDecl{Base: ast.At(withTok.Loc), Trait: trait.Lexeme, Target: target.Lexeme}
	if w.Methods, ok = p.parseMethods(false, "expected '{' before with body", "expected '}' after with body"); !ok {
		return nil, false
	}
	return w, true
}
