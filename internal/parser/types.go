package parser

import (
	"fmt"

	"fortio.org/safecast"

	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/token"
)

// parseType разбирает тип:
//
//	int32 | Name | Name!<T, ...> | arr!<T> | map!<K, V> | set!<T> | opt!<T> | res!<T, E>
//
// и следующие за ним измерения массива `[N]` / `[]`.
func (p *Parser) parseType() (ast.Type, bool) {
	nameTok, ok := p.expectIdent(diag.SynExpectType, "expected type name")
	if !ok {
		return nil, false
	}

	var base ast.Type
	if kind, isPrim := ast.LookupPrimitive(nameTok.Lexeme); isPrim {
		if p.at(token.Bang) {
			p.err(diag.SynPrimitiveNotGeneric,
				fmt.Sprintf("primitive type '%s' cannot take type arguments", nameTok.Lexeme), "")
			return nil, false
		}
		base = &ast.PrimitiveType{Base: ast.At(nameTok.Loc), Kind: kind}
	} else if p.accept(token.Bang) {
		base, ok = p.parseGenericType(nameTok)
		if !ok {
			return nil, false
		}
	} else {
		base = &ast.UserType{Base: ast.At(nameTok.Loc), Name: nameTok.Lexeme}
	}

	if !p.at(token.LBracket) {
		return base, true
	}
	dims, ok := p.parseArrayDims()
	if !ok {
		return nil, false
	}
	return &ast.StaticArrayType{Base: ast.At(nameTok.Loc), Elem: base, Dims: dims}, true
}

// parseGenericType: после `Name!` ожидаем `<args>`. Встроенные имена
// строят свои узлы и проверяют число аргументов.
func (p *Parser) parseGenericType(nameTok token.Token) (ast.Type, bool) {
	if _, ok := p.expect(token.Lt, diag.SynExpectGenericOpen, "expected '<' for generic type",
		"generic arguments are written as Name!<T>"); !ok {
		return nil, false
	}

	var args []ast.Type
	for {
		arg, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.accept(token.Comma) {
			break
		}
	}
	if !p.closeGeneric() {
		return nil, false
	}

	name := nameTok.Lexeme
	want, builtin := ast.BuiltinGenerics[name]
	if !builtin {
		return &ast.GenericType{UserType: ast.UserType{Base: ast.At(nameTok.Loc), Name: name}, Args: args}, true
	}
	if len(args) != want {
		p.errAt(nameTok, diag.SynBuiltinGenericArity,
			fmt.Sprintf("builtin type '%s' expects %d type argument(s), got %d", name, want, len(args)), "")
		return nil, false
	}

	b := ast.At(nameTok.Loc)
	switch name {
	case "arr":
		return &ast.DynamicArrayType{Base: b, Elem: args[0]}, true
	case "set":
		return &ast.SetType{Base: b, Elem: args[0]}, true
	case "opt":
		return &ast.OptionalType{Base: b, Inner: args[0]}, true
	case "map":
		return &ast.MapType{Base: b, Key: args[0], Value: args[1]}, true
	default: // res
		return &ast.ResultType{Base: b, Ok: args[0], Err: args[1]}, true
	}
}

// closeGeneric съедает закрывающую '>'. От токена '>>' съедается только
// левая половина: правую peek дальше отдаёт как обычный '>', её закрывает
// внешний generic или, после `as T!<U>>`, разбирает выражение как сравнение.
func (p *Parser) closeGeneric() bool {
	switch p.peek().Kind {
	case token.Gt:
		p.advance()
		return true
	case token.Shr:
		p.halfGt = true
		return true
	}
	p.err(diag.SynExpectGenericClose, "expected '>' to close generic type", "")
	return false
}

// parseArrayDims собирает `[N]` / `[]` слева направо; -1: без размера.
// После `[]` размерное измерение запрещено.
func (p *Parser) parseArrayDims() ([]int, bool) {
	var dims []int
	hasUnsized := false
	for p.accept(token.LBracket) {
		switch p.peek().Kind {
		case token.IntLit:
			if hasUnsized {
				p.err(diag.SynSizedAfterUnsized, "cannot have sized dimension after unsized dimension", "")
				return nil, false
			}
			v, _ := p.peek().Int()
			n, err := safecast.Conv[int](v)
			if err != nil || n < 0 {
				p.err(diag.SynBadArrayDimension, "array dimension must be a non-negative integer", "")
				return nil, false
			}
			dims = append(dims, n)
			p.advance()
		case token.RBracket:
			dims = append(dims, ast.Unsized)
			hasUnsized = true
		default:
			p.err(diag.SynBadArrayDimension, "expected integer literal or ']' in array dimension", "")
			return nil, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' to close array dimension", ""); !ok {
			return nil, false
		}
	}
	return dims, true
}
