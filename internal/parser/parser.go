package parser

import (
	"bytes"

	"fortio.org/safecast"

	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/lexer"
	"aera/internal/source"
	"aera/internal/token"
)

type Options struct {
	MaxErrors uint // 0: без ограничения
	Reporter  diag.Reporter
}

// Parser: состояние парсера на один файл.
// Поток токенов read-only, парсер двигает только курсор pos.
type Parser struct {
	file   *source.File
	toks   []token.Token
	pos    int
	opts   Options
	errors uint

	// halfGt: первая половина текущего '>>' съедена как закрывающая '>'
	// generic-типа; peek отдаёт остаток как обычный '>'.
	halfGt bool
}

// ParseFile builds the program for one file from its complete token stream.
// Syntax errors go to opts.Reporter; the returned program holds every
// top-level declaration that parsed cleanly.
func ParseFile(file *source.File, toks []token.Token, opts Options) *ast.Program {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		toks = append(toks[:len(toks):len(toks)], eofToken(file))
	}
	p := &Parser{
		file: file,
		toks: toks,
		opts: opts,
	}
	return p.parseProgram()
}

// Parse lexes and parses file, sending diagnostics of both phases to reporter.
func Parse(file *source.File, reporter diag.Reporter) *ast.Program {
	toks := lexer.Tokenize(file, reporter)
	return ParseFile(file, toks, Options{Reporter: reporter})
}

// eofToken: синтетический EOF в конце текста, если поток пришёл без него.
func eofToken(file *source.File) token.Token {
	tok := token.Token{Kind: token.EOF}
	if file == nil {
		return tok
	}
	content := file.Content
	tail := content[bytes.LastIndexByte(content, '\n')+1:]
	line, errLine := safecast.Conv[uint32](bytes.Count(content, []byte{'\n'}) + 1)
	col, errCol := safecast.Conv[uint32](len(tail) + 1)
	if errLine == nil && errCol == nil {
		tok.Loc = source.Location{Path: file.Path, Line: line, Col: col}
	}
	return tok
}

// parseProgram: основной цикл верхнего уровня: пока не EOF: parseDecl,
// после неудачи: sync и дальше.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	if p.file != nil {
		prog.Path = p.file.Path
	}
	for {
		p.skipTerminators()
		if p.at(token.EOF) {
			break
		}
		start := p.pos
		decl, ok := p.parseDecl()
		if !ok {
			p.sync(start)
			continue
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog
}

// sync: восстановление после неудачной декларации верхнего уровня.
// Если декларация не съела ни одного токена, сначала пропускаем текущий.
// Если она открыла '{' и не закрыла, докручиваем до парной '}', иначе
// хвост тела дал бы вторую ошибку. Дальше крутим до только что съеденного
// ';'/Newline, до начала следующей декларации или оператора, либо до EOF.
func (p *Parser) sync(start int) {
	p.halfGt = false
	if p.pos == start {
		p.advance()
	}

	depth := 0
	for _, tok := range p.toks[start:p.pos] {
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth = max(depth-1, 0)
		}
	}
	for depth > 0 && !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
		if depth == 0 {
			return
		}
	}

	for !p.at(token.EOF) {
		if isSyncPoint(p.peek().Kind) {
			return
		}
		tok := p.advance()
		if tok.Kind == token.Semicolon || tok.Kind == token.Newline {
			return
		}
	}
}

func isSyncPoint(k token.Kind) bool {
	switch k {
	case token.KwFn, token.KwLet, token.KwConst, token.KwStruct, token.KwClass,
		token.KwTrait, token.KwWith,
		token.KwReturn, token.KwIf, token.KwWhile, token.KwFor, token.KwLoop:
		return true
	default:
		return false
	}
}
