package lexer

import (
	"fmt"

	"aera/internal/diag"
	"aera/internal/source"
	"aera/internal/token"
)

// Lexer turns a source file into tokens. Errors never stop the scan: every
// problem is reported once and surfaces as an Illegal token.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// глубина вложенности: только для решения, вставлять ли Newline
	parenDepth   int
	braceDepth   int
	bracketDepth int

	last    token.Kind // последний выданный токен
	hasLast bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize runs a fresh lexer over file and returns the whole stream, EOF included.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	return New(file, Options{Reporter: reporter}).All()
}

// All scans the remaining input and returns every token up to and including EOF.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	for {
		lx.skipSpaces()
		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Loc:  lx.cursor.Location(lx.cursor.Mark()),
			}
		}

		start := lx.cursor.Mark()
		ch := lx.cursor.Peek()

		switch {
		case ch == '\n':
			lx.cursor.Bump()
			if lx.terminatorAllowed() {
				return lx.emit(start, token.Newline, nil, "")
			}
			continue

		case ch == '#':
			lx.skipLineComment()
			continue

		case ch == '<' && lx.cursor.PeekAt(1) == '#':
			if tok, failed := lx.skipBlockComment(); failed {
				return tok
			}
			continue

		case isIdentStartByte(ch):
			return lx.scanIdentOrKeyword()

		case isDec(ch):
			return lx.scanNumber()

		case ch == '\'':
			return lx.scanChar()

		case ch == '"':
			return lx.scanString()

		default:
			return lx.scanOperatorOrPunct()
		}
	}
}

func (lx *Lexer) skipSpaces() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

// terminatorAllowed reports whether a line break at the current point ends a statement.
func (lx *Lexer) terminatorAllowed() bool {
	if lx.parenDepth > 0 || lx.braceDepth > 0 || lx.bracketDepth > 0 {
		return false
	}
	return lx.hasLast && lx.last.Terminates()
}

// emit builds a token from the text between m and the cursor.
func (lx *Lexer) emit(m Mark, kind token.Kind, value any, suffix string) token.Token {
	lx.last = kind
	lx.hasLast = true
	return token.Token{
		Kind:   kind,
		Lexeme: lx.cursor.TextFrom(m),
		Loc:    lx.cursor.Location(m),
		Value:  value,
		Suffix: suffix,
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(start)
	kind, ok := token.LookupKeyword(text)
	if !ok {
		return lx.emit(start, token.Ident, nil, "")
	}
	switch kind {
	case token.KwTrue:
		return lx.emit(start, kind, true, "")
	case token.KwFalse:
		return lx.emit(start, kind, false, "")
	default:
		return lx.emit(start, kind, nil, "")
	}
}

func (lx *Lexer) unknownChar(start Mark) token.Token {
	ch := lx.cursor.Bump()
	msg := fmt.Sprintf("unknown character '%c'", ch)
	if !isPrintable(ch) {
		msg = fmt.Sprintf("unknown character 0x%02X", ch)
	}
	return lx.illegal(start, diag.LexUnknownChar, msg, "this character is not part of the language")
}
