package lexer

import (
	"aera/internal/diag"
	"aera/internal/token"
)

// skipLineComment consumes '#' up to, but not including, the line break.
// The '\n' stays in the input so it can still act as a terminator.
func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// skipBlockComment consumes '<# ... #>'. The comment must close on its own line;
// otherwise the text scanned so far becomes an Illegal token and failed is true.
func (lx *Lexer) skipBlockComment() (tok token.Token, failed bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '#'
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return lx.illegal(start, diag.LexUnterminatedBlockComment,
				"unterminated block comment",
				"a block comment must be closed with '#>' on the same line"), true
		}
		if lx.cursor.Peek() == '#' && lx.cursor.PeekAt(1) == '>' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return token.Token{}, false
		}
		lx.cursor.Bump()
	}
}
