package lexer

import (
	"aera/internal/diag"
	"aera/internal/token"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
}

// report records one lexical error at the token that starts at m.
func (lx *Lexer) report(code diag.Code, m Mark, width int, msg, note string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(diag.At(lx.file, diag.SevError, code, lx.cursor.Location(m), width, msg, note))
}

// illegal reports an error for the text scanned since m and returns it as an Illegal token.
func (lx *Lexer) illegal(m Mark, code diag.Code, msg, note string) token.Token {
	text := lx.cursor.TextFrom(m)
	lx.report(code, m, len(text), msg, note)
	return lx.emit(m, token.Illegal, nil, "")
}
