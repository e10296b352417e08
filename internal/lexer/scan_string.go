package lexer

import (
	"fmt"
	"strings"

	"aera/internal/diag"
	"aera/internal/token"
)

const escapeNote = `supported escapes are \n, \t, \r, \\, \' and \"`

// scanChar reads 'c' or '\e'. On any error the scan skips to the next quote (or EOF)
// so the parser sees one bounded Illegal token.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '

	switch {
	case lx.cursor.EOF():
		return lx.illegal(start, diag.LexUnterminatedChar, "unterminated character literal", "")
	case lx.cursor.Peek() == '\'':
		lx.cursor.Bump()
		return lx.illegal(start, diag.LexEmptyChar, "empty character literal", "a character literal must contain exactly one character")
	}

	var value byte
	b := lx.cursor.Peek()
	switch {
	case b == '\\':
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			return lx.illegal(start, diag.LexUnterminatedChar, "unterminated character literal", "")
		}
		esc := lx.cursor.Peek()
		decoded, ok := decodeEscape(esc)
		if !ok {
			lx.cursor.Bump()
			lx.recoverTo('\'')
			return lx.illegal(start, diag.LexBadEscape,
				fmt.Sprintf("invalid escape sequence '\\%c' in character literal", esc), escapeNote)
		}
		lx.cursor.Bump()
		value = decoded
	case isPrintable(b):
		lx.cursor.Bump()
		value = b
	default:
		closed := lx.recoverTo('\'')
		if !closed {
			return lx.illegal(start, diag.LexUnterminatedChar, "unterminated character literal", "")
		}
		return lx.illegal(start, diag.LexBadChar, "invalid character in character literal",
			"only printable ASCII characters and escapes are allowed")
	}

	if lx.cursor.Eat('\'') {
		return lx.emit(start, token.CharLit, value, "")
	}

	if closed := lx.recoverTo('\''); !closed {
		return lx.illegal(start, diag.LexUnterminatedChar, "unterminated character literal",
			"add a closing '")
	}
	return lx.illegal(start, diag.LexBadChar,
		fmt.Sprintf("character literal may only contain one character: %s", lx.cursor.TextFrom(start)),
		"use double quotes for strings")
}

// scanString reads "..." decoding escapes. Line breaks inside the literal are kept.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening "

	var sb strings.Builder
	for {
		if lx.cursor.EOF() {
			return lx.illegal(start, diag.LexUnterminatedString, "unterminated string literal",
				`add a closing "`)
		}
		b := lx.cursor.Bump()
		switch b {
		case '"':
			return lx.emit(start, token.StringLit, sb.String(), "")
		case '\\':
			if lx.cursor.EOF() {
				return lx.illegal(start, diag.LexUnterminatedString, "unterminated string literal",
					`add a closing "`)
			}
			esc := lx.cursor.Bump()
			decoded, ok := decodeEscape(esc)
			if !ok {
				lx.recoverTo('"')
				return lx.illegal(start, diag.LexBadEscape,
					fmt.Sprintf("invalid escape sequence '\\%c' in string literal", esc), escapeNote)
			}
			sb.WriteByte(decoded)
		default:
			sb.WriteByte(b)
		}
	}
}

// recoverTo consumes input through the next quote byte q, or to EOF.
// It reports whether the quote was found.
func (lx *Lexer) recoverTo(q byte) bool {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == q {
			return true
		}
	}
	return false
}
