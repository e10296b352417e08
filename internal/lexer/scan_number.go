package lexer

import (
	"errors"
	"fmt"
	"strconv"

	"aera/internal/diag"
	"aera/internal/token"
)

const suffixNote = "valid suffixes are i8, u8, i16, u16, i32, u32, i64, u64, f32 and f64"

// Поддержка: 123, 0b101, 0o17, 0xFF, 1.5, 3., 1e-3, 1.0e+10 и суффиксы (i32, u8, f64, ...).
// f32/f64 превращает целое на вид число в float: 3f32.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			return lx.scanPrefixedInt(start, 16, "hexadecimal", isHex)
		case 'b', 'B':
			return lx.scanPrefixedInt(start, 2, "binary", isBin)
		case 'o', 'O':
			return lx.scanPrefixedInt(start, 8, "octal", isOct)
		}
	}

	// десятичная целая часть
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	isFloat := false

	// дробная часть: "1..2": это диапазон, "3.field": доступ к полю
	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		if next != '.' && !isIdentStartByte(next) {
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			isFloat = true
		}
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			text := lx.cursor.TextFrom(start)
			return lx.illegal(start, diag.LexBadExponent,
				fmt.Sprintf("malformed scientific notation: %s", text),
				"an exponent needs at least one digit, e.g. 1e10 or 2.5e-3")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		isFloat = true
	}

	if isFloat && lx.cursor.Peek() == '.' {
		if lx.cursor.PeekAt(1) == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			text := lx.cursor.TextFrom(start)
			return lx.illegal(start, diag.LexRangeAfterFloat,
				fmt.Sprintf("range operator cannot follow a float literal: %s", text),
				"range bounds must be integers")
		}
		lx.cursor.Bump()
		text := lx.cursor.TextFrom(start)
		return lx.illegal(start, diag.LexBadNumber,
			fmt.Sprintf("malformed number literal: %s", text),
			"a number may contain at most one '.'")
	}

	digits := lx.cursor.TextFrom(start)
	suffix, ok := lx.scanSuffix(isFloat)
	if !ok {
		return lx.badSuffix(start, suffix)
	}
	if token.IsFloatSuffix(suffix) {
		isFloat = true
	}

	if isFloat {
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return lx.illegal(start, diag.LexBadNumber,
				fmt.Sprintf("malformed number literal: %s", lx.cursor.TextFrom(start)), "")
		}
		return lx.emit(start, token.FloatLit, v, suffix)
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return lx.intError(start, err)
	}
	return lx.emit(start, token.IntLit, v, suffix)
}

// scanPrefixedInt handles 0x / 0b / 0o literals. At least one digit must follow the prefix
// and a fractional part is rejected.
func (lx *Lexer) scanPrefixedInt(start Mark, base int, name string, valid func(byte) bool) token.Token {
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // x / b / o
	digitsStart := lx.cursor.Off
	for valid(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	digits := string(lx.file.Content[digitsStart:lx.cursor.Off])

	if digits == "" {
		// съедаем хвост, чтобы не получить каскад ошибок
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.illegal(start, diag.LexBadNumber,
			fmt.Sprintf("malformed number literal: %s", lx.cursor.TextFrom(start)),
			fmt.Sprintf("a %s literal needs at least one digit after the prefix", name))
	}

	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.illegal(start, diag.LexBadNumber,
			fmt.Sprintf("malformed number literal: %s", lx.cursor.TextFrom(start)),
			fmt.Sprintf("a %s literal cannot have a fractional part", name))
	}

	if isDec(lx.cursor.Peek()) {
		// цифра вне системы счисления, например 0b102
		bad := lx.cursor.Peek()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.illegal(start, diag.LexBadNumber,
			fmt.Sprintf("invalid digit '%c' in %s literal: %s", bad, name, lx.cursor.TextFrom(start)), "")
	}

	suffix, ok := lx.scanSuffix(false)
	if !ok || token.IsFloatSuffix(suffix) {
		return lx.badSuffix(start, suffix)
	}

	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return lx.intError(start, err)
	}
	return lx.emit(start, token.IntLit, v, suffix)
}

// scanSuffix reads an optional alphanumeric suffix. ok is false when a suffix is
// present but not valid for the literal.
func (lx *Lexer) scanSuffix(isFloat bool) (string, bool) {
	if !isIdentStartByte(lx.cursor.Peek()) {
		return "", true
	}
	from := lx.cursor.Off
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	suffix := string(lx.file.Content[from:lx.cursor.Off])
	switch {
	case token.IsFloatSuffix(suffix):
		return suffix, true
	case token.IsIntSuffix(suffix) && !isFloat:
		return suffix, true
	}
	return suffix, false
}

func (lx *Lexer) badSuffix(start Mark, suffix string) token.Token {
	return lx.illegal(start, diag.LexBadSuffix,
		fmt.Sprintf("invalid numeric suffix '%s' on %s", suffix, lx.cursor.TextFrom(start)),
		suffixNote)
}

func (lx *Lexer) intError(start Mark, err error) token.Token {
	text := lx.cursor.TextFrom(start)
	if errors.Is(err, strconv.ErrRange) {
		return lx.illegal(start, diag.LexIntOutOfRange,
			fmt.Sprintf("integer literal out of range: %s", text),
			"integer literals must fit in 64 signed bits")
	}
	return lx.illegal(start, diag.LexBadNumber,
		fmt.Sprintf("malformed number literal: %s", text), "")
}
