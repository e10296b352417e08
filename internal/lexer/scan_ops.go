package lexer

import (
	"aera/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('<', '<', '='):
		return lx.emit(start, token.ShlAssign, nil, "")
	case lx.try3('>', '>', '='):
		return lx.emit(start, token.ShrAssign, nil, "")
	case lx.try3('.', '.', '='):
		return lx.emit(start, token.DotDotEq, nil, "")
	}

	if kind, ok := lx.tryTwoChar(); ok {
		return lx.emit(start, kind, nil, "")
	}

	// односимвольные
	var kind token.Kind
	switch lx.cursor.Peek() {
	case '(':
		kind = token.LParen
		lx.parenDepth++
	case ')':
		kind = token.RParen
		lx.parenDepth = max(lx.parenDepth-1, 0)
	case '{':
		kind = token.LBrace
		lx.braceDepth++
	case '}':
		kind = token.RBrace
		lx.braceDepth = max(lx.braceDepth-1, 0)
	case '[':
		kind = token.LBracket
		lx.bracketDepth++
	case ']':
		kind = token.RBracket
		lx.bracketDepth = max(lx.bracketDepth-1, 0)
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case ':':
		kind = token.Colon
	case '.':
		kind = token.Dot
	case '&':
		kind = token.Amp
	case '|':
		kind = token.Pipe
	case '^':
		kind = token.Caret
	case '~':
		kind = token.Tilde
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '?':
		kind = token.Question
	case '@':
		kind = token.At
	case '!':
		kind = token.Bang
	case '=':
		kind = token.Assign
	case '>':
		kind = token.Gt
	case '<':
		kind = token.Lt
	default:
		return lx.unknownChar(start)
	}
	lx.cursor.Bump()
	return lx.emit(start, kind, nil, "")
}

var twoCharOps = [...]struct {
	a, b byte
	kind token.Kind
}{
	{'&', '&', token.AndAnd},
	{'|', '|', token.OrOr},
	{'=', '=', token.EqEq},
	{'!', '=', token.BangEq},
	{'>', '=', token.GtEq},
	{'<', '=', token.LtEq},
	{'>', '>', token.Shr},
	{'<', '<', token.Shl},
	{'+', '+', token.PlusPlus},
	{'-', '-', token.MinusMinus},
	{'+', '=', token.PlusAssign},
	{'-', '=', token.MinusAssign},
	{'*', '=', token.StarAssign},
	{'/', '=', token.SlashAssign},
	{'%', '=', token.PercentAssign},
	{'&', '=', token.AmpAssign},
	{'|', '=', token.PipeAssign},
	{'^', '=', token.CaretAssign},
	{'~', '=', token.TildeAssign},
	{'-', '>', token.Arrow},
	{'.', '.', token.DotDot},
	{'=', '>', token.FatArrow},
}

func (lx *Lexer) tryTwoChar() (token.Kind, bool) {
	for _, op := range twoCharOps {
		if lx.try2(op.a, op.b) {
			return op.kind, true
		}
	}
	return token.Illegal, false
}

func (lx *Lexer) try2(a, b byte) bool {
	if lx.cursor.Peek() == a && lx.cursor.PeekAt(1) == b {
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return false
}

func (lx *Lexer) try3(a, b, c byte) bool {
	if lx.cursor.Peek() == a && lx.cursor.PeekAt(1) == b && lx.cursor.PeekAt(2) == c {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return false
}
