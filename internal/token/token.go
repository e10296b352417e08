package token

import (
	"aera/internal/source"
)

// Token represents a single source token.
//
// Value holds the decoded literal: int64 for IntLit, float64 for FloatLit,
// byte for CharLit, string for StringLit and bool for true/false.
// It is nil for every other kind.
type Token struct {
	Kind   Kind
	Lexeme string
	Loc    source.Location
	Value  any
	Suffix string
}

// IsLiteral reports whether the token is a numeric, character, string or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Int returns the decoded integer value.
func (t Token) Int() (int64, bool) {
	v, ok := t.Value.(int64)
	return v, ok
}

// Float returns the decoded float value.
func (t Token) Float() (float64, bool) {
	v, ok := t.Value.(float64)
	return v, ok
}

// Len returns the lexeme length used for caret underlining.
func (t Token) Len() int {
	return len(t.Lexeme)
}
