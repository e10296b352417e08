package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Illegal indicates an erroneous token; a diagnostic has already been reported for it.
	Illegal Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline is the implicit statement terminator.
	Newline

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// Semicolon represents ';'.
	Semicolon
	// Colon represents ':'.
	Colon

	// ShlAssign represents '<<='.
	ShlAssign
	// ShrAssign represents '>>='.
	ShrAssign
	// DotDotEq represents '..='.
	DotDotEq

	// AndAnd represents '&&'.
	AndAnd
	// OrOr represents '||'.
	OrOr
	// EqEq represents '=='.
	EqEq
	// BangEq represents '!='.
	BangEq
	// GtEq represents '>='.
	GtEq
	// LtEq represents '<='.
	LtEq
	// Shr represents '>>'.
	Shr
	// Shl represents '<<'.
	Shl
	// PlusPlus represents '++'.
	PlusPlus
	// MinusMinus represents '--'.
	MinusMinus
	// PlusAssign represents '+='.
	PlusAssign
	// MinusAssign represents '-='.
	MinusAssign
	// StarAssign represents '*='.
	StarAssign
	// SlashAssign represents '/='.
	SlashAssign
	// PercentAssign represents '%='.
	PercentAssign
	// AmpAssign represents '&='.
	AmpAssign
	// PipeAssign represents '|='.
	PipeAssign
	// CaretAssign represents '^='.
	CaretAssign
	// TildeAssign represents '~='.
	TildeAssign
	// Arrow represents '->'.
	Arrow
	// DotDot represents '..'.
	DotDot
	// FatArrow represents '=>'.
	FatArrow

	// Amp represents '&'.
	Amp
	// Pipe represents '|'.
	Pipe
	// Caret represents '^'.
	Caret
	// Tilde represents '~'.
	Tilde
	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// Question represents '?'.
	Question
	// At represents '@'.
	At
	// Bang represents '!'.
	Bang
	// Assign represents '='.
	Assign
	// Gt represents '>'.
	Gt
	// Lt represents '<'.
	Lt

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// CharLit represents a character literal.
	CharLit
	// StringLit represents a string literal.
	StringLit

	// KwFn represents the 'fn' keyword.
	KwFn
	// KwLet represents the 'let' keyword.
	KwLet
	// KwMut represents the 'mut' keyword.
	KwMut
	// KwConst represents the 'const' keyword.
	KwConst
	// KwPub represents the 'pub' keyword.
	KwPub
	// KwIf represents the 'if' keyword.
	KwIf
	// KwElse represents the 'else' keyword.
	KwElse
	// KwFor represents the 'for' keyword.
	KwFor
	// KwWhile represents the 'while' keyword.
	KwWhile
	// KwLoop represents the 'loop' keyword.
	KwLoop
	// KwMatch represents the 'match' keyword.
	KwMatch
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwContinue represents the 'continue' keyword.
	KwContinue
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwIn represents the 'in' keyword.
	KwIn
	// KwImport represents the 'import' keyword.
	KwImport
	// KwClass represents the 'class' keyword.
	KwClass
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwTrait represents the 'trait' keyword.
	KwTrait
	// KwModifies represents the 'modifies' keyword.
	KwModifies
	// KwAlias represents the 'alias' keyword.
	KwAlias
	// KwSelf represents the 'self' keyword.
	KwSelf
	// KwAs represents the 'as' keyword.
	KwAs
	// KwBind represents the 'bind' keyword (native interop, reserved).
	KwBind
	// KwWith represents the 'with' keyword.
	KwWith
	// KwTrue represents the 'true' literal.
	KwTrue
	// KwFalse represents the 'false' literal.
	KwFalse
	// KwNone represents the 'none' literal.
	KwNone

	kindCount
)

var kindNames = [...]string{
	Illegal:       "Illegal",
	EOF:           "EOF",
	Newline:       "Newline",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Comma:         "Comma",
	Dot:           "Dot",
	Semicolon:     "Semicolon",
	Colon:         "Colon",
	ShlAssign:     "ShlAssign",
	ShrAssign:     "ShrAssign",
	DotDotEq:      "DotDotEq",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	GtEq:          "GtEq",
	LtEq:          "LtEq",
	Shr:           "Shr",
	Shl:           "Shl",
	PlusPlus:      "PlusPlus",
	MinusMinus:    "MinusMinus",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	AmpAssign:     "AmpAssign",
	PipeAssign:    "PipeAssign",
	CaretAssign:   "CaretAssign",
	TildeAssign:   "TildeAssign",
	Arrow:         "Arrow",
	DotDot:        "DotDot",
	FatArrow:      "FatArrow",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	Tilde:         "Tilde",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Question:      "Question",
	At:            "At",
	Bang:          "Bang",
	Assign:        "Assign",
	Gt:            "Gt",
	Lt:            "Lt",
	Ident:         "Ident",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	CharLit:       "CharLit",
	StringLit:     "StringLit",
	KwFn:          "KwFn",
	KwLet:         "KwLet",
	KwMut:         "KwMut",
	KwConst:       "KwConst",
	KwPub:         "KwPub",
	KwIf:          "KwIf",
	KwElse:        "KwElse",
	KwFor:         "KwFor",
	KwWhile:       "KwWhile",
	KwLoop:        "KwLoop",
	KwMatch:       "KwMatch",
	KwBreak:       "KwBreak",
	KwContinue:    "KwContinue",
	KwReturn:      "KwReturn",
	KwIn:          "KwIn",
	KwImport:      "KwImport",
	KwClass:       "KwClass",
	KwStruct:      "KwStruct",
	KwEnum:        "KwEnum",
	KwTrait:       "KwTrait",
	KwModifies:    "KwModifies",
	KwAlias:       "KwAlias",
	KwSelf:        "KwSelf",
	KwAs:          "KwAs",
	KwBind:        "KwBind",
	KwWith:        "KwWith",
	KwTrue:        "KwTrue",
	KwFalse:       "KwFalse",
	KwNone:        "KwNone",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Terminates reports whether a Newline directly after a token of this kind
// ends a statement. Кроме литералов и закрывающих скобок сюда входят
// `self`, `none` и постфиксный `?`: ими тоже может заканчиваться выражение.
func (k Kind) Terminates() bool {
	switch k {
	case Ident, IntLit, FloatLit, CharLit, StringLit, KwTrue, KwFalse, KwSelf, KwNone,
		KwBreak, KwContinue, KwReturn, RParen, RBrace, RBracket, Question:
		return true
	default:
		return false
	}
}

// IsAssign reports whether the kind is '=' or a compound assignment operator.
func (k Kind) IsAssign() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		ShlAssign, ShrAssign, AmpAssign, PipeAssign, CaretAssign, TildeAssign:
		return true
	default:
		return false
	}
}
