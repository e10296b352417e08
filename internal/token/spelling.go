package token

var spellings = [...]string{
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	Comma:         ",",
	Dot:           ".",
	Semicolon:     ";",
	Colon:         ":",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	DotDotEq:      "..=",
	AndAnd:        "&&",
	OrOr:          "||",
	EqEq:          "==",
	BangEq:        "!=",
	GtEq:          ">=",
	LtEq:          "<=",
	Shr:           ">>",
	Shl:           "<<",
	PlusPlus:      "++",
	MinusMinus:    "--",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
	TildeAssign:   "~=",
	Arrow:         "->",
	DotDot:        "..",
	FatArrow:      "=>",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Question:      "?",
	At:            "@",
	Bang:          "!",
	Assign:        "=",
	Gt:            ">",
	Lt:            "<",
}

var keywordSpelling = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for s, k := range keywords {
		m[k] = s
	}
	return m
}()

// Spelling returns the fixed source text of an operator, punctuation or keyword kind.
// Kinds without a fixed spelling (identifiers, literals, EOF) return "".
func (k Kind) Spelling() string {
	if k.IsKeyword() {
		return keywordSpelling[k]
	}
	if int(k) < len(spellings) {
		return spellings[k]
	}
	return ""
}
