package token

var keywords = map[string]Kind{
	"fn":       KwFn,
	"let":      KwLet,
	"mut":      KwMut,
	"const":    KwConst,
	"pub":      KwPub,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"loop":     KwLoop,
	"match":    KwMatch,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"in":       KwIn,
	"import":   KwImport,
	"class":    KwClass,
	"struct":   KwStruct,
	"enum":     KwEnum,
	"trait":    KwTrait,
	"modifies": KwModifies,
	"alias":    KwAlias,
	"self":     KwSelf,
	"as":       KwAs,
	"bind":     KwBind,
	"with":     KwWith,
	"true":     KwTrue,
	"false":    KwFalse,
	"none":     KwNone,
}

var intSuffixes = map[string]struct{}{
	"i8": {}, "u8": {}, "i16": {}, "u16": {}, "i32": {}, "u32": {}, "i64": {}, "u64": {},
}

var floatSuffixes = map[string]struct{}{
	"f32": {}, "f64": {},
}

// LookupKeyword returns the keyword kind for the identifier spelling, if any.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsIntSuffix reports whether s is a valid integer literal suffix.
func IsIntSuffix(s string) bool {
	_, ok := intSuffixes[s]
	return ok
}

// IsFloatSuffix reports whether s is a valid float literal suffix.
func IsFloatSuffix(s string) bool {
	_, ok := floatSuffixes[s]
	return ok
}

// IsKeyword reports whether the kind belongs to the keyword table.
func (k Kind) IsKeyword() bool {
	return k >= KwFn && k <= KwNone
}
