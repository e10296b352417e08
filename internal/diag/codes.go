package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexEmptyChar                Code = 1006
	LexBadEscape                Code = 1007
	LexBadSuffix                Code = 1008
	LexBadExponent              Code = 1009
	LexRangeAfterFloat          Code = 1010
	LexIntOutOfRange            Code = 1011
	LexBadChar                  Code = 1012

	// Парсерные
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectSemicolon      Code = 2012
	SynForMissingIn         Code = 2013
	SynUnexpectedTopLevel   Code = 2101
	SynExpectIdentifier     Code = 2102
	SynExpectRightBracket   Code = 2201
	SynExpectType           Code = 2202
	SynExpectExpression     Code = 2203
	SynExpectColon          Code = 2204
	SynExpectLParen         Code = 2301
	SynExpectRParen         Code = 2302
	SynExpectLBrace         Code = 2303
	SynExpectRBrace         Code = 2304
	SynExpectElse           Code = 2305
	SynInvalidAssignTarget  Code = 2306
	SynExpectGenericOpen    Code = 2307
	SynExpectGenericClose   Code = 2308
	SynBadArrayDimension    Code = 2309
	SynSizedAfterUnsized    Code = 2310
	SynBuiltinGenericArity  Code = 2311
	SynPrimitiveNotGeneric  Code = 2312
	SynExpectFatArrow       Code = 2313
	SynExpectAssign         Code = 2314
	SynExpectFn             Code = 2315
	SynExpectClassMember    Code = 2316
	SynExpectDecoratorName  Code = 2317

	// Ввод-вывод
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexEmptyChar:                "Empty character literal",
	LexBadEscape:                "Invalid escape sequence",
	LexBadSuffix:                "Invalid numeric suffix",
	LexBadExponent:              "Malformed scientific notation",
	LexRangeAfterFloat:          "Range operator after float literal",
	LexIntOutOfRange:            "Integer literal out of range",
	LexBadChar:                  "Invalid character literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expect statement terminator",
	SynForMissingIn:             "Missing 'in' in for loop",
	SynUnexpectedTopLevel:       "Unexpected top-level item",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectRightBracket:       "Expect right bracket",
	SynExpectType:               "Expect type",
	SynExpectExpression:         "Expect expression",
	SynExpectColon:              "Expect colon",
	SynExpectLParen:             "Expect left parenthesis",
	SynExpectRParen:             "Expect right parenthesis",
	SynExpectLBrace:             "Expect left brace",
	SynExpectRBrace:             "Expect right brace",
	SynExpectElse:               "Expect 'else' in conditional expression",
	SynInvalidAssignTarget:      "Invalid assignment target",
	SynExpectGenericOpen:        "Expect '!<' for generic type",
	SynExpectGenericClose:       "Expect '>' to close generic type",
	SynBadArrayDimension:        "Invalid array dimension",
	SynSizedAfterUnsized:        "Sized dimension after unsized dimension",
	SynBuiltinGenericArity:      "Wrong number of type arguments",
	SynPrimitiveNotGeneric:      "Primitive type cannot take type arguments",
	SynExpectFatArrow:           "Expect '=>' in match clause",
	SynExpectAssign:             "Expect '=' initializer",
	SynExpectFn:                 "Expect 'fn'",
	SynExpectClassMember:        "Expect field or method",
	SynExpectDecoratorName:      "Expect decorator name",
	IOLoadFileError:             "Failed to load file",
}

// ID returns the stable textual identifier, e.g. LEX1001 or SYN2203.
func (c Code) ID() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 4000 && c < 5000:
		return fmt.Sprintf("IO%04d", uint16(c))
	}
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
