// Package token defines lexical token kinds, the keyword table and the numeric
// suffix sets shared by the lexer and the parser.
// Invariants:
//   - Token.Lexeme is the exact source slice the token was scanned from.
//   - Token.Loc is the location of the first byte of the lexeme.
//   - EOF is always the last token of a stream; its lexeme is empty.
//   - Newline tokens are synthetic statement terminators; ordinary line breaks
//     never reach the token stream.
//   - Primitive and builtin generic type names (int32, arr, map, ...) are
//     identifiers. The parser recognizes them, not the lexer.
package token
