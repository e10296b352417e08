// Package diag defines the diagnostic model shared by the lexer and the parser.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – error, warning or note (severity.go).
//   - Code – compact numeric identifier with a stable LEXnnnn / SYNnnnn form.
//   - Path, Loc – where the problem was found (1-based line and column).
//   - TokenLen – width of the offending token, used for the caret underline.
//   - SourceLine – the text of the line the location points into; may be empty.
//   - Note – optional short hint rendered on its own line.
//
// # Emitting diagnostics
//
// Phases depend on the Reporter interface only. Bag is the standard collector:
// it is append-only, keeps insertion order and silently drops diagnostics whose
// message is empty or whitespace. Producers never observe a failure when
// reporting; the lexer and the parser keep going after every report.
//
// # Rendering
//
// Render writes one diagnostic in the fixed plain-text layout:
//
//	{path}:{line}:{col}: {severity}: {message}
//	    {source line}
//	    {col-1 spaces}^~~~
//	    note: {note}
//
// The second and third lines appear only when SourceLine is non-empty, the
// last one only when Note is non-empty. Golden tests and editor integrations
// diff against this text, so it must not change. Colored and JSON renderers
// live in internal/diagfmt.
package diag
