package diag

import (
	"fmt"
	"strings"
)

// FormatShort renders diagnostics one per line, sorted deterministically:
//
//	path:line:col: severity CODE: message
//
// The result is stable across runs and suitable for golden files and the
// CLI's short output. Notes are appended after " | " when includeNotes is set.
func FormatShort(items []Diagnostic, includeNotes bool) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range Sorted(items) {
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s", d.Path, d.Loc.Line, d.Loc.Col, d.Severity, d.Code.ID(), d.Message)
		if includeNotes && d.Note != "" {
			sb.WriteString(" | ")
			sb.WriteString(d.Note)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
