package diag

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const indent = "    "

// Render writes d in the plain-text layout described in the package docs.
func Render(w io.Writer, d Diagnostic) error {
	bw := bufio.NewWriter(w)
	writeDiagnostic(bw, d)
	return bw.Flush()
}

// Format returns the rendering of d as a string.
func Format(d Diagnostic) string {
	var sb strings.Builder
	writeDiagnostic(&sb, d)
	return sb.String()
}

type stringWriter interface {
	WriteString(s string) (int, error)
}

func writeDiagnostic(w stringWriter, d Diagnostic) {
	_, _ = w.WriteString(fmt.Sprintf("%s:%d:%d: %s: %s\n", d.Path, d.Loc.Line, d.Loc.Col, d.Severity, d.Message))
	if d.SourceLine != "" {
		_, _ = w.WriteString(indent + d.SourceLine + "\n")
		_, _ = w.WriteString(indent + CaretLine(d.Loc.Col, d.TokenLen) + "\n")
	}
	if d.Note != "" {
		_, _ = w.WriteString(indent + "note: " + d.Note + "\n")
	}
}

// CaretLine returns col-1 spaces, a caret and width-1 tildes.
func CaretLine(col uint32, width int) string {
	var sb strings.Builder
	if col > 1 {
		sb.WriteString(strings.Repeat(" ", int(col-1)))
	}
	sb.WriteByte('^')
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}
