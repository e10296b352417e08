package diag

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan, color.Bold)
	pathColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	codeColor    = color.New(color.Faint)
)

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return noteColor
	}
}

// RenderColor пишет ту же раскладку, что и Render, но с цветом и кодом диагностики
// после сообщения. Включён ли цвет, решает color.NoColor.
func RenderColor(w io.Writer, d Diagnostic) error {
	bw := bufio.NewWriter(w)
	sev := severityColor(d.Severity)
	fmt.Fprintf(bw, "%s %s %s",
		pathColor.Sprintf("%s:%d:%d:", d.Path, d.Loc.Line, d.Loc.Col),
		sev.Sprintf("%s:", d.Severity),
		d.Message)
	if d.Code != UnknownCode {
		fmt.Fprintf(bw, " %s", codeColor.Sprintf("[%s]", d.Code.ID()))
	}
	bw.WriteByte('\n')
	if d.SourceLine != "" {
		bw.WriteString(indent + d.SourceLine + "\n")
		bw.WriteString(indent + caretColor.Sprint(CaretLine(d.Loc.Col, d.TokenLen)) + "\n")
	}
	if d.Note != "" {
		bw.WriteString(indent + noteColor.Sprint("note:") + " " + d.Note + "\n")
	}
	return bw.Flush()
}

// PrintAllColor renders every diagnostic with RenderColor.
func (b *Bag) PrintAllColor(w io.Writer) error {
	for _, d := range b.Items() {
		if err := RenderColor(w, d); err != nil {
			return err
		}
	}
	return nil
}
