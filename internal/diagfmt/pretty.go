package diagfmt

import (
	"fmt"
	"io"

	"aera/internal/diag"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Порядок items сохраняется; сортировку делает вызывающий.
// Для каждой диагностики печатается заголовок, строка исходника с ^~~ и note.
// При Color используется diag.RenderColor, иначе побайтовый diag.Render.
func Pretty(w io.Writer, items []diag.Diagnostic, opts PrettyOpts) error {
	render := diag.Render
	if opts.Color {
		render = diag.RenderColor
	}
	for i, d := range items {
		if opts.Max > 0 && i >= opts.Max {
			_, err := fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", len(items)-opts.Max)
			return err
		}
		d.Path = formatPath(d.Path, opts.PathMode, opts.BaseDir)
		if err := render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// Short печатает по строке на диагностику, в детерминированном порядке.
func Short(w io.Writer, items []diag.Diagnostic, opts PrettyOpts) error {
	rewritten := make([]diag.Diagnostic, len(items))
	for i, d := range items {
		d.Path = formatPath(d.Path, opts.PathMode, opts.BaseDir)
		rewritten[i] = d
	}
	if opts.Max > 0 && len(rewritten) > opts.Max {
		rewritten = diag.Sorted(rewritten)[:opts.Max]
	}
	_, err := io.WriteString(w, diag.FormatShort(rewritten, true))
	return err
}
