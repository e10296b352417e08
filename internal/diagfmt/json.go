package diagfmt

import (
	"encoding/json"
	"io"

	"aera/internal/diag"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File   string `json:"file"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
	Length int    `json:"length"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity   string       `json:"severity"`
	Code       string       `json:"code"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	Location   LocationJSON `json:"location"`
	SourceLine string       `json:"source_line,omitempty"`
	Note       string       `json:"note,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Dropped     int              `json:"dropped,omitempty"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
// dropped: сколько диагностик отбросил лимит Bag.
func BuildDiagnosticsOutput(items []diag.Diagnostic, dropped int, opts JSONOpts) DiagnosticsOutput {
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	errors := 0
	for i := range maxItems {
		d := items[i]
		if d.Severity == diag.SevError {
			errors++
		}
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: LocationJSON{
				File:   formatPath(d.Path, opts.PathMode, opts.BaseDir),
				Line:   d.Loc.Line,
				Col:    d.Loc.Col,
				Length: d.TokenLen,
			},
			SourceLine: d.SourceLine,
		}
		if opts.IncludeNotes {
			dj.Note = d.Note
		}
		diagnostics = append(diagnostics, dj)
	}
	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
		Errors:      errors,
		Dropped:     dropped + len(items) - maxItems,
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, items []diag.Diagnostic, dropped int, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(items, dropped, opts))
}
