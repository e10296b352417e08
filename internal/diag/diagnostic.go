package diag

import (
	"aera/internal/source"
)

type Diagnostic struct {
	Severity   Severity
	Code       Code
	Path       string
	TokenLen   int
	Loc        source.Location
	Message    string
	SourceLine string
	Note       string
}

// Reporter: минимальный контракт получения диагностик от фаз.
type Reporter interface {
	Report(d Diagnostic)
}

// At builds a diagnostic pointing at loc inside file; the source line is taken from file.
// file may be nil, in which case the excerpt is left empty.
func At(file *source.File, sev Severity, code Code, loc source.Location, width int, msg, note string) Diagnostic {
	d := Diagnostic{
		Severity: sev,
		Code:     code,
		Path:     loc.Path,
		TokenLen: width,
		Loc:      loc,
		Message:  msg,
		Note:     note,
	}
	if file != nil {
		if d.Path == "" {
			d.Path = file.Path
		}
		d.SourceLine = file.LineText(loc.Line)
	}
	return d
}
