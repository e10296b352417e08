package diag_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"aera/internal/diag"
	"aera/internal/source"
)

func TestRenderLayout(t *testing.T) {
	tests := []struct {
		name string
		d    diag.Diagnostic
		want string
	}{
		{
			name: "header only",
			d: diag.Diagnostic{
				Severity: diag.SevError, Path: "main.ae", TokenLen: 1,
				Loc: source.Location{Line: 2, Col: 1}, Message: "expected expression",
			},
			want: "main.ae:2:1: error: expected expression\n",
		},
		{
			name: "source line and caret",
			d: diag.Diagnostic{
				Severity: diag.SevError, Path: "main.ae", TokenLen: 3,
				Loc: source.Location{Line: 1, Col: 5}, Message: "bad token",
				SourceLine: "let $$$ = 1",
			},
			want: "main.ae:1:5: error: bad token\n" +
				"    let $$$ = 1\n" +
				"        ^~~\n",
		},
		{
			name: "warning with note",
			d: diag.Diagnostic{
				Severity: diag.SevWarning, Path: "a.ae", TokenLen: 1,
				Loc: source.Location{Line: 3, Col: 1}, Message: "odd",
				SourceLine: "x", Note: "consider removing it",
			},
			want: "a.ae:3:1: warning: odd\n" +
				"    x\n" +
				"    ^\n" +
				"    note: consider removing it\n",
		},
		{
			name: "note without source line",
			d: diag.Diagnostic{
				Severity: diag.SevNote, Path: "a.ae", TokenLen: 0,
				Loc: source.Location{Line: 1, Col: 1}, Message: "fyi", Note: "extra",
			},
			want: "a.ae:1:1: note: fyi\n" +
				"    note: extra\n",
		},
		{
			name: "zero width still draws caret",
			d: diag.Diagnostic{
				Severity: diag.SevError, Path: "a.ae", TokenLen: 0,
				Loc: source.Location{Line: 1, Col: 4}, Message: "eof",
				SourceLine: "abc",
			},
			want: "a.ae:1:4: error: eof\n" +
				"    abc\n" +
				"       ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := diag.Render(&buf, tt.d); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("Render =\n%q\nwant\n%q", buf.String(), tt.want)
			}
			if diag.Format(tt.d) != tt.want {
				t.Errorf("Format differs from Render")
			}
		})
	}
}

func TestAtFillsSourceLine(t *testing.T) {
	f := source.NewFile("main.ae", "let x = 5\nlet $ = 1\n")
	d := diag.At(f, diag.SevError, diag.LexUnknownChar, source.Location{Path: "main.ae", Line: 2, Col: 5}, 1, "unknown character '$'", "")
	if d.SourceLine != "let $ = 1" {
		t.Errorf("SourceLine = %q", d.SourceLine)
	}
	if d.Path != "main.ae" || d.Code.ID() != "LEX1001" {
		t.Errorf("Path=%q ID=%q", d.Path, d.Code.ID())
	}

	past := diag.At(f, diag.SevError, diag.SynExpectExpression, source.Location{Path: "main.ae", Line: 3, Col: 1}, 0, "expected expression", "")
	if past.SourceLine != "" {
		t.Errorf("location past the last line must have no excerpt, got %q", past.SourceLine)
	}
}

func TestCodeID(t *testing.T) {
	if diag.SynExpectExpression.ID() != "SYN2203" {
		t.Errorf("ID() = %q", diag.SynExpectExpression.ID())
	}
	if diag.LexBadSuffix.Title() != "Invalid numeric suffix" {
		t.Errorf("Title() = %q", diag.LexBadSuffix.Title())
	}
	if diag.Code(4242).Title() != "Unknown error" {
		t.Errorf("unknown code title = %q", diag.Code(4242).Title())
	}
}

func TestRenderColorWithoutColor(t *testing.T) {
	// при отключённом цвете раскладка совпадает с Render плюс код
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	d := diag.Diagnostic{
		Severity: diag.SevError, Code: diag.SynExpectExpression, Path: "main.ae", TokenLen: 1,
		Loc: source.Location{Line: 1, Col: 9}, Message: "expected expression, found newline",
		SourceLine: "let x = ",
	}
	var buf bytes.Buffer
	if err := diag.RenderColor(&buf, d); err != nil {
		t.Fatal(err)
	}
	want := "main.ae:1:9: error: expected expression, found newline [SYN2203]\n" +
		"    let x = \n" +
		"            ^\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
}
