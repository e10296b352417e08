package diag_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"aera/internal/diag"
	"aera/internal/source"
)

func loc(line, col uint32) source.Location {
	return source.Location{Path: "main.ae", Line: line, Col: col}
}

func TestBagDropsBlankMessages(t *testing.T) {
	b := diag.NewBag()
	b.AddError("main.ae", 1, loc(1, 1), "", "x", "")
	b.AddError("main.ae", 1, loc(1, 1), "  \t\n", "x", "")
	b.AddWarning("main.ae", 1, loc(1, 1), " ", "x", "")
	b.Note("main.ae", 1, loc(1, 1), "", "x", "")
	if b.Len() != 0 {
		t.Fatalf("blank messages must be dropped, got %d items", b.Len())
	}
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("empty bag reports errors or warnings")
	}
}

func TestBagCounts(t *testing.T) {
	b := diag.NewBag()
	b.AddError("main.ae", 1, loc(1, 1), "first", "", "")
	b.AddWarning("main.ae", 1, loc(2, 1), "second", "", "")
	b.AddError("main.ae", 1, loc(3, 1), "third", "", "")
	b.Note("main.ae", 1, loc(4, 1), "fourth", "", "")

	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("expected errors and warnings")
	}
	if b.ErrorCount() != 2 {
		t.Errorf("ErrorCount() = %d, want 2", b.ErrorCount())
	}
	if b.WarningCount() != 1 {
		t.Errorf("WarningCount() = %d, want 1", b.WarningCount())
	}
	items := b.Items()
	want := []string{"first", "second", "third", "fourth"}
	for i, d := range items {
		if d.Message != want[i] {
			t.Errorf("item %d = %q, want %q (insertion order)", i, d.Message, want[i])
		}
	}
}

func TestBagLimit(t *testing.T) {
	b := diag.NewLimitedBag(2)
	for i := 0; i < 5; i++ {
		b.AddError("main.ae", 1, loc(1, 1), "boom", "", "")
	}
	if b.Len() != 2 || b.Dropped() != 3 {
		t.Errorf("Len=%d Dropped=%d, want 2 and 3", b.Len(), b.Dropped())
	}
}

func TestBagConcurrentReports(t *testing.T) {
	b := diag.NewBag()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				b.Report(diag.Diagnostic{Severity: diag.SevError, Message: "x"})
			}
		}()
	}
	wg.Wait()
	if b.ErrorCount() != 400 {
		t.Errorf("ErrorCount() = %d, want 400", b.ErrorCount())
	}
}

func TestPrintFilters(t *testing.T) {
	b := diag.NewBag()
	b.AddError("a.ae", 1, loc(1, 1), "err", "", "")
	b.AddWarning("a.ae", 1, loc(1, 2), "warn", "", "")
	b.Note("a.ae", 1, loc(1, 3), "info", "", "")

	var buf bytes.Buffer
	if err := b.PrintWarnings(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a.ae:1:2: warning: warn\n" {
		t.Errorf("PrintWarnings = %q", got)
	}

	buf.Reset()
	if err := b.PrintNotes(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a.ae:1:3: note: info\n" {
		t.Errorf("PrintNotes = %q", got)
	}

	buf.Reset()
	if err := b.PrintAll(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("PrintAll = %q", buf.String())
	}
}

func TestPrintErrorsIdempotent(t *testing.T) {
	b := diag.NewBag()
	b.AddError("main.ae", 3, loc(1, 5), "unexpected token", "let x = 5", "remove it")

	var first, second bytes.Buffer
	if err := b.PrintErrors(&first); err != nil {
		t.Fatal(err)
	}
	if err := b.PrintErrors(&second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("outputs differ:\n%q\n%q", first.String(), second.String())
	}
	if b.Len() != 1 {
		t.Errorf("printing mutated the bag: Len=%d", b.Len())
	}
}

func TestSortedAndShort(t *testing.T) {
	items := []diag.Diagnostic{
		{Severity: diag.SevWarning, Code: diag.SynExpectSemicolon, Path: "b.ae", Loc: loc(1, 1), Message: "w"},
		{Severity: diag.SevError, Code: diag.LexUnknownChar, Path: "a.ae", Loc: loc(2, 4), Message: "e2", Note: "hint"},
		{Severity: diag.SevError, Code: diag.SynExpectExpression, Path: "a.ae", Loc: loc(1, 9), Message: "e1"},
	}
	got := diag.FormatShort(items, true)
	want := "a.ae:1:9: error SYN2203: e1\n" +
		"a.ae:2:4: error LEX1001: e2 | hint\n" +
		"b.ae:1:1: warning SYN2012: w\n"
	if got != want {
		t.Errorf("FormatShort =\n%s\nwant\n%s", got, want)
	}
	if diag.FormatShort(nil, false) != "" {
		t.Error("FormatShort(nil) must be empty")
	}
}
