package diag

import (
	"io"
	"sort"
	"strings"
	"sync"

	"aera/internal/source"
)

// Bag is the append-only diagnostic collector.
// Several phases, or several files, may report into one Bag; appends are serialized.
type Bag struct {
	mu      sync.Mutex
	items   []Diagnostic
	max     int // 0: без лимита
	dropped int
}

// NewBag returns a collector without a limit.
func NewBag() *Bag {
	return &Bag{items: make([]Diagnostic, 0, 8)}
}

// NewLimitedBag returns a collector that keeps at most max diagnostics.
// max <= 0 means no limit.
func NewLimitedBag(max int) *Bag {
	b := NewBag()
	if max > 0 {
		b.max = max
	}
	return b
}

// Add appends d unless its message is blank or the limit is reached.
// Возвращает false, если диагностика не добавлена.
func (b *Bag) Add(d Diagnostic) bool {
	if strings.TrimSpace(d.Message) == "" {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Report implements Reporter.
func (b *Bag) Report(d Diagnostic) {
	b.Add(d)
}

func (b *Bag) add(sev Severity, path string, tokenLen int, loc source.Location, msg, sourceLine, note string) {
	b.Add(Diagnostic{
		Severity:   sev,
		Path:       path,
		TokenLen:   tokenLen,
		Loc:        loc,
		Message:    msg,
		SourceLine: sourceLine,
		Note:       note,
	})
}

// AddError records an error.
func (b *Bag) AddError(path string, tokenLen int, loc source.Location, msg, sourceLine, note string) {
	b.add(SevError, path, tokenLen, loc, msg, sourceLine, note)
}

// AddWarning records a warning.
func (b *Bag) AddWarning(path string, tokenLen int, loc source.Location, msg, sourceLine, note string) {
	b.add(SevWarning, path, tokenLen, loc, msg, sourceLine, note)
}

// Note records an informational diagnostic.
func (b *Bag) Note(path string, tokenLen int, loc source.Location, msg, sourceLine, note string) {
	b.add(SevNote, path, tokenLen, loc, msg, sourceLine, note)
}

func (b *Bag) count(sev Severity) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for i := range b.items {
		if b.items[i].Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors возвращает true, если есть хотя бы одна ошибка.
func (b *Bag) HasErrors() bool { return b.count(SevError) > 0 }

// HasWarnings возвращает true, если есть хотя бы одно предупреждение.
func (b *Bag) HasWarnings() bool { return b.count(SevWarning) > 0 }

// ErrorCount returns the number of errors.
func (b *Bag) ErrorCount() int { return b.count(SevError) }

// WarningCount returns the number of warnings.
func (b *Bag) WarningCount() int { return b.count(SevWarning) }

// длина
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Dropped returns how many diagnostics were rejected by the limit.
func (b *Bag) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Items returns a copy of the diagnostics in insertion order.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Merge appends every diagnostic of other, honoring this bag's limit.
func (b *Bag) Merge(other *Bag) {
	for _, d := range other.Items() {
		b.Add(d)
	}
}

// PrintAll renders every diagnostic in insertion order.
func (b *Bag) PrintAll(w io.Writer) error {
	return b.print(w, func(Severity) bool { return true })
}

// PrintErrors renders only errors.
func (b *Bag) PrintErrors(w io.Writer) error {
	return b.print(w, func(s Severity) bool { return s == SevError })
}

// PrintWarnings renders only warnings.
func (b *Bag) PrintWarnings(w io.Writer) error {
	return b.print(w, func(s Severity) bool { return s == SevWarning })
}

// PrintNotes renders only notes.
func (b *Bag) PrintNotes(w io.Writer) error {
	return b.print(w, func(s Severity) bool { return s == SevNote })
}

func (b *Bag) print(w io.Writer, keep func(Severity) bool) error {
	for _, d := range b.Items() {
		if !keep(d.Severity) {
			continue
		}
		if err := Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// Sorted returns the diagnostics ordered by path, line, column, severity (desc) and code.
func Sorted(items []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i], out[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Loc.Line != dj.Loc.Line {
			return di.Loc.Line < dj.Loc.Line
		}
		if di.Loc.Col != dj.Loc.Col {
			return di.Loc.Col < dj.Loc.Col
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
	return out
}
