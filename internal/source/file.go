package source

import (
	"crypto/sha256"
	"fmt"

	"fortio.org/safecast"
)

// File is the source context of one compilation unit: its name, its full text
// and the line table computed once on construction.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
	lines   []lineSpan
}

// NewFile builds a standalone File from a name and the complete text.
func NewFile(path, text string) *File {
	content := []byte(text)
	return &File{
		Path:    path,
		Content: content,
		Hash:    sha256.Sum256(content),
		lines:   buildLineSpans(content),
	}
}

// Source returns the full text.
func (f *File) Source() string {
	return string(f.Content)
}

// Filename returns the name the file was registered under.
func (f *File) Filename() string {
	return f.Path
}

// LineCount returns the number of recorded lines.
// An empty file has no lines; a trailing partial line counts as a line.
func (f *File) LineCount() int {
	return len(f.lines)
}

// Line returns the text of the 0-based line n without its terminating '\n'.
func (f *File) Line(n int) (string, error) {
	if n < 0 || n >= len(f.lines) {
		return "", fmt.Errorf("%w: %d (file %q has %d lines)", ErrLineOutOfRange, n, f.Path, len(f.lines))
	}
	sp := f.lines[n]
	return string(f.Content[sp.start : sp.start+sp.length]), nil
}

// LineText is Line for 1-based numbers that swallows the range error.
// Diagnostics use it: a location past the last line renders without a source excerpt.
func (f *File) LineText(line uint32) string {
	if line == 0 {
		return ""
	}
	n, err := safecast.Conv[int](line - 1)
	if err != nil {
		return ""
	}
	text, err := f.Line(n)
	if err != nil {
		return ""
	}
	return text
}

// Offset converts a 1-based line and byte column into a byte offset.
// Columns past the end of the line are clamped to the line end.
func (f *File) Offset(line, col uint32) uint32 {
	if line == 0 || len(f.lines) == 0 {
		return 0
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	idx, err := safecast.Conv[int](line - 1)
	if err != nil || idx >= len(f.lines) {
		return lenContent
	}
	sp := f.lines[idx]
	if col == 0 {
		return sp.start
	}
	if col-1 > sp.length {
		// позиция за '\n' строки
		end := sp.start + sp.length + 1
		if end > lenContent {
			return lenContent
		}
		return end
	}
	return sp.start + col - 1
}
