package source

import (
	"errors"
	"fmt"
)

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// ErrLineOutOfRange is returned by File.Line for an index past the last line.
var ErrLineOutOfRange = errors.New("line index out of range")

// lineSpan is the byte range of one physical line, without its '\n'.
type lineSpan struct {
	start  uint32
	length uint32
}

// Location points at a character in a named source.
// Line and Col are 1-based.
type Location struct {
	Path string
	Line uint32
	Col  uint32
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Col)
}

// IsValid reports whether the location has been set.
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Col > 0
}
