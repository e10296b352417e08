package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"aera/internal/source"
)

const tabWidth = 4

// Cursor представляет собой позицию в файле: байтовое смещение плюс строка и колонка.
type Cursor struct {
	File  *source.File
	Off   uint32
	Line  uint32 // 1-based
	Col   uint32 // 1-based
	limit uint32
}

// NewCursor creates a new cursor at the beginning of the file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Line:  1,
		Col:   1,
		limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt reads the byte n positions ahead of the cursor, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.limit {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Bump перемещает курсор на один байт вперед, обновляя строку и колонку.
// Tab advances the column by 4; '\n' and '\r' reset it to 1, '\n' also starts a new line.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	switch b {
	case '\n':
		c.Line++
		c.Col = 1
	case '\r':
		c.Col = 1
	case '\t':
		c.Col += tabWidth
	default:
		c.Col++
	}
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

// Mark это метка начала токена.
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Line, c.Col = m.Off, m.Line, m.Col
}

// TextFrom returns the source text between the mark and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.File.Content[m.Off:c.Off])
}

// Location returns the location of the mark.
func (c *Cursor) Location(m Mark) source.Location {
	return source.Location{Path: c.File.Path, Line: m.Line, Col: m.Col}
}
