package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyChanges применяет изменения didChange по порядку: событие без Range
// заменяет весь текст, с Range: правит указанный диапазон.
func applyChanges(text string, changes []any) string {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			start := offsetForPosition(text, c.Range.Start)
			end := offsetForPosition(text, c.Range.End)
			if end < start {
				end = start
			}
			text = text[:start] + c.Text + text[end:]
		}
	}
	return text
}

// offsetForPosition converts an LSP position (0-based line, UTF-16 units) into a byte offset.
// Positions past the end clamp to the line end or the text end.
func offsetForPosition(text string, pos protocol.Position) int {
	line := protocol.UInteger(0)
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return len(text)
	}
	units := protocol.UInteger(0)
	for i < len(text) && units < pos.Character {
		if text[i] == '\n' {
			break
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		need := protocol.UInteger(1)
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}
