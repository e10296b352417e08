package lsp

import (
	"unicode/utf8"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"aera/internal/diag"
)

// tabWidth совпадает с шириной таба в колонках лексера.
const tabWidth = 4

const maxUint32 = ^uint32(0)

func safeUInteger(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return protocol.UInteger(maxUint32)
	}
	return protocol.UInteger(v)
}

// byteIndexForColumn находит байт строки, на который указывает колонка
// диагностики. Колонки считаются как в лексере: байт +1, таб +4, '\r' сбрасывает в 1.
func byteIndexForColumn(line string, col uint32) int {
	cur := uint32(1)
	for i := 0; i < len(line); i++ {
		if cur >= col {
			return i
		}
		switch line[i] {
		case '\t':
			cur += tabWidth
		case '\r':
			cur = 1
		default:
			cur++
		}
	}
	return len(line)
}

// utf16Len counts UTF-16 code units in s.
func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
		s = s[size:]
	}
	return n
}

// diagnosticRange maps a diagnostic to an LSP range on its source line.
// The range covers TokenLen bytes, at least one character, clamped to the line.
func diagnosticRange(d diag.Diagnostic) protocol.Range {
	var lineIdx protocol.UInteger
	if d.Loc.Line > 0 {
		lineIdx = protocol.UInteger(d.Loc.Line - 1)
	}
	line := d.SourceLine
	start := byteIndexForColumn(line, d.Loc.Col)
	end := min(start+max(d.TokenLen, 1), len(line))

	startChar := safeUInteger(utf16Len(line[:start]))
	endChar := safeUInteger(utf16Len(line[:end]))
	if end <= start {
		// конец строки или пустая строка: подсвечиваем одну позицию
		endChar = startChar + 1
	}
	return protocol.Range{
		Start: protocol.Position{Line: lineIdx, Character: startChar},
		End:   protocol.Position{Line: lineIdx, Character: endChar},
	}
}

func severityFor(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// toProtocolDiagnostic converts one reporter diagnostic into the LSP shape.
// The note, if any, is appended to the message on its own line.
func toProtocolDiagnostic(d diag.Diagnostic) protocol.Diagnostic {
	sev := severityFor(d.Severity)
	src := lsName
	msg := d.Message
	if d.Note != "" {
		msg += "\nnote: " + d.Note
	}
	return protocol.Diagnostic{
		Range:    diagnosticRange(d),
		Severity: &sev,
		Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
		Source:   &src,
		Message:  msg,
	}
}
