package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"aera/internal/diag"
	"aera/internal/driver"
)

// analyze lexes and parses the buffer and converts the sorted diagnostics.
// Documents that are not aera sources get an empty list.
func (s *Server) analyze(uri protocol.DocumentUri, text string) []protocol.Diagnostic {
	name, ok := documentName(uri)
	if !ok {
		return []protocol.Diagnostic{}
	}
	res := driver.ParseText(name, []byte(text), driver.Options{MaxDiagnostics: s.opts.MaxDiagnostics})
	items := diag.Sorted(res.Bag.Items())
	out := make([]protocol.Diagnostic, 0, len(items))
	for _, d := range items {
		out = append(out, toProtocolDiagnostic(d))
	}
	return out
}
