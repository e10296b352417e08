// Package testkit holds checks shared by parser, fuzz and driver tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"aera/internal/ast"
	"aera/internal/source"
)

// CheckPositionInvariants runs a minimal set of position invariants on a parsed program:
// 1) every node carries a valid location
// 2) every location lies within the file (EOF may sit one line past the last)
// 3) top-level declarations appear in source order
func CheckPositionInvariants(prog *ast.Program, file *source.File) error {
	if prog == nil || file == nil {
		return fmt.Errorf("nil program or file")
	}
	maxLine, err := safecast.Conv[uint32](file.LineCount() + 1)
	if err != nil {
		return fmt.Errorf("line count overflow: %w", err)
	}

	var bad error
	prog.Inspect(func(n ast.Node) bool {
		if bad != nil {
			return false
		}
		loc := n.Pos()
		if !loc.IsValid() {
			bad = fmt.Errorf("%T has no position", n)
			return false
		}
		if loc.Line > maxLine {
			bad = fmt.Errorf("%T at %s is past the end of the file (%d lines)", n, loc, file.LineCount())
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}

	var prev source.Location
	for i, d := range prog.Decls {
		loc := d.Pos()
		if i > 0 && before(loc, prev) {
			return fmt.Errorf("declaration %d at %s precedes declaration %d at %s", i, loc, i-1, prev)
		}
		prev = loc
	}
	return nil
}

func before(a, b source.Location) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Col < b.Col
}
