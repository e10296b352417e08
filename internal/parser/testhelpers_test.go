package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/parser"
	"aera/internal/source"
	"aera/internal/testkit"
)

// parseSource: лексер + парсер над строкой, диагностики в общий Bag.
func parseSource(t *testing.T, input string) (*ast.Program, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag()
	file := source.NewFile("test.aera", input)
	prog := parser.Parse(file, bag)
	if err := testkit.CheckPositionInvariants(prog, file); err != nil {
		t.Fatalf("position invariants for %q: %v", input, err)
	}
	return prog, bag
}

// mustParse: то же, но без единой диагностики.
func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, bag := parseSource(t, input)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(bag))
	}
	return prog
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s %s", d.Code.ID(), d.Loc, d.Message)
	}
	return strings.Join(lines, "; ")
}

// fnBody разбирает тело единственной функции в программе.
func fnBody(t *testing.T, prog *ast.Program) []ast.Stmt {
	t.Helper()
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Decls))
	}
	fn, ok := prog.Decls[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("expected *ast.FnDecl, got %T", prog.Decls[0])
	}
	if fn.Body == nil {
		t.Fatalf("function %s has no body", fn.Name)
	}
	return fn.Body.Stmts
}

// initExpr возвращает инициализатор `let r = <expr>`.
func initExpr(t *testing.T, expr string) ast.Expr {
	t.Helper()
	prog := mustParse(t, "let r = "+expr+"\n")
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Decls))
	}
	v, ok := prog.Decls[0].(*ast.VarDecl)
	if !ok || v.Init == nil {
		t.Fatalf("expected let with initializer, got %T", prog.Decls[0])
	}
	return v.Init
}

func singleDiag(t *testing.T, bag *diag.Bag) diag.Diagnostic {
	t.Helper()
	if bag.Len() != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %s", bag.Len(), diagnosticsSummary(bag))
	}
	return bag.Items()[0]
}
