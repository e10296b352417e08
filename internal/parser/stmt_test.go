package parser_test

import (
	"testing"

	"aera/internal/ast"
	"aera/internal/diag"
)

func TestForStatements(t *testing.T) {
	stmts := fnBody(t, mustParse(t, `fn f() {
	for i in 0..10 { }
	for j in 1..=n { total += j; }
	for x in items { print(x); }
}`))
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}

	r1, ok := stmts[0].(*ast.RangeForStmt)
	if !ok {
		t.Fatalf("stmt 0: expected *ast.RangeForStmt, got %T", stmts[0])
	}
	if r1.Binder != "i" || r1.Inclusive || ast.ExprString(r1.Start) != "0" || ast.ExprString(r1.End) != "10" {
		t.Errorf("range 0 = %s in %s..%s inclusive:%v", r1.Binder, ast.ExprString(r1.Start), ast.ExprString(r1.End), r1.Inclusive)
	}

	r2, ok := stmts[1].(*ast.RangeForStmt)
	if !ok {
		t.Fatalf("stmt 1: expected *ast.RangeForStmt, got %T", stmts[1])
	}
	if !r2.Inclusive || len(r2.Body.Stmts) != 1 {
		t.Errorf("range 1 inclusive:%v body:%d", r2.Inclusive, len(r2.Body.Stmts))
	}

	it, ok := stmts[2].(*ast.IteratorForStmt)
	if !ok {
		t.Fatalf("stmt 2: expected *ast.IteratorForStmt, got %T", stmts[2])
	}
	if it.Binder != "x" || ast.ExprString(it.Collection) != "items" {
		t.Errorf("iterator = %s in %s", it.Binder, ast.ExprString(it.Collection))
	}
}

func TestForMissingIn(t *testing.T) {
	_, bag := parseSource(t, "fn f() { for i 0..10 { } }")
	if d := singleDiag(t, bag); d.Code != diag.SynForMissingIn {
		t.Errorf("code = %s, want %s", d.Code.ID(), diag.SynForMissingIn.ID())
	}
}

func TestIfElseChain(t *testing.T) {
	stmts := fnBody(t, mustParse(t, `fn sign(x: int32) -> int32 {
	if x > 0 { return 1; } else if x < 0 { return -1; } else { return 0; }
}`))
	first, ok := stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", stmts[0])
	}
	if ast.ExprString(first.Cond) != "(x > 0)" {
		t.Errorf("cond = %s", ast.ExprString(first.Cond))
	}
	second, ok := first.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("else: expected *ast.IfStmt, got %T", first.Else)
	}
	last, ok := second.Else.(*ast.BlockStmt)
	if !ok || len(last.Stmts) != 1 {
		t.Fatalf("final else: expected block, got %T", second.Else)
	}
}

func TestIfWithoutElse(t *testing.T) {
	stmts := fnBody(t, mustParse(t, "fn f() { if ok { go(); } }"))
	if st := stmts[0].(*ast.IfStmt); st.Else != nil {
		t.Errorf("else = %T, want nil", st.Else)
	}
}

func TestWhileLoopAndJumps(t *testing.T) {
	stmts := fnBody(t, mustParse(t, `fn f() {
	while i < 10 { i += 1; continue; }
	loop { break }
}`))
	w, ok := stmts[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected *ast.WhileStmt, got %T", stmts[0])
	}
	if _, ok := w.Body.Stmts[1].(*ast.ContinueStmt); !ok {
		t.Errorf("expected continue, got %T", w.Body.Stmts[1])
	}
	l, ok := stmts[1].(*ast.LoopStmt)
	if !ok {
		t.Fatalf("expected *ast.LoopStmt, got %T", stmts[1])
	}
	if _, ok := l.Body.Stmts[0].(*ast.BreakStmt); !ok {
		t.Errorf("expected break, got %T", l.Body.Stmts[0])
	}
}

func TestMatchStatement(t *testing.T) {
	stmts := fnBody(t, mustParse(t, `fn f() {
	match code { 0 => ok(), 1 => warn(), _ => fail(code), }
	match flag { true => 1, false => 0 }
}`))
	m, ok := stmts[0].(*ast.MatchStmt)
	if !ok {
		t.Fatalf("expected *ast.MatchStmt, got %T", stmts[0])
	}
	if ast.ExprString(m.Scrutinee) != "code" || len(m.Clauses) != 3 {
		t.Fatalf("match %s with %d clauses", ast.ExprString(m.Scrutinee), len(m.Clauses))
	}
	if got := ast.ExprString(m.Clauses[2].Pattern) + " => " + ast.ExprString(m.Clauses[2].Body); got != "_ => fail(code)" {
		t.Errorf("clause 2 = %s", got)
	}
	if m2 := stmts[1].(*ast.MatchStmt); len(m2.Clauses) != 2 {
		t.Errorf("second match has %d clauses, want 2", len(m2.Clauses))
	}
}

func TestMatchMissingArrow(t *testing.T) {
	_, bag := parseSource(t, "fn f() { match x { 1 ok() } }")
	if d := singleDiag(t, bag); d.Code != diag.SynExpectFatArrow {
		t.Errorf("code = %s, want %s", d.Code.ID(), diag.SynExpectFatArrow.ID())
	}
}

func TestNestedDeclarationsAndBlocks(t *testing.T) {
	stmts := fnBody(t, mustParse(t, `fn f() {
	let mut x: int32 = 1;
	const y = 2;
	{ x = y; }
	fn inner() { }
	return
}`))
	if len(stmts) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(stmts))
	}
	if ds, ok := stmts[0].(*ast.DeclStmt); !ok || !ds.Decl.(*ast.VarDecl).Mutable {
		t.Errorf("stmt 0 = %T", stmts[0])
	}
	if _, ok := stmts[1].(*ast.DeclStmt).Decl.(*ast.ConstDecl); !ok {
		t.Errorf("stmt 1 = %T", stmts[1])
	}
	if _, ok := stmts[2].(*ast.BlockStmt); !ok {
		t.Errorf("stmt 2 = %T", stmts[2])
	}
	if _, ok := stmts[3].(*ast.DeclStmt).Decl.(*ast.FnDecl); !ok {
		t.Errorf("stmt 3 = %T", stmts[3])
	}
	if ret, ok := stmts[4].(*ast.ReturnStmt); !ok || ret.Value != nil {
		t.Errorf("stmt 4 = %#v", stmts[4])
	}
}

func TestStatementTerminators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"semicolons", "fn f() { a(); b(); }", true},
		{"last statement before brace", "fn f() { a(); b() }", true},
		{"empty statements", "fn f() { ;; a();; }", true},
		{"missing terminator", "fn f() { a() b(); }", false},
		{"return missing terminator", "fn f() { return 1 2; }", false},
		{"top-level newline", "let a = 1\nlet b = 2\n", true},
		{"top-level semicolon", "let a = 1; let b = 2;", true},
		{"top-level missing terminator", "let a = 1 let b = 2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseSource(t, tt.input)
			if tt.ok {
				if bag.Len() != 0 {
					t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
				}
				return
			}
			if d := singleDiag(t, bag); d.Code != diag.SynExpectSemicolon {
				t.Errorf("code = %s, want %s", d.Code.ID(), diag.SynExpectSemicolon.ID())
			}
		})
	}
}
