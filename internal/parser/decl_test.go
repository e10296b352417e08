package parser_test

import (
	"testing"

	"aera/internal/ast"
	"aera/internal/diag"
)

func TestClassMemberDisambiguation(t *testing.T) {
	prog := mustParse(t, "class C { x: int32 fn f() { } }")
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Decls))
	}
	class, ok := prog.Decls[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", prog.Decls[0])
	}
	if class.Name != "C" || class.Parent != "" {
		t.Errorf("class = %q parent %q", class.Name, class.Parent)
	}
	if len(class.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(class.Members))
	}
	field, ok := class.Members[0].(*ast.FieldDecl)
	if !ok {
		t.Fatalf("member 0: expected *ast.FieldDecl, got %T", class.Members[0])
	}
	if field.Name != "x" || field.Type.String() != "int32" || field.Init != nil {
		t.Errorf("field = %s: %s", field.Name, field.Type)
	}
	method, ok := class.Members[1].(*ast.FnDecl)
	if !ok {
		t.Fatalf("member 1: expected *ast.FnDecl, got %T", class.Members[1])
	}
	if method.Name != "f" || len(method.Params) != 0 || method.Body == nil {
		t.Errorf("method = %+v", method)
	}
}

func TestClassWithParentAndModifiers(t *testing.T) {
	prog := mustParse(t, `class Dog : Animal {
	name: string = "rex",
	age: uint8;
	pub fn bark() -> string { return name; }
	modifies fn grow() { age += 1; }
	pub modifies fn rename(n: string) { name = n; }
}`)
	class := prog.Decls[0].(*ast.ClassDecl)
	if class.Parent != "Animal" {
		t.Errorf("parent = %q, want Animal", class.Parent)
	}
	if len(class.Members) != 5 {
		t.Fatalf("expected 5 members, got %d", len(class.Members))
	}
	name := class.Members[0].(*ast.FieldDecl)
	if lit, ok := name.Init.(*ast.Literal); !ok || lit.Value != "rex" {
		t.Errorf("name initializer = %#v", name.Init)
	}
	bark := class.Members[2].(*ast.FnDecl)
	if !bark.Pub || bark.Modifies || bark.Return.String() != "string" {
		t.Errorf("bark = pub:%v modifies:%v", bark.Pub, bark.Modifies)
	}
	grow := class.Members[3].(*ast.FnDecl)
	if grow.Pub || !grow.Modifies {
		t.Errorf("grow = pub:%v modifies:%v", grow.Pub, grow.Modifies)
	}
	rename := class.Members[4].(*ast.FnDecl)
	if !rename.Pub || !rename.Modifies || len(rename.Params) != 1 {
		t.Errorf("rename = %+v", rename)
	}
}

func TestFnDecl(t *testing.T) {
	prog := mustParse(t, "@inline @test pub fn add(a: int32, b: int32) -> int32 { return a + b; }\n")
	fn := prog.Decls[0].(*ast.FnDecl)
	if fn.Name != "add" || !fn.Pub || fn.Modifies {
		t.Errorf("fn = %s pub:%v modifies:%v", fn.Name, fn.Pub, fn.Modifies)
	}
	if len(fn.Decorators) != 2 || fn.Decorators[0] != "inline" || fn.Decorators[1] != "test" {
		t.Errorf("decorators = %v", fn.Decorators)
	}
	if len(fn.Params) != 2 || fn.Params[1].Name != "b" || fn.Params[1].Type.String() != "int32" {
		t.Errorf("params = %+v", fn.Params)
	}
	if fn.Return == nil || fn.Return.String() != "int32" {
		t.Errorf("return = %v", fn.Return)
	}
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if got := ast.ExprString(ret.Value); got != "(a + b)" {
		t.Errorf("return value = %s", got)
	}
}

func TestVarAndConstDecl(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantType string // "": без типа
		wantInit bool
		wantMut  bool
	}{
		{"let with type and value", "let x: int32 = 42;", "x", "int32", true, false},
		{"let with type only", "let x: int32", "x", "int32", false, false},
		{"let with value only", "let x = 42", "x", "", true, false},
		{"mutable let", "let mut x: float64 = 1.5;", "x", "float64", true, true},
		{"mutable let with value only", "let mut counter = 0\n", "counter", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, tt.input)
			v, ok := prog.Decls[0].(*ast.VarDecl)
			if !ok {
				t.Fatalf("expected *ast.VarDecl, got %T", prog.Decls[0])
			}
			if v.Name != tt.wantName || v.Mutable != tt.wantMut {
				t.Errorf("let %s mut:%v", v.Name, v.Mutable)
			}
			gotType := ""
			if v.Type != nil {
				gotType = v.Type.String()
			}
			if gotType != tt.wantType {
				t.Errorf("type = %q, want %q", gotType, tt.wantType)
			}
			if (v.Init != nil) != tt.wantInit {
				t.Errorf("init present = %v, want %v", v.Init != nil, tt.wantInit)
			}
		})
	}

	prog := mustParse(t, "const LIMIT: uint64 = 1 << 10\n")
	c := prog.Decls[0].(*ast.ConstDecl)
	if c.Name != "LIMIT" || c.Type.String() != "uint64" || ast.ExprString(c.Init) != "(1 << 10)" {
		t.Errorf("const = %s: %v = %s", c.Name, c.Type, ast.ExprString(c.Init))
	}
}

// Newline после `none`, `self` или `?` завершает объявление.
func TestNewlineAfterExpressionFinalTokens(t *testing.T) {
	prog := mustParse(t, "let x = none\nlet y = self\nlet z = f()?\nlet w = 1\n")
	if len(prog.Decls) != 4 {
		t.Fatalf("expected 4 declarations, got %d", len(prog.Decls))
	}
	want := []string{"none", "self", "f()?", "1"}
	for i, w := range want {
		if got := ast.ExprString(prog.Decls[i].(*ast.VarDecl).Init); got != w {
			t.Errorf("decl %d init = %s, want %s", i, got, w)
		}
	}
}

func TestConstRequiresInitializer(t *testing.T) {
	_, bag := parseSource(t, "const N: int32\n")
	d := singleDiag(t, bag)
	if d.Code != diag.SynExpectAssign {
		t.Errorf("code = %s, want %s", d.Code.ID(), diag.SynExpectAssign.ID())
	}
	if d.Note != "constants must be initialized" {
		t.Errorf("note = %q", d.Note)
	}
}

func TestStructDecl(t *testing.T) {
	prog := mustParse(t, "struct Point { x: int32, y: int32 = 0; z: float32 }")
	s := prog.Decls[0].(*ast.StructDecl)
	if s.Name != "Point" || len(s.Fields) != 3 {
		t.Fatalf("struct %s with %d fields", s.Name, len(s.Fields))
	}
	if s.Fields[1].Init == nil || s.Fields[2].Type.String() != "float32" {
		t.Errorf("fields = %+v", s.Fields)
	}
}

func TestTraitAndWith(t *testing.T) {
	prog := mustParse(t, `trait Show { fn show() -> string; fn debug() { } }
with Show for Point { pub fn show() -> string { return "p"; } }`)
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(prog.Decls))
	}
	trait := prog.Decls[0].(*ast.TraitDecl)
	if trait.Name != "Show" || len(trait.Methods) != 2 {
		t.Fatalf("trait %s with %d methods", trait.Name, len(trait.Methods))
	}
	if trait.Methods[0].Body != nil {
		t.Errorf("signature must have no body")
	}
	if trait.Methods[1].Body == nil {
		t.Errorf("default method must keep its body")
	}
	with := prog.Decls[1].(*ast.WithDecl)
	if with.Trait != "Show" || with.Target != "Point" || len(with.Methods) != 1 {
		t.Errorf("with = %+v", with)
	}
}

func TestWithMethodsNeedBodies(t *testing.T) {
	prog, bag := parseSource(t, "with Show for Point { fn show() -> string; }\nlet after = 1\n")
	if len(prog.Decls) != 1 {
		t.Errorf("expected the declaration after the broken block to survive, got %d", len(prog.Decls))
	}
	if d := singleDiag(t, bag); d.Code != diag.SynExpectLBrace {
		t.Errorf("code = %s, want %s", d.Code.ID(), diag.SynExpectLBrace.ID())
	}
}

func TestReservedKeywordsHaveNoGrammar(t *testing.T) {
	for _, kw := range []string{"bind", "import", "enum", "alias"} {
		t.Run(kw, func(t *testing.T) {
			prog, bag := parseSource(t, kw+" foo\nlet y = 1\n")
			d := singleDiag(t, bag)
			if d.Code != diag.SynUnexpectedTopLevel || d.Message != "couldn't parse declaration" {
				t.Errorf("diag = %s %q", d.Code.ID(), d.Message)
			}
			if len(prog.Decls) != 1 || prog.Decls[0].(*ast.VarDecl).Name != "y" {
				t.Errorf("declarations after the error were lost: %+v", prog.Decls)
			}
		})
	}
}
