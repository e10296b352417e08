package parser_test

import (
	"testing"

	"aera/internal/ast"
	"aera/internal/diag"
)

func declType(t *testing.T, typ string) ast.Type {
	t.Helper()
	prog := mustParse(t, "let v: "+typ+";")
	return prog.Decls[0].(*ast.VarDecl).Type
}

func TestTypes(t *testing.T) {
	tests := []struct {
		input string
		want  string
		node  any
	}{
		{"int32", "int32", &ast.PrimitiveType{}},
		{"bool", "bool", &ast.PrimitiveType{}},
		{"Point", "Point", &ast.UserType{}},
		{"Pair!<K, V>", "Pair!<K, V>", &ast.GenericType{}},
		{"arr!<int32>", "arr!<int32>", &ast.DynamicArrayType{}},
		{"map!<string, float64>", "map!<string, float64>", &ast.MapType{}},
		{"set!<char>", "set!<char>", &ast.SetType{}},
		{"opt!<Point>", "opt!<Point>", &ast.OptionalType{}},
		{"res!<int32, string>", "res!<int32, string>", &ast.ResultType{}},
		{"int32[3]", "int32[3]", &ast.StaticArrayType{}},
		{"uint8[4][4]", "uint8[4][4]", &ast.StaticArrayType{}},
		{"char[2][]", "char[2][]", &ast.StaticArrayType{}},
		{"string[][]", "string[][]", &ast.StaticArrayType{}},
		// вложенные generic-и закрываются одним токеном '>>'
		{"opt!<arr!<int32>>", "opt!<arr!<int32>>", &ast.OptionalType{}},
		{"map!<string, arr!<int32>>", "map!<string, arr!<int32>>", &ast.MapType{}},
		{"Box!<opt!<arr!<uint8>>>", "Box!<opt!<arr!<uint8>>>", &ast.GenericType{}},
		{"arr!<opt!<int32>>[2]", "arr!<opt!<int32>>[2]", &ast.StaticArrayType{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ := declType(t, tt.input)
			if got := typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if gotT, wantT := typeName(typ), typeName(tt.node); gotT != wantT {
				t.Errorf("node = %s, want %s", gotT, wantT)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *ast.PrimitiveType:
		return "primitive"
	case *ast.GenericType:
		return "generic"
	case *ast.UserType:
		return "user"
	case *ast.DynamicArrayType:
		return "arr"
	case *ast.MapType:
		return "map"
	case *ast.SetType:
		return "set"
	case *ast.OptionalType:
		return "opt"
	case *ast.ResultType:
		return "res"
	case *ast.StaticArrayType:
		return "static"
	default:
		return "?"
	}
}

func TestStaticArrayDims(t *testing.T) {
	arr := declType(t, "int32[3][]").(*ast.StaticArrayType)
	if len(arr.Dims) != 2 || arr.Dims[0] != 3 || arr.Dims[1] != ast.Unsized {
		t.Errorf("dims = %v, want [3 -1]", arr.Dims)
	}
	if arr.Elem.String() != "int32" {
		t.Errorf("elem = %s", arr.Elem)
	}
}

func TestTypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"sized after unsized", "let v: int32[][3];", diag.SynSizedAfterUnsized},
		{"bad dimension", "let v: int32[n];", diag.SynBadArrayDimension},
		{"unclosed dimension", "let v: int32[3;", diag.SynExpectRightBracket},
		{"builtin arity one", "let v: arr!<int32, bool>;", diag.SynBuiltinGenericArity},
		{"builtin arity two", "let v: map!<string>;", diag.SynBuiltinGenericArity},
		{"primitive is not generic", "let v: int32!<T>;", diag.SynPrimitiveNotGeneric},
		{"missing open", "let v: Box!int32;", diag.SynExpectGenericOpen},
		{"missing close", "let v: Box!<int32;", diag.SynExpectGenericClose},
		{"missing type", "let v: 5;", diag.SynExpectType},
		{"missing param type", "fn f(a: ) { }", diag.SynExpectType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseSource(t, tt.input)
			if d := singleDiag(t, bag); d.Code != tt.code {
				t.Errorf("code = %s (%s), want %s", d.Code.ID(), d.Message, tt.code.ID())
			}
		})
	}
}

// '>>' после generic-а в касте: левая половина закрывает тип,
// правая остаётся выражению как сравнение.
func TestGenericCloseInsideExpression(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v as opt!<int32>>w", "((v as opt!<int32>) > w)"},
		{"v as arr!<opt!<int32>>>w", "((v as arr!<opt!<int32>>) > w)"},
		{"v as opt!<int32> > w", "((v as opt!<int32>) > w)"},
		{"a >> b", "(a >> b)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ast.ExprString(initExpr(t, tt.input)); got != tt.want {
				t.Errorf("parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenericCloseDoesNotLeakIntoLaterTypes(t *testing.T) {
	src := "fn f() {\n" +
		" let a = v as opt!<int32>>w; let m: map!<int32, int32> = z;\n" +
		" let b = u as arr!<opt!<int32>>>w; let r: res!<arr!<int32>, string> = q;\n" +
		"}\n" +
		"let g: map!<string, opt!<int32>>;"
	prog := mustParse(t, src)
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(prog.Decls))
	}
	body := fnBody(t, &ast.Program{Decls: prog.Decls[:1]})
	if len(body) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(body))
	}
	wantTypes := map[int]string{1: "map!<int32, int32>", 3: "res!<arr!<int32>, string>"}
	for i, want := range wantTypes {
		ds, ok := body[i].(*ast.DeclStmt)
		if !ok {
			t.Fatalf("stmt %d: expected *ast.DeclStmt, got %T", i, body[i])
		}
		v := ds.Decl.(*ast.VarDecl)
		if got := v.Type.String(); got != want {
			t.Errorf("stmt %d type = %s, want %s", i, got, want)
		}
	}
	if got := prog.Decls[1].(*ast.VarDecl).Type.String(); got != "map!<string, opt!<int32>>" {
		t.Errorf("trailing decl type = %s", got)
	}
}
