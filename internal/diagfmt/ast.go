package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"aera/internal/ast"
)

// ASTNodeOutput: общий вид узла для JSON и для дерева.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Line     uint32          `json:"line"`
	Col      uint32          `json:"col"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty печатает дерево программы с псевдографикой:
//
//	File main.aera
//	├─ FnDecl main (1:1)
//	│  └─ Block (1:11)
//	└─ VarDecl x (3:1)
func FormatASTPretty(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	root := BuildASTOutput(prog)
	if _, err := fmt.Fprintf(w, "File %s\n", prog.Path); err != nil {
		return err
	}
	return writeChildren(w, root.Children, "")
}

func writeChildren(w io.Writer, children []ASTNodeOutput, prefix string) error {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(child)); err != nil {
			return err
		}
		if err := writeChildren(w, child.Children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(n ASTNodeOutput) string {
	var sb strings.Builder
	sb.WriteString(n.Type)
	if n.Text != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Text)
	}
	fmt.Fprintf(&sb, " (%d:%d)", n.Line, n.Col)
	return sb.String()
}

// FormatASTJSON выводит программу как JSON-дерево ASTNodeOutput.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(prog))
}

// BuildASTOutput converts the program into the generic node shape.
func BuildASTOutput(prog *ast.Program) ASTNodeOutput {
	root := ASTNodeOutput{Type: "File", Text: prog.Path, Line: 1, Col: 1}
	for _, d := range prog.Decls {
		root.Children = append(root.Children, declNode(d))
	}
	return root
}

func at(n ast.Node, typ, text string) ASTNodeOutput {
	loc := n.Pos()
	return ASTNodeOutput{Type: typ, Text: text, Line: loc.Line, Col: loc.Col}
}

func typeText(t ast.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func declNode(d ast.Decl) ASTNodeOutput {
	switch d := d.(type) {
	case *ast.FnDecl:
		return fnNode(d)
	case *ast.VarDecl:
		n := at(d, "VarDecl", d.Name)
		n.Fields = map[string]any{"mutable": d.Mutable}
		if d.Type != nil {
			n.Fields["type"] = d.Type.String()
		}
		if d.Init != nil {
			n.Children = append(n.Children, exprNode(d.Init))
		}
		return n
	case *ast.ConstDecl:
		n := at(d, "ConstDecl", d.Name)
		if d.Type != nil {
			n.Fields = map[string]any{"type": d.Type.String()}
		}
		n.Children = append(n.Children, exprNode(d.Init))
		return n
	case *ast.FieldDecl:
		n := at(d, "FieldDecl", d.Name)
		n.Fields = map[string]any{"type": typeText(d.Type)}
		if d.Init != nil {
			n.Children = append(n.Children, exprNode(d.Init))
		}
		return n
	case *ast.StructDecl:
		n := at(d, "StructDecl", d.Name)
		for _, f := range d.Fields {
			n.Children = append(n.Children, declNode(f))
		}
		return n
	case *ast.ClassDecl:
		n := at(d, "ClassDecl", d.Name)
		if d.Parent != "" {
			n.Fields = map[string]any{"parent": d.Parent}
		}
		for _, m := range d.Members {
			n.Children = append(n.Children, declNode(m))
		}
		return n
	case *ast.TraitDecl:
		n := at(d, "TraitDecl", d.Name)
		for _, m := range d.Methods {
			n.Children = append(n.Children, fnNode(m))
		}
		return n
	case *ast.WithDecl:
		n := at(d, "WithDecl", d.Trait+" for "+d.Target)
		n.Fields = map[string]any{"trait": d.Trait, "target": d.Target}
		for _, m := range d.Methods {
			n.Children = append(n.Children, fnNode(m))
		}
		return n
	}
	return ASTNodeOutput{Type: fmt.Sprintf("%T", d)}
}

func fnNode(fn *ast.FnDecl) ASTNodeOutput {
	n := at(fn, "FnDecl", fn.Name)
	fields := map[string]any{}
	if len(fn.Decorators) > 0 {
		fields["decorators"] = fn.Decorators
	}
	if fn.Pub {
		fields["pub"] = true
	}
	if fn.Modifies {
		fields["modifies"] = true
	}
	if fn.Return != nil {
		fields["return"] = fn.Return.String()
	}
	if len(fields) > 0 {
		n.Fields = fields
	}
	for _, p := range fn.Params {
		n.Children = append(n.Children, at(p, "Param", p.Name+": "+typeText(p.Type)))
	}
	if fn.Body != nil {
		n.Children = append(n.Children, stmtNode(fn.Body))
	}
	return n
}

func stmtNode(s ast.Stmt) ASTNodeOutput {
	switch s := s.(type) {
	case *ast.BlockStmt:
		n := at(s, "Block", "")
		for _, st := range s.Stmts {
			n.Children = append(n.Children, stmtNode(st))
		}
		return n
	case *ast.ExprStmt:
		n := at(s, "ExprStmt", "")
		n.Children = []ASTNodeOutput{exprNode(s.X)}
		return n
	case *ast.DeclStmt:
		return declNode(s.Decl)
	case *ast.ReturnStmt:
		n := at(s, "Return", "")
		if s.Value != nil {
			n.Children = []ASTNodeOutput{exprNode(s.Value)}
		}
		return n
	case *ast.BreakStmt:
		return at(s, "Break", "")
	case *ast.ContinueStmt:
		return at(s, "Continue", "")
	case *ast.IfStmt:
		n := at(s, "If", "")
		n.Children = []ASTNodeOutput{exprNode(s.Cond), stmtNode(s.Then)}
		if s.Else != nil {
			n.Children = append(n.Children, stmtNode(s.Else))
		}
		return n
	case *ast.WhileStmt:
		n := at(s, "While", "")
		n.Children = []ASTNodeOutput{exprNode(s.Cond), stmtNode(s.Body)}
		return n
	case *ast.IteratorForStmt:
		n := at(s, "For", s.Binder)
		n.Children = []ASTNodeOutput{exprNode(s.Collection), stmtNode(s.Body)}
		return n
	case *ast.RangeForStmt:
		n := at(s, "RangeFor", s.Binder)
		n.Fields = map[string]any{"inclusive": s.Inclusive}
		n.Children = []ASTNodeOutput{exprNode(s.Start), exprNode(s.End), stmtNode(s.Body)}
		return n
	case *ast.LoopStmt:
		n := at(s, "Loop", "")
		n.Children = []ASTNodeOutput{stmtNode(s.Body)}
		return n
	case *ast.MatchStmt:
		n := at(s, "Match", "")
		n.Children = []ASTNodeOutput{exprNode(s.Scrutinee)}
		for _, c := range s.Clauses {
			cn := at(c, "Clause", "")
			cn.Children = []ASTNodeOutput{exprNode(c.Pattern), exprNode(c.Body)}
			n.Children = append(n.Children, cn)
		}
		return n
	}
	return ASTNodeOutput{Type: fmt.Sprintf("%T", s)}
}

func exprNode(e ast.Expr) ASTNodeOutput {
	switch e := e.(type) {
	case *ast.Assign:
		n := at(e, "Assign", e.Op.Spelling())
		n.Children = []ASTNodeOutput{exprNode(e.Target), exprNode(e.Value)}
		return n
	case *ast.Conditional:
		n := at(e, "Conditional", "")
		n.Children = []ASTNodeOutput{exprNode(e.Then), exprNode(e.Cond), exprNode(e.Else)}
		return n
	case *ast.Binary:
		n := at(e, "Binary", e.Op.Spelling())
		n.Children = []ASTNodeOutput{exprNode(e.X), exprNode(e.Y)}
		return n
	case *ast.Unary:
		n := at(e, "Unary", e.Op.Spelling())
		n.Children = []ASTNodeOutput{exprNode(e.X)}
		return n
	case *ast.Cast:
		n := at(e, "Cast", typeText(e.Type))
		n.Children = []ASTNodeOutput{exprNode(e.X)}
		return n
	case *ast.ArrayAccess:
		n := at(e, "Index", "")
		n.Children = []ASTNodeOutput{exprNode(e.X), exprNode(e.Index)}
		return n
	case *ast.FnCall:
		n := at(e, "Call", "")
		n.Children = []ASTNodeOutput{exprNode(e.Callee)}
		for _, a := range e.Args {
			n.Children = append(n.Children, exprNode(a))
		}
		return n
	case *ast.FieldAccess:
		n := at(e, "Field", e.Name)
		n.Children = []ASTNodeOutput{exprNode(e.X)}
		return n
	case *ast.Grouping:
		n := at(e, "Grouping", "")
		n.Children = []ASTNodeOutput{exprNode(e.X)}
		return n
	case *ast.TryExpr:
		n := at(e, "Try", "")
		n.Children = []ASTNodeOutput{exprNode(e.X)}
		return n
	case *ast.Literal:
		n := at(e, "Literal", e.Raw)
		n.Fields = map[string]any{"kind": e.Kind.String()}
		if e.Suffix != "" {
			n.Fields["suffix"] = e.Suffix
		}
		return n
	case *ast.Ident:
		return at(e, "Ident", e.Name)
	}
	return ASTNodeOutput{Type: fmt.Sprintf("%T", e)}
}
