package ast

import (
	"fmt"
	"io"
	"strings"
)

// ExprString renders an expression in a fully parenthesized form, so the
// grouping chosen by the parser is visible: `a + b * c` becomes `(a + (b * c))`.
func ExprString(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Ident:
		sb.WriteString(n.Name)
	case *Literal:
		sb.WriteString(n.Raw)
	case *Grouping:
		sb.WriteByte('(')
		writeExpr(sb, n.X)
		sb.WriteByte(')')
	case *Binary:
		sb.WriteByte('(')
		writeExpr(sb, n.X)
		sb.WriteString(" " + n.Op.Spelling() + " ")
		writeExpr(sb, n.Y)
		sb.WriteByte(')')
	case *Unary:
		sb.WriteByte('(')
		sb.WriteString(n.Op.Spelling())
		writeExpr(sb, n.X)
		sb.WriteByte(')')
	case *Assign:
		sb.WriteByte('(')
		writeExpr(sb, n.Target)
		sb.WriteString(" " + n.Op.Spelling() + " ")
		writeExpr(sb, n.Value)
		sb.WriteByte(')')
	case *Conditional:
		sb.WriteByte('(')
		writeExpr(sb, n.Then)
		sb.WriteString(" if ")
		writeExpr(sb, n.Cond)
		sb.WriteString(" else ")
		writeExpr(sb, n.Else)
		sb.WriteByte(')')
	case *Cast:
		sb.WriteByte('(')
		writeExpr(sb, n.X)
		sb.WriteString(" as ")
		sb.WriteString(n.Type.String())
		sb.WriteByte(')')
	case *ArrayAccess:
		writeExpr(sb, n.X)
		sb.WriteByte('[')
		writeExpr(sb, n.Index)
		sb.WriteByte(']')
	case *FieldAccess:
		writeExpr(sb, n.X)
		sb.WriteByte('.')
		sb.WriteString(n.Name)
	case *FnCall:
		writeExpr(sb, n.Callee)
		sb.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, a)
		}
		sb.WriteByte(')')
	case *TryExpr:
		writeExpr(sb, n.X)
		sb.WriteByte('?')
	default:
		fmt.Fprintf(sb, "<%T>", e)
	}
}

// Fprint writes an indented outline of the program, one node per line.
func Fprint(w io.Writer, p *Program) error {
	pr := &printer{w: w}
	for _, d := range p.Decls {
		pr.decl(d)
	}
	return pr.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) nested(fn func()) {
	p.indent++
	fn()
	p.indent--
}

func typeString(t Type) string {
	if t == nil {
		return "_"
	}
	return t.String()
}

func (p *printer) decl(d Decl) {
	switch n := d.(type) {
	case *FnDecl:
		p.fn(n)
	case *VarDecl:
		mut := ""
		if n.Mutable {
			mut = "mut "
		}
		p.line("VarDecl %s%s: %s", mut, n.Name, typeString(n.Type))
		if n.Init != nil {
			p.nested(func() { p.line("= %s", ExprString(n.Init)) })
		}
	case *ConstDecl:
		p.line("ConstDecl %s: %s", n.Name, typeString(n.Type))
		p.nested(func() { p.line("= %s", ExprString(n.Init)) })
	case *FieldDecl:
		p.field(n)
	case *StructDecl:
		p.line("StructDecl %s", n.Name)
		p.nested(func() {
			for _, f := range n.Fields {
				p.field(f)
			}
		})
	case *ClassDecl:
		if n.Parent != "" {
			p.line("ClassDecl %s : %s", n.Name, n.Parent)
		} else {
			p.line("ClassDecl %s", n.Name)
		}
		p.nested(func() {
			for _, m := range n.Members {
				p.decl(m)
			}
		})
	case *TraitDecl:
		p.line("TraitDecl %s", n.Name)
		p.nested(func() {
			for _, m := range n.Methods {
				p.fn(m)
			}
		})
	case *WithDecl:
		p.line("WithDecl %s for %s", n.Trait, n.Target)
		p.nested(func() {
			for _, m := range n.Methods {
				p.fn(m)
			}
		})
	default:
		p.line("<%T>", d)
	}
}

func (p *printer) field(f *FieldDecl) {
	if f.Init != nil {
		p.line("FieldDecl %s: %s = %s", f.Name, f.Type, ExprString(f.Init))
		return
	}
	p.line("FieldDecl %s: %s", f.Name, f.Type)
}

func (p *printer) fn(f *FnDecl) {
	var sb strings.Builder
	for _, d := range f.Decorators {
		sb.WriteString("@" + d + " ")
	}
	if f.Pub {
		sb.WriteString("pub ")
	}
	if f.Modifies {
		sb.WriteString("modifies ")
	}
	sb.WriteString(f.Name)
	sb.WriteByte('(')
	for i, prm := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(prm.Name + ": " + prm.Type.String())
	}
	sb.WriteByte(')')
	if f.Return != nil {
		sb.WriteString(" -> " + f.Return.String())
	}
	p.line("FnDecl %s", sb.String())
	if f.Body != nil {
		p.nested(func() { p.stmts(f.Body.Stmts) })
	}
}

func (p *printer) stmts(list []Stmt) {
	for _, s := range list {
		p.stmt(s)
	}
}

func (p *printer) block(label string, b *BlockStmt) {
	p.line("%s", label)
	p.nested(func() { p.stmts(b.Stmts) })
}

func (p *printer) stmt(s Stmt) {
	switch n := s.(type) {
	case *ExprStmt:
		p.line("ExprStmt %s", ExprString(n.X))
	case *DeclStmt:
		p.decl(n.Decl)
	case *ReturnStmt:
		if n.Value != nil {
			p.line("Return %s", ExprString(n.Value))
		} else {
			p.line("Return")
		}
	case *BreakStmt:
		p.line("Break")
	case *ContinueStmt:
		p.line("Continue")
	case *IfStmt:
		p.block("If "+ExprString(n.Cond), n.Then)
		switch e := n.Else.(type) {
		case *IfStmt:
			p.line("Else")
			p.nested(func() { p.stmt(e) })
		case *BlockStmt:
			p.block("Else", e)
		}
	case *WhileStmt:
		p.block("While "+ExprString(n.Cond), n.Body)
	case *IteratorForStmt:
		p.block(fmt.Sprintf("For %s in %s", n.Binder, ExprString(n.Collection)), n.Body)
	case *RangeForStmt:
		op := ".."
		if n.Inclusive {
			op = "..="
		}
		p.block(fmt.Sprintf("For %s in %s%s%s", n.Binder, ExprString(n.Start), op, ExprString(n.End)), n.Body)
	case *LoopStmt:
		p.block("Loop", n.Body)
	case *MatchStmt:
		p.line("Match %s", ExprString(n.Scrutinee))
		p.nested(func() {
			for _, c := range n.Clauses {
				p.line("%s => %s", ExprString(c.Pattern), ExprString(c.Body))
			}
		})
	case *BlockStmt:
		p.block("Block", n)
	default:
		p.line("<%T>", s)
	}
}
