// Package ast defines the syntax tree produced by the parser.
//
// The tree is a strict ownership tree: every node exclusively owns its
// children and nothing points back up. Each syntactic category is a closed
// set of pointer types behind a sealed interface (Decl, Expr, Stmt, Type);
// consumers switch over the concrete types.
//
// A nil child means "optional and absent" (no type annotation, no else
// branch). The parser never builds a node with a missing required child: a
// subtree that failed to parse is dropped as a whole.
package ast

import (
	"aera/internal/source"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() source.Location // position of the first token belonging to the node
	aNode()
}

// Decl is a declaration: top-level item or nested declaration statement.
type Decl interface {
	Node
	aDecl()
}

// Expr is an expression node.
type Expr interface {
	Node
	// IsLvalue reports whether the expression may appear on the left of an assignment.
	IsLvalue() bool
	aExpr()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	aStmt()
}

// Type is a type expression node.
type Type interface {
	Node
	String() string
	aType()
}

// Base carries the location shared by every node.
type Base struct {
	Loc source.Location
}

// At returns a Base positioned at loc.
func At(loc source.Location) Base { return Base{Loc: loc} }

func (b *Base) Pos() source.Location { return b.Loc }
func (*Base) aNode()                 {}

// Program is the forest of top-level declarations of one file.
type Program struct {
	Path  string
	Decls []Decl
}
