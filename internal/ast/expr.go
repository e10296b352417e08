package ast

import (
	"aera/internal/token"
)

// Assign: target op value, op is '=' or a compound assignment.
type Assign struct {
	Base
	Target Expr
	Op     token.Kind
	Value  Expr
}

// Conditional: then if cond else otherwise
type Conditional struct {
	Base
	Then Expr
	Cond Expr
	Else Expr
}

type Binary struct {
	Base
	Op   token.Kind
	X, Y Expr
}

// Unary is one of ! - ~ & applied to X.
type Unary struct {
	Base
	Op token.Kind
	X  Expr
}

// Cast: x as Type
type Cast struct {
	Base
	X    Expr
	Type Type
}

// ArrayAccess: x[index]
type ArrayAccess struct {
	Base
	X     Expr
	Index Expr
}

// FnCall: callee(args)
type FnCall struct {
	Base
	Callee Expr
	Args   []Expr
}

// FieldAccess: x.name
type FieldAccess struct {
	Base
	X    Expr
	Name string
}

// Grouping: (x)
type Grouping struct {
	Base
	X Expr
}

// TryExpr: x?
type TryExpr struct {
	Base
	X Expr
}

// Literal holds a decoded literal value: int64, float64, byte, string, bool,
// or nil for `none`.
type Literal struct {
	Base
	Kind   token.Kind
	Value  any
	Raw    string
	Suffix string
}

// Ident is a name reference; `self` is an Ident too.
type Ident struct {
	Base
	Name string
}

func (*Assign) IsLvalue() bool      { return false }
func (*Conditional) IsLvalue() bool { return false }
func (*Binary) IsLvalue() bool      { return false }
func (*Unary) IsLvalue() bool       { return false }
func (*Cast) IsLvalue() bool        { return false }
func (*ArrayAccess) IsLvalue() bool { return true }
func (*FnCall) IsLvalue() bool      { return false }
func (*FieldAccess) IsLvalue() bool { return true }
func (*Grouping) IsLvalue() bool    { return false }
func (*TryExpr) IsLvalue() bool     { return false }
func (*Literal) IsLvalue() bool     { return false }
func (*Ident) IsLvalue() bool       { return true }

func (*Assign) aExpr()      {}
func (*Conditional) aExpr() {}
func (*Binary) aExpr()      {}
func (*Unary) aExpr()       {}
func (*Cast) aExpr()        {}
func (*ArrayAccess) aExpr() {}
func (*FnCall) aExpr()      {}
func (*FieldAccess) aExpr() {}
func (*Grouping) aExpr()    {}
func (*TryExpr) aExpr()     {}
func (*Literal) aExpr()     {}
func (*Ident) aExpr()       {}
