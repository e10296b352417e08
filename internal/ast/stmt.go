package ast

type ExprStmt struct {
	Base
	X Expr
}

// DeclStmt wraps a declaration nested in a block.
type DeclStmt struct {
	Base
	Decl Decl
}

type ReturnStmt struct {
	Base
	Value Expr // nil for a bare return
}

type BreakStmt struct{ Base }

type ContinueStmt struct{ Base }

// IfStmt: if cond { } [else if ... | else { }]
type IfStmt struct {
	Base
	Cond Expr
	Then *BlockStmt
	Else Stmt // nil, *IfStmt or *BlockStmt
}

type WhileStmt struct {
	Base
	Cond Expr
	Body *BlockStmt
}

// IteratorForStmt: for binder in collection { }
type IteratorForStmt struct {
	Base
	Binder     string
	Collection Expr
	Body       *BlockStmt
}

// RangeForStmt: for binder in start..end { } or start..=end
type RangeForStmt struct {
	Base
	Binder    string
	Start     Expr
	End       Expr
	Inclusive bool
	Body      *BlockStmt
}

type LoopStmt struct {
	Base
	Body *BlockStmt
}

// MatchClause: pattern => expr
type MatchClause struct {
	Base
	Pattern Expr
	Body    Expr
}

type MatchStmt struct {
	Base
	Scrutinee Expr
	Clauses   []*MatchClause
}

type BlockStmt struct {
	Base
	Stmts []Stmt
}

func (*ExprStmt) aStmt()        {}
func (*DeclStmt) aStmt()        {}
func (*ReturnStmt) aStmt()      {}
func (*BreakStmt) aStmt()       {}
func (*ContinueStmt) aStmt()    {}
func (*IfStmt) aStmt()          {}
func (*WhileStmt) aStmt()       {}
func (*IteratorForStmt) aStmt() {}
func (*RangeForStmt) aStmt()    {}
func (*LoopStmt) aStmt()        {}
func (*MatchStmt) aStmt()       {}
func (*BlockStmt) aStmt()       {}
