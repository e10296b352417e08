package ast

// Param is one `name: Type` function parameter.
type Param struct {
	Base
	Name string
	Type Type
}

// FnDecl: [@decorator]* [pub] [modifies] fn name(params) [-> Type] { body }
type FnDecl struct {
	Base
	Name       string
	Decorators []string
	Pub        bool
	Modifies   bool
	Params     []*Param
	Return     Type // nil: нет возвращаемого типа
	Body       *BlockStmt
}

// VarDecl: let [mut] name [: Type] [= expr]
type VarDecl struct {
	Base
	Name    string
	Mutable bool
	Type    Type
	Init    Expr
}

// ConstDecl: const name [: Type] = expr
type ConstDecl struct {
	Base
	Name string
	Type Type
	Init Expr
}

// FieldDecl: name: Type [= expr]
type FieldDecl struct {
	Base
	Name string
	Type Type
	Init Expr
}

// StructDecl: struct Name { fields }
type StructDecl struct {
	Base
	Name   string
	Fields []*FieldDecl
}

// ClassMember is a *FieldDecl or a *FnDecl.
type ClassMember interface {
	Decl
	aMember()
}

// ClassDecl: class Name [: Parent] { members }
type ClassDecl struct {
	Base
	Name    string
	Parent  string // "" when the class has no parent
	Members []ClassMember
}

// TraitDecl: trait Name { methods }
type TraitDecl struct {
	Base
	Name    string
	Methods []*FnDecl
}

// WithDecl implements a trait for a type: with Trait for Target { methods }
type WithDecl struct {
	Base
	Trait   string
	Target  string
	Methods []*FnDecl
}

func (*FnDecl) aDecl()     {}
func (*VarDecl) aDecl()    {}
func (*ConstDecl) aDecl()  {}
func (*FieldDecl) aDecl()  {}
func (*StructDecl) aDecl() {}
func (*ClassDecl) aDecl()  {}
func (*TraitDecl) aDecl()  {}
func (*WithDecl) aDecl()   {}

func (*FieldDecl) aMember() {}
func (*FnDecl) aMember()    {}
