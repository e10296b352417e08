package ast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a subtree in depth-first order, children in source order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	// declarations
	case *FnDecl:
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Return != nil {
			Walk(n.Return, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}
	case *Param:
		Walk(n.Type, v)
	case *VarDecl:
		if n.Type != nil {
			Walk(n.Type, v)
		}
		if n.Init != nil {
			Walk(n.Init, v)
		}
	case *ConstDecl:
		if n.Type != nil {
			Walk(n.Type, v)
		}
		Walk(n.Init, v)
	case *FieldDecl:
		Walk(n.Type, v)
		if n.Init != nil {
			Walk(n.Init, v)
		}
	case *StructDecl:
		for _, f := range n.Fields {
			Walk(f, v)
		}
	case *ClassDecl:
		for _, m := range n.Members {
			Walk(m, v)
		}
	case *TraitDecl:
		for _, m := range n.Methods {
			Walk(m, v)
		}
	case *WithDecl:
		for _, m := range n.Methods {
			Walk(m, v)
		}

	// statements
	case *ExprStmt:
		Walk(n.X, v)
	case *DeclStmt:
		Walk(n.Decl, v)
	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *BreakStmt, *ContinueStmt:
		// листья
	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}
	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *IteratorForStmt:
		Walk(n.Collection, v)
		Walk(n.Body, v)
	case *RangeForStmt:
		Walk(n.Start, v)
		Walk(n.End, v)
		Walk(n.Body, v)
	case *LoopStmt:
		Walk(n.Body, v)
	case *MatchStmt:
		Walk(n.Scrutinee, v)
		for _, c := range n.Clauses {
			Walk(c, v)
		}
	case *MatchClause:
		Walk(n.Pattern, v)
		Walk(n.Body, v)
	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	// expressions
	case *Assign:
		Walk(n.Target, v)
		Walk(n.Value, v)
	case *Conditional:
		Walk(n.Then, v)
		Walk(n.Cond, v)
		Walk(n.Else, v)
	case *Binary:
		Walk(n.X, v)
		Walk(n.Y, v)
	case *Unary:
		Walk(n.X, v)
	case *Cast:
		Walk(n.X, v)
		Walk(n.Type, v)
	case *ArrayAccess:
		Walk(n.X, v)
		Walk(n.Index, v)
	case *FnCall:
		Walk(n.Callee, v)
		for _, a := range n.Args {
			Walk(a, v)
		}
	case *FieldAccess:
		Walk(n.X, v)
	case *Grouping:
		Walk(n.X, v)
	case *TryExpr:
		Walk(n.X, v)
	case *Literal, *Ident:
		// листья

	// types
	case *GenericType:
		for _, a := range n.Args {
			Walk(a, v)
		}
	case *DynamicArrayType:
		Walk(n.Elem, v)
	case *StaticArrayType:
		Walk(n.Elem, v)
	case *MapType:
		Walk(n.Key, v)
		Walk(n.Value, v)
	case *SetType:
		Walk(n.Elem, v)
	case *OptionalType:
		Walk(n.Inner, v)
	case *ResultType:
		Walk(n.Ok, v)
		Walk(n.Err, v)
	case *PrimitiveType, *UserType:
	}
}

// Inspect walks every top-level declaration of the program.
func (p *Program) Inspect(v Visitor) {
	if p == nil {
		return
	}
	for _, d := range p.Decls {
		Walk(d, v)
	}
}

// Stats counts nodes of a program by category.
type Stats struct {
	Decls, Stmts, Exprs, Types int
}

// Count walks the program and tallies its nodes.
func Count(p *Program) Stats {
	var s Stats
	p.Inspect(func(n Node) bool {
		switch n.(type) {
		case Decl:
			s.Decls++
		case Stmt:
			s.Stmts++
		case Expr:
			s.Exprs++
		case Type:
			s.Types++
		}
		return true
	})
	return s
}
