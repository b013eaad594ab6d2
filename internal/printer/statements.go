package printer

import "lumen/internal/ast"

func (p *Printer) printStmt(s ast.Stmt) {
	switch n := s.(type) {
	case nil:
		p.line("<nil stmt>")
	case *ast.Block:
		p.line("BlockNode")
		p.nested(func() {
			for _, stmt := range n.Stmts {
				p.printStmt(stmt)
			}
		})
	case *ast.If:
		p.line("IfNode")
		p.nested(func() {
			p.line("Cond:")
			p.nested(func() { p.printExpr(n.Cond) })
			p.line("Then:")
			p.nested(func() { p.printStmt(n.Then) })
			if n.Else != nil {
				p.line("Else:")
				p.nested(func() { p.printStmt(n.Else) })
			}
		})
	case *ast.While:
		p.line("WhileNode")
		p.nested(func() {
			p.line("Cond:")
			p.nested(func() { p.printExpr(n.Cond) })
			p.printStmt(n.Body)
		})
	case *ast.DoWhile:
		p.line("DoWhileNode")
		p.nested(func() {
			p.printStmt(n.Body)
			p.line("Cond:")
			p.nested(func() { p.printExpr(n.Cond) })
		})
	case *ast.For:
		p.line("ForNode")
		p.nested(func() {
			if n.Init != nil {
				p.line("Init:")
				p.nested(func() { p.printStmt(n.Init) })
			}
			if n.Cond != nil {
				p.line("Cond:")
				p.nested(func() { p.printExpr(n.Cond) })
			}
			if n.Increment != nil {
				p.line("Increment:")
				p.nested(func() { p.printExpr(n.Increment) })
			}
			p.printStmt(n.Body)
		})
	case *ast.Return:
		p.line("ReturnNode")
		if n.Value != nil {
			p.nested(func() { p.printExpr(n.Value) })
		}
	case *ast.Break:
		p.line("BreakNode")
	case *ast.Continue:
		p.line("ContinueNode")
	case *ast.Read:
		p.line("ReadNode")
		p.nested(func() { p.printExpr(n.Target) })
	case *ast.Print:
		p.line("PrintNode")
		p.nested(func() { p.printExpr(n.Value) })
	case *ast.StaticAssert:
		p.line("StaticAssertNode: %q", n.Message)
		p.nested(func() { p.printExpr(n.Cond) })
	case *ast.VarDecl:
		p.printVarDecl(n)
	case ast.Expr:
		p.printExpr(n)
	default:
		p.line("<unknown stmt>")
	}
}
