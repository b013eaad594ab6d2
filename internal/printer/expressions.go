package printer

import "lumen/internal/ast"

func (p *Printer) printExpr(e ast.Expr) {
	switch n := e.(type) {
	case nil:
		p.line("<nil expr>")
	case *ast.Literal:
		p.line("LiteralExprNode: %s", n.Lexeme)
	case *ast.Identifier:
		p.line("IdentifierExprNode: %s", n.Name)
	case *ast.ScopedIdentifier:
		path := n.Path[0]
		for _, seg := range n.Path[1:] {
			path += "::" + seg
		}
		p.line("ScopedIdentifierExprNode: %s", path)
	case *ast.Binary:
		p.line("BinaryExprNode: %s", n.Op)
		p.nested(func() {
			p.printExpr(n.Left)
			p.printExpr(n.Right)
		})
	case *ast.Unary:
		p.line("UnaryExprNode: %s", n.Op)
		p.nested(func() { p.printExpr(n.Operand) })
	case *ast.Postfix:
		p.line("PostfixExprNode: %s", n.Op)
		p.nested(func() { p.printExpr(n.Operand) })
	case *ast.Ternary:
		p.line("TernaryExprNode")
		p.nested(func() {
			p.printExpr(n.Cond)
			p.printExpr(n.Then)
			p.printExpr(n.Else)
		})
	case *ast.Cast:
		p.line("CastExprNode: %s", n.Type.Name)
		p.nested(func() { p.printExpr(n.Operand) })
	case *ast.Subscript:
		p.line("SubscriptExprNode")
		p.nested(func() {
			p.printExpr(n.Array)
			p.printExpr(n.Index)
		})
	case *ast.Call:
		p.line("CallExprNode")
		p.nested(func() {
			p.printExpr(n.Callee)
			for _, arg := range n.Args {
				p.printExpr(arg)
			}
		})
	case *ast.MemberAccess:
		op := "."
		if n.Arrow {
			op = "->"
		}
		p.line("MemberAccessExprNode: %s%s", op, n.Member)
		p.nested(func() { p.printExpr(n.Object) })
	case *ast.Group:
		p.line("GroupExprNode")
		p.nested(func() { p.printExpr(n.Inner) })
	case *ast.InitList:
		p.line("InitListNode")
		p.nested(func() {
			for _, elem := range n.Elements {
				p.printExpr(elem)
			}
		})
	case *ast.Sizeof:
		if n.IsType {
			p.line("SizeofExprNode: %s", n.Type.Name)
		} else {
			p.line("SizeofExprNode")
			p.nested(func() { p.printExpr(n.Operand) })
		}
	case *ast.Assignment:
		p.line("AssignmentExprNode: %s", n.CompoundOp)
		p.nested(func() {
			p.printExpr(n.Left)
			p.printExpr(n.Right)
		})
	case *ast.Exit:
		p.line("ExitExprNode")
		p.nested(func() {
			for _, arg := range n.Args {
				p.printExpr(arg)
			}
		})
	case *ast.Assert:
		p.line("AssertExprNode")
		p.nested(func() {
			for _, arg := range n.Args {
				p.printExpr(arg)
			}
		})
	default:
		p.line("<unknown expr>")
	}
}
