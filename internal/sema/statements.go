package sema

import (
	"lumen/internal/ast"
	"lumen/internal/scope"
	"lumen/internal/types"
)

// visitStmt dispatches every statement kind. Scope is pushed only at the
// points spec.md §4.3 names — Block, While, For — not at If or DoWhile,
// which rely entirely on their body being a Block (or not) for any nested
// scoping.
func (a *Analyzer) visitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case nil:
		return
	case *ast.Block:
		a.visitBlock(n)
	case *ast.If:
		a.visitIf(n)
	case *ast.While:
		a.visitWhile(n)
	case *ast.DoWhile:
		a.visitDoWhile(n)
	case *ast.For:
		a.visitFor(n)
	case *ast.Return:
		a.visitReturn(n)
	case *ast.Break, *ast.Continue:
		// No loop-nesting check in spec.md §4.3 — accepted unconditionally.
	case *ast.Read:
		a.getType(n.Target)
	case *ast.Print:
		a.getType(n.Value)
	case *ast.StaticAssert:
		// static_assert's condition can only be type-checked here, not
		// evaluated: constant folding belongs to code generation, which
		// spec.md §1 puts out of scope for this front end.
		a.getType(n.Cond)
	case *ast.VarDecl:
		a.visitVarDecl(n)
	case ast.Expr:
		a.getType(n)
	}
}

func (a *Analyzer) visitBlock(n *ast.Block) {
	guard := scope.Enter(&a.scope)
	defer guard.Close()
	for _, s := range n.Stmts {
		a.visitStmt(s)
	}
}

func (a *Analyzer) visitIf(n *ast.If) {
	a.checkCondition(a.getType(n.Cond), n.Pos(), "if")
	a.visitStmt(n.Then)
	if n.Else != nil {
		a.visitStmt(n.Else)
	}
}

func (a *Analyzer) visitWhile(n *ast.While) {
	guard := scope.Enter(&a.scope)
	defer guard.Close()
	a.checkCondition(a.getType(n.Cond), n.Pos(), "while")
	a.visitStmt(n.Body)
}

func (a *Analyzer) visitDoWhile(n *ast.DoWhile) {
	a.visitStmt(n.Body)
	a.checkCondition(a.getType(n.Cond), n.Pos(), "do-while")
}

func (a *Analyzer) visitFor(n *ast.For) {
	guard := scope.Enter(&a.scope)
	defer guard.Close()
	if n.Init != nil {
		a.visitStmt(n.Init)
	}
	if n.Cond != nil {
		a.checkCondition(a.getType(n.Cond), n.Pos(), "for")
	}
	if n.Increment != nil {
		a.getType(n.Increment)
	}
	a.visitStmt(n.Body)
}

// checkCondition enforces spec.md §4.3's condition-typing rule: the
// condition of If/While/DoWhile/For must resolve to a Builtin named "int"
// or "bool". A nil type means an earlier error already fired on the
// condition expression itself, so nothing further is reported here.
func (a *Analyzer) checkCondition(t types.Type, pos ast.Position, construct string) {
	if t == nil {
		return
	}
	b, ok := t.(*types.Builtin)
	if !ok || !b.IsIntOrBool() {
		a.errorf(pos, "Condition in %s-statement must be of type int or bool", construct)
	}
}

func (a *Analyzer) visitReturn(n *ast.Return) {
	var expected types.Type
	if len(a.returnStack) > 0 {
		expected = a.returnStack[len(a.returnStack)-1]
	}
	if n.Value != nil {
		vt := a.getType(n.Value)
		if expected != nil && vt != nil && !expected.Equals(vt) {
			a.errorf(n.Pos(), "Return type mismatch: expected %s, got %s", expected.String(), vt.String())
		}
		return
	}
	// Bare `return;` — spec.md §4.3 additionally recommends requiring the
	// expected type to be void in this case.
	if expected == nil {
		return
	}
	if b, ok := expected.(*types.Builtin); !ok || !b.IsVoid() {
		a.errorf(n.Pos(), "Return type mismatch: expected %s, got void", expected.String())
	}
}
