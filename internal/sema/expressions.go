package sema

import "lumen/internal/ast"
import "lumen/internal/types"

// getType is the analyzer's core inference function, implementing every
// rule spec.md §4.3 lists under "Type inference rules (for getType(expr))".
// A nil result means an error was already recorded for this subexpression
// (or one of its children), or that the expression has no type of its own
// (an InitList) — callers must treat nil as "don't know" and
// skip further comparisons rather than propagate a crash, the same
// null-tolerance discipline the parser observes for a failed parse.
func (a *Analyzer) getType(e ast.Expr) types.Type {
	switch n := e.(type) {
	case nil:
		return nil
	case *ast.Literal:
		return literalType(n)
	case *ast.Identifier:
		t, ok := a.scope.Lookup(n.Name)
		if !ok {
			a.errorf(n.Pos(), "Undeclared identifier: %s", n.Name)
			return nil
		}
		return t
	case *ast.ScopedIdentifier:
		// Resolved by its final component in the current scope;
		// namespace-qualified resolution is an explicit known-limitation
		// per spec.md §9 (the reference source flattens too).
		last := n.Path[len(n.Path)-1]
		t, ok := a.scope.Lookup(last)
		if !ok {
			a.errorf(n.Pos(), "Undeclared identifier: %s", last)
			return nil
		}
		return t
	case *ast.Binary:
		lt, rt := a.getType(n.Left), a.getType(n.Right)
		if lt == nil || rt == nil {
			return nil
		}
		if !lt.Equals(rt) {
			a.errorf(n.Pos(), "Operand type mismatch in '%s': %s vs %s", n.Op, lt.String(), rt.String())
			return nil
		}
		return lt
	case *ast.Unary:
		return a.getType(n.Operand)
	case *ast.Postfix:
		return a.getType(n.Operand)
	case *ast.Group:
		return a.getType(n.Inner)
	case *ast.Ternary:
		a.getType(n.Cond)
		tt, et := a.getType(n.Then), a.getType(n.Else)
		if tt == nil || et == nil {
			return nil
		}
		if !tt.Equals(et) {
			a.errorf(n.Pos(), "Ternary branches have mismatched types: %s vs %s", tt.String(), et.String())
			return nil
		}
		return tt
	case *ast.Cast:
		a.getType(n.Operand)
		return a.resolveType(n.Type)
	case *ast.Subscript:
		at := a.getType(n.Array)
		a.getType(n.Index)
		// Result is the array operand's own type, not an element type — an
		// open question spec.md §9 resolves explicitly in favor of matching
		// the reference source, since this language has no ArrayType.
		return at
	case *ast.Call:
		return a.callType(n)
	case *ast.MemberAccess:
		return a.memberType(n)
	case *ast.Assignment:
		if !isValidLValue(n.Left) {
			a.errorf(n.Pos(), "invalid assignment target: only identifiers, subscripts and member accesses may be assigned to")
		}
		lt, rt := a.getType(n.Left), a.getType(n.Right)
		if lt == nil || rt == nil {
			return nil
		}
		if !lt.Equals(rt) {
			a.errorf(n.Pos(), "Assignment type mismatch: %s vs %s", lt.String(), rt.String())
			return nil
		}
		return lt
	case *ast.Sizeof:
		if !n.IsType {
			a.getType(n.Operand)
		}
		return &types.Builtin{Name: "int"}
	case *ast.InitList:
		for _, elem := range n.Elements {
			a.getType(elem)
		}
		return nil
	case *ast.Exit:
		for _, arg := range n.Args {
			a.getType(arg)
		}
		return &types.Builtin{Name: "void"}
	case *ast.Assert:
		for _, arg := range n.Args {
			a.getType(arg)
		}
		return &types.Builtin{Name: "void"}
	default:
		return nil
	}
}

func literalType(n *ast.Literal) types.Type {
	switch n.Kind {
	case "int", "double", "char", "string":
		return &types.Builtin{Name: n.Kind}
	default:
		return nil
	}
}

// isValidLValue enforces spec.md §4.3's structural l-value check: only
// Identifier, Subscript and MemberAccess are valid assignment targets. The
// reference source is lenient here; this is one of the two places spec.md
// explicitly says implementers MUST tighten the rule.
func isValidLValue(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.Subscript, *ast.MemberAccess:
		return true
	default:
		return false
	}
}

func (a *Analyzer) callType(n *ast.Call) types.Type {
	ident, ok := n.Callee.(*ast.Identifier)
	if !ok {
		a.errorf(n.Pos(), "call target must be a plain identifier")
		for _, arg := range n.Args {
			a.getType(arg)
		}
		return nil
	}
	sig, ok := a.funcs[ident.Name]
	if !ok {
		a.errorf(n.Pos(), "Call to undeclared function: %s", ident.Name)
		for _, arg := range n.Args {
			a.getType(arg)
		}
		return nil
	}
	if len(n.Args) != len(sig.ParamTypes) {
		a.errorf(n.Pos(), "Function %s expects %d argument(s), got %d", ident.Name, len(sig.ParamTypes), len(n.Args))
	}
	for i, arg := range n.Args {
		at := a.getType(arg)
		if i < len(sig.ParamTypes) && at != nil && sig.ParamTypes[i] != nil && !at.Equals(sig.ParamTypes[i]) {
			a.errorf(arg.Pos(), "Argument %d to %s: expected %s, got %s", i+1, ident.Name, sig.ParamTypes[i].String(), at.String())
		}
	}
	return sig.ReturnType
}

func (a *Analyzer) memberType(n *ast.MemberAccess) types.Type {
	bt := a.getType(n.Object)
	if bt == nil {
		return nil
	}
	st, ok := bt.(*types.Struct)
	if !ok {
		a.errorf(n.Pos(), "Member access on non-struct type %s", bt.String())
		return nil
	}
	ft, ok := st.FieldType(n.Member)
	if !ok {
		a.errorf(n.Pos(), "struct %s has no member %s", st.Name, n.Member)
		return nil
	}
	return ft
}
