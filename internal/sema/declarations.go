package sema

import (
	"lumen/internal/ast"
	"lumen/internal/scope"
	"lumen/internal/types"
)

func (a *Analyzer) visitDecl(d ast.Decl) {
	switch n := d.(type) {
	case *ast.VarDecl:
		a.visitVarDecl(n)
	case *ast.FuncDecl:
		a.visitFuncDecl(n)
	case *ast.StructDecl:
		a.visitStructDecl(n)
	case *ast.NamespaceDecl:
		a.visitNamespaceDecl(n)
	}
}

// visitVarDecl resolves the declared type once and declares each
// init-declarator's name in the current scope, reporting a redefinition
// error per name that collides locally. Initializer expressions are
// type-checked for their own internal errors (undeclared identifiers,
// bad member access, and so on) but spec.md §4.3 does not list a rule
// requiring the initializer's type to equal the declared type, so no such
// check is added here — only Assignment's typing rule is specified, and a
// VarDecl initializer is not modeled as an Assignment node.
func (a *Analyzer) visitVarDecl(n *ast.VarDecl) {
	t := a.resolveType(n.Type)
	for _, id := range n.Declarators {
		if id.Declarator.ArraySize != nil {
			a.getType(id.Declarator.ArraySize)
		}
		if id.Initializer != nil {
			if il, ok := id.Initializer.(*ast.InitList); ok {
				for _, elem := range il.Elements {
					a.getType(elem)
				}
			} else {
				a.getType(id.Initializer)
			}
		}
		if !a.scope.Declare(id.Declarator.Name, t) {
			a.errorf(id.Declarator.Pos(), "Redefinition of variable: %s", id.Declarator.Name)
		}
	}
}

// visitFuncDecl registers the signature if it was not already captured by
// the pre-pass (a namespace-nested or otherwise non-top-level function),
// then enters one scope for the parameter list. The body sees the
// parameters from there, while its own Block visitation pushes a second,
// nested scope — the
// same two-level "FunctionBody, Block" entry spec.md §4.3 lists.
func (a *Analyzer) visitFuncDecl(n *ast.FuncDecl) {
	if !a.preRegistered[n.Name] {
		if _, exists := a.funcs[n.Name]; exists {
			a.errorf(n.Pos(), "Function %s already declared", n.Name)
		} else {
			a.funcs[n.Name] = a.buildSignature(n)
		}
	}
	sig := a.funcs[n.Name]

	guard := scope.Enter(&a.scope)
	defer guard.Close()

	for _, p := range n.Params {
		pt := a.resolveType(p.Type)
		if !a.scope.Declare(p.Declarator.Name, pt) {
			a.errorf(p.Pos(), "Redefinition of parameter: %s", p.Declarator.Name)
		}
	}

	if n.Body == nil {
		return // prototype: no body to walk, nothing pushed on the return stack
	}

	var retType types.Type
	if sig != nil {
		retType = sig.ReturnType
	} else {
		retType = a.resolveType(n.ReturnType)
	}
	a.returnStack = append(a.returnStack, retType)
	a.visitStmt(n.Body)
	a.returnStack = a.returnStack[:len(a.returnStack)-1]
}

// visitStructDecl populates the type table with a StructType built from the
// member list. Member variables are field descriptors, not scoped bindings
// — they never go through a.scope.Declare.
func (a *Analyzer) visitStructDecl(n *ast.StructDecl) {
	if _, exists := a.structs[n.Name]; exists {
		a.errorf(n.Pos(), "Redefinition of struct: %s", n.Name)
		return
	}
	st := &types.Struct{Name: n.Name}
	for _, member := range n.Members {
		mt := a.resolveType(member.Type)
		for _, id := range member.Declarators {
			st.Fields = append(st.Fields, types.Field{Name: id.Declarator.Name, Type: mt})
		}
	}
	a.structs[n.Name] = st
}

func (a *Analyzer) visitNamespaceDecl(n *ast.NamespaceDecl) {
	guard := scope.Enter(&a.scope)
	defer guard.Close()
	for _, d := range n.Decls {
		a.visitDecl(d)
	}
}
