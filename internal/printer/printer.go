// Package printer renders a Lumen AST as an indented, human-readable tree
// for debugging — the external "debug pretty-printer" collaborator spec.md
// §6 describes.
//
// Grounded on the teacher interpreter's PrintingVisitor (main/print_visitor.go
// and the root-level print_visitor.go — two near-duplicate copies; the
// later/larger one is followed, per spec.md §9's "duplicate files" note):
// same Indent/Buf accumulator shape and indent size. Each node renders as
// one line, "<Kind>Node" plus its key attributes (e.g. "BinaryExprNode: +",
// "VarDeclNode (const): int"). What changed is the
// dispatch: the teacher walks the tree via Accept(Visitor)/double dispatch,
// one method per node type; this printer is a single Print function driven
// by a type switch over ast's closed node set — spec.md §6 asks only that
// nodes "expose a double-dispatch hook over a fixed set of visit methods",
// and a type switch over a closed sum type is that hook's idiomatic Go
// equivalent: single dispatch on a statically known, exhaustively-enumerable
// set of concrete types, with the compiler (not a runtime vtable) picking
// the case.
package printer

import (
	"bytes"
	"fmt"

	"lumen/internal/ast"
)

const indentSize = 4

// Printer accumulates the rendered tree in Buf, tracking the current
// indentation depth the way the teacher's PrintingVisitor does.
type Printer struct {
	Indent int
	Buf    bytes.Buffer
}

// Print renders tu and returns the accumulated text. Never panics on any
// AST the parser can produce — including trees containing nil children
// left behind by error recovery — satisfying spec.md §8's "pretty-printer
// is a total function on any AST produced by the parser" property.
func Print(tu *ast.TranslationUnit) string {
	p := &Printer{}
	p.printTranslationUnit(tu)
	return p.Buf.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteByte(' ')
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	p.writeIndent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.Indent += indentSize
	f()
	p.Indent -= indentSize
}

func (p *Printer) printTranslationUnit(tu *ast.TranslationUnit) {
	p.line("TranslationUnit")
	p.nested(func() {
		for _, d := range tu.Decls {
			p.printDecl(d)
		}
	})
}

func (p *Printer) printDecl(d ast.Decl) {
	switch n := d.(type) {
	case nil:
		p.line("<nil decl>")
	case *ast.VarDecl:
		p.printVarDecl(n)
	case *ast.FuncDecl:
		p.printFuncDecl(n)
	case *ast.StructDecl:
		p.printStructDecl(n)
	case *ast.NamespaceDecl:
		p.line("NamespaceDecl %s", n.Name)
		p.nested(func() {
			for _, child := range n.Decls {
				p.printDecl(child)
			}
		})
	default:
		p.line("<unknown decl>")
	}
}

func (p *Printer) printVarDecl(n *ast.VarDecl) {
	tag := ""
	if n.IsConst {
		tag = " (const)"
	}
	p.line("VarDeclNode%s: %s", tag, n.Type.Name)
	p.nested(func() {
		for _, id := range n.Declarators {
			p.printInitDeclarator(id)
		}
	})
}

func (p *Printer) printInitDeclarator(id *ast.InitDeclarator) {
	if id == nil || id.Declarator == nil {
		p.line("<nil init-declarator>")
		return
	}
	p.line("Declarator: %s", id.Declarator.Name)
	p.nested(func() {
		if id.Declarator.ArraySize != nil {
			p.line("ArraySize:")
			p.nested(func() { p.printExpr(id.Declarator.ArraySize) })
		}
		if id.Initializer != nil {
			p.line("Initializer:")
			p.nested(func() { p.printExpr(id.Initializer) })
		}
	})
}

func (p *Printer) printFuncDecl(n *ast.FuncDecl) {
	tag := ""
	if n.IsConst {
		tag = " (const)"
	}
	p.line("FuncDeclNode%s: %s %s(...)", tag, n.ReturnType.Name, n.Name)
	p.nested(func() {
		for _, param := range n.Params {
			if param == nil || param.Declarator == nil {
				continue
			}
			p.line("ParamDecl: %s %s", param.Type.Name, param.Declarator.Name)
		}
		if n.Body != nil {
			p.printStmt(n.Body)
		}
	})
}

func (p *Printer) printStructDecl(n *ast.StructDecl) {
	p.line("StructDeclNode: %s", n.Name)
	p.nested(func() {
		for _, m := range n.Members {
			p.printVarDecl(m)
		}
	})
}
