package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

// parseTopDecl parses one of: namespace_decl | struct_decl | var_decl |
// func_decl. The func-vs-var ambiguity (both start with `type IDENT`) is
// resolved by a bounded lookahead: parse the type and name, peek for "(",
// then rewind and reparse the chosen production — cheap since the cursor is
// a plain slice index, not a stream.
func (p *Parser) parseTopDecl() (decl ast.Decl) {
	defer p.recoverStmt()

	switch {
	case p.check(token.NAMESPACE):
		return p.parseNamespaceDecl()
	case p.check(token.STRUCT):
		return p.parseStructDecl()
	case p.isType():
		snapshot := p.pos
		p.parseType()
		p.expect(token.IDENT, "an identifier")
		isFunc := p.check(token.LPAREN)
		p.pos = snapshot
		if isFunc {
			return p.parseFuncDecl()
		}
		return p.parseVarDecl()
	default:
		p.fail("expected a declaration, got %q", p.curr().Lexeme)
		return nil
	}
}

func (p *Parser) parseNamespaceDecl() ast.Decl {
	start := p.curr()
	p.advance() // "namespace"
	name := p.expect(token.IDENT, "a namespace name").Lexeme
	p.expect(token.LBRACE, "'{'")
	nd := &ast.NamespaceDecl{Position: posOf(start), Name: name}
	for !p.check(token.RBRACE) && !p.atEnd() {
		if d := p.parseTopDecl(); d != nil {
			nd.Decls = append(nd.Decls, d)
		}
	}
	p.expect(token.RBRACE, "'}'")
	return nd
}

// parseStructDecl registers the struct's name in knownStructs as soon as the
// name is read, before its member list is parsed — matching spec.md §4.2's
// "populated at parse time upon entering a struct declaration", and letting
// later top-level declarations in the same file (not the struct's own
// members) reference it as a type.
func (p *Parser) parseStructDecl() ast.Decl {
	start := p.curr()
	p.advance() // "struct"
	name := p.expect(token.IDENT, "a struct name").Lexeme
	p.knownStructs[name] = true
	p.expect(token.LBRACE, "'{'")
	sd := &ast.StructDecl{Position: posOf(start), Name: name}
	for !p.check(token.RBRACE) && !p.atEnd() {
		sd.Members = append(sd.Members, p.parseVarDeclRaw())
	}
	p.expect(token.RBRACE, "'}'")
	p.expect(token.SEMI, "';' after struct declaration")
	return sd
}

// parseVarDecl parses a variable declaration as a top-level Decl.
func (p *Parser) parseVarDecl() ast.Decl {
	return p.parseVarDeclRaw()
}

// parseVarDeclRaw is shared by top-level var_decl, struct members, and
// for-loop init clauses (anywhere the grammar reduces to `type
// init_declarator {, init_declarator} ;`).
func (p *Parser) parseVarDeclRaw() *ast.VarDecl {
	start := p.curr()
	t := p.parseType()
	vd := &ast.VarDecl{Position: posOf(start), Type: t, IsConst: t.IsConst}
	vd.Declarators = append(vd.Declarators, p.parseInitDeclarator())
	for p.match(token.COMMA) {
		vd.Declarators = append(vd.Declarators, p.parseInitDeclarator())
	}
	p.expect(token.SEMI, "';'")
	return vd
}

func (p *Parser) parseInitDeclarator() *ast.InitDeclarator {
	start := p.curr()
	decl := p.parseDeclarator()
	id := &ast.InitDeclarator{Position: posOf(start), Declarator: decl}
	if p.match(token.ASSIGN) {
		if p.check(token.LBRACE) {
			id.Initializer = p.parseInitList()
		} else {
			id.Initializer = p.parseExpr()
		}
	}
	return id
}

func (p *Parser) parseDeclarator() *ast.Declarator {
	start := p.curr()
	name := p.expect(token.IDENT, "an identifier").Lexeme
	d := &ast.Declarator{Position: posOf(start), Name: name}
	if p.match(token.LBRACKET) {
		if !p.check(token.RBRACKET) {
			d.ArraySize = p.parseExpr()
		}
		p.expect(token.RBRACKET, "']'")
	}
	return d
}

func (p *Parser) parseFuncDecl() ast.Decl {
	start := p.curr()
	ret := p.parseType()
	name := p.expect(token.IDENT, "a function name").Lexeme
	p.expect(token.LPAREN, "'('")
	fd := &ast.FuncDecl{Position: posOf(start), ReturnType: ret, Name: name, IsConst: ret.IsConst}
	if !p.check(token.RPAREN) {
		fd.Params = append(fd.Params, p.parseParam())
		for p.match(token.COMMA) {
			fd.Params = append(fd.Params, p.parseParam())
		}
	}
	p.expect(token.RPAREN, "')'")
	if p.match(token.SEMI) {
		return fd // prototype, no body
	}
	fd.Body = p.parseBlock()
	return fd
}

func (p *Parser) parseParam() *ast.ParamDecl {
	start := p.curr()
	t := p.parseType()
	d := p.parseDeclarator()
	return &ast.ParamDecl{Position: posOf(start), Type: t, Declarator: d}
}

func (p *Parser) parseInitList() *ast.InitList {
	start := p.curr()
	p.advance() // "{"
	il := &ast.InitList{Position: posOf(start)}
	if !p.check(token.RBRACE) {
		il.Elements = append(il.Elements, p.parseExpr())
		for p.match(token.COMMA) {
			il.Elements = append(il.Elements, p.parseExpr())
		}
	}
	p.expect(token.RBRACE, "'}'")
	return il
}
