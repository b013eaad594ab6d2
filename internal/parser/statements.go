package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

// parseStatement dispatches on the current token to one of the productions
// listed in spec.md §4.2's stmt grammar. Any parseError raised below this
// point unwinds here, not further up, so one malformed statement never
// drops the rest of an enclosing block.
func (p *Parser) parseStatement() (stmt ast.Stmt) {
	defer p.recoverStmt()

	switch {
	case p.check(token.LBRACE):
		return p.parseBlock()
	case p.check(token.IF):
		return p.parseIf()
	case p.check(token.WHILE):
		return p.parseWhile()
	case p.check(token.DO):
		return p.parseDoWhile()
	case p.check(token.FOR):
		return p.parseFor()
	case p.check(token.RETURN):
		return p.parseReturn()
	case p.check(token.BREAK):
		start := p.advance()
		p.expect(token.SEMI, "';'")
		return &ast.Break{Position: posOf(start)}
	case p.check(token.CONTINUE):
		start := p.advance()
		p.expect(token.SEMI, "';'")
		return &ast.Continue{Position: posOf(start)}
	case p.check(token.READ):
		return p.parseRead()
	case p.check(token.PRINT):
		return p.parsePrint()
	case p.check(token.STATIC_ASSERT):
		return p.parseStaticAssert()
	case p.isType():
		return p.parseVarDeclRaw()
	default:
		e := p.parseExpr()
		p.expect(token.SEMI, "';'")
		return e
	}
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.expect(token.LBRACE, "'{'")
	b := &ast.Block{Position: posOf(start)}
	for !p.check(token.RBRACE) && !p.atEnd() {
		b.Stmts = append(b.Stmts, p.parseStatement())
	}
	p.expect(token.RBRACE, "'}'")
	return b
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.advance() // "if"
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpr()
	p.expect(token.RPAREN, "')'")
	then := p.parseStatement()
	node := &ast.If{Position: posOf(start), Cond: cond, Then: then}
	if p.match(token.ELSE) {
		node.Else = p.parseStatement()
	}
	return node
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.advance() // "while"
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpr()
	p.expect(token.RPAREN, "')'")
	body := p.parseStatement()
	return &ast.While{Position: posOf(start), Cond: cond, Body: body}
}

func (p *Parser) parseDoWhile() ast.Stmt {
	start := p.advance() // "do"
	body := p.parseStatement()
	p.expect(token.WHILE, "'while'")
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpr()
	p.expect(token.RPAREN, "')'")
	p.expect(token.SEMI, "';'")
	return &ast.DoWhile{Position: posOf(start), Body: body, Cond: cond}
}

// parseFor implements the C-style `for (init; cond; incr) body`. Per
// spec.md §4.2's expression-statement-ambiguity note, the init clause is a
// var_decl (which consumes its own trailing ';') when isType() holds at
// that position, otherwise an expression followed by an explicit ';'.
func (p *Parser) parseFor() ast.Stmt {
	start := p.advance() // "for"
	p.expect(token.LPAREN, "'('")

	node := &ast.For{Position: posOf(start)}
	switch {
	case p.check(token.SEMI):
		p.advance() // empty init
	case p.isType():
		node.Init = p.parseVarDeclRaw()
	default:
		e := p.parseExpr()
		p.expect(token.SEMI, "';'")
		node.Init = e
	}

	if !p.check(token.SEMI) {
		node.Cond = p.parseExpr()
	}
	p.expect(token.SEMI, "';'")

	if !p.check(token.RPAREN) {
		node.Increment = p.parseExpr()
	}
	p.expect(token.RPAREN, "')'")

	node.Body = p.parseStatement()
	return node
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.advance() // "return"
	r := &ast.Return{Position: posOf(start)}
	if !p.check(token.SEMI) {
		r.Value = p.parseExpr()
	}
	p.expect(token.SEMI, "';'")
	return r
}

func (p *Parser) parseRead() ast.Stmt {
	start := p.advance() // "read"
	p.expect(token.LPAREN, "'('")
	target := p.parseExpr()
	p.expect(token.RPAREN, "')'")
	p.expect(token.SEMI, "';'")
	return &ast.Read{Position: posOf(start), Target: target}
}

func (p *Parser) parsePrint() ast.Stmt {
	start := p.advance() // "print"
	p.expect(token.LPAREN, "'('")
	value := p.parseExpr()
	p.expect(token.RPAREN, "')'")
	p.expect(token.SEMI, "';'")
	return &ast.Print{Position: posOf(start), Value: value}
}

func (p *Parser) parseStaticAssert() ast.Stmt {
	start := p.advance() // "static_assert"
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpr()
	p.expect(token.COMMA, "','")
	msg := p.expect(token.STRING, "a string literal")
	p.expect(token.RPAREN, "')'")
	p.expect(token.SEMI, "';'")
	return &ast.StaticAssert{Position: posOf(start), Cond: cond, Message: msg.Lexeme}
}
