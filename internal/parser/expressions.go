package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

// parseExpr is the grammar's expr entry point: assignment, the loosest
// level of the precedence ladder spec.md §4.2 lays out top to bottom —
// assignment > ternary > || > && > == != > < <= > >= > + - > * / % > unary
// > postfix > primary.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseTernary()
	if p.checkAny(token.ASSIGN, token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ, token.PERCENT_EQ) {
		op := p.advance()
		right := p.parseAssignment() // right-associative
		return &ast.Assignment{Position: posOf(op), Left: left, CompoundOp: op.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseLogicalOr()
	if p.check(token.QUESTION) {
		q := p.advance()
		then := p.parseExpr()
		p.expect(token.COLON, "':'")
		els := p.parseExpr()
		return &ast.Ternary{Position: posOf(q), Cond: cond, Then: then, Else: els}
	}
	return cond
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.check(token.OR) {
		op := p.advance()
		right := p.parseLogicalAnd()
		left = &ast.Binary{Position: posOf(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.parseEquality()
		left = &ast.Binary{Position: posOf(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	for p.checkAny(token.EQ, token.NEQ) {
		op := p.advance()
		right := p.parseComparison()
		left = &ast.Binary{Position: posOf(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for p.checkAny(token.LT, token.LE, token.GT, token.GE) {
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{Position: posOf(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.checkAny(token.PLUS, token.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Position: posOf(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.checkAny(token.STAR, token.SLASH, token.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Position: posOf(op), Op: op.Lexeme, Left: left, Right: right}
	}
	return left
}

// parseUnary handles prefix operators, sizeof, and the cast-vs-parenthesized-
// group ambiguity: on seeing "(", it looks one token further; if that token
// starts a type it parses the type and commits to a cast when ")" follows.
// Otherwise (no type after "(", or no ")" after the type) it falls through,
// rewinding if needed, to parsePostfix/parsePrimary's own "(" expr ")"
// handling.
func (p *Parser) parseUnary() ast.Expr {
	if p.checkAny(token.BANG, token.MINUS, token.INC, token.DEC, token.AMP) {
		op := p.advance()
		operand := p.parseUnary()
		return &ast.Unary{Position: posOf(op), Op: op.Lexeme, Operand: operand}
	}

	if p.check(token.SIZEOF) {
		start := p.advance()
		p.expect(token.LPAREN, "'('")
		node := &ast.Sizeof{Position: posOf(start)}
		if p.isType() {
			node.IsType = true
			node.Type = p.parseType()
		} else {
			node.Operand = p.parseExpr()
		}
		p.expect(token.RPAREN, "')'")
		return node
	}

	if p.check(token.LPAREN) && p.isTypeAt(p.pos+1) {
		snapshot := p.pos
		start := p.advance() // "("
		t := p.parseType()
		if p.check(token.RPAREN) {
			p.advance()
			operand := p.parseUnary()
			return &ast.Cast{Position: posOf(start), Type: t, Operand: operand}
		}
		// Not actually a cast (e.g. a struct-typed name used as a plain
		// call or group expression) — rewind and fall through.
		p.pos = snapshot
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.LPAREN):
			p.advance()
			args := p.parseArgList()
			rp := p.expect(token.RPAREN, "')'")
			expr = &ast.Call{Position: posOf(rp), Callee: expr, Args: args}
		case p.check(token.LBRACKET):
			lb := p.advance()
			idx := p.parseExpr()
			p.expect(token.RBRACKET, "']'")
			expr = &ast.Subscript{Position: posOf(lb), Array: expr, Index: idx}
		case p.check(token.INC):
			op := p.advance()
			expr = &ast.Postfix{Position: posOf(op), Op: op.Lexeme, Operand: expr}
		case p.check(token.DEC):
			op := p.advance()
			expr = &ast.Postfix{Position: posOf(op), Op: op.Lexeme, Operand: expr}
		case p.checkAny(token.DOT, token.ARROW):
			arrow := p.check(token.ARROW)
			op := p.advance()
			member := p.expect(token.IDENT, "a member name").Lexeme
			expr = &ast.MemberAccess{Position: posOf(op), Object: expr, Member: member, Arrow: arrow}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpr())
		for p.match(token.COMMA) {
			args = append(args, p.parseExpr())
		}
	}
	return args
}

func (p *Parser) parsePrimary() ast.Expr {
	t := p.curr()
	switch t.Kind {
	case token.INT:
		p.advance()
		return &ast.Literal{Position: posOf(t), Kind: "int", Lexeme: t.Lexeme}
	case token.FLOAT:
		p.advance()
		return &ast.Literal{Position: posOf(t), Kind: "double", Lexeme: t.Lexeme}
	case token.CHAR:
		p.advance()
		return &ast.Literal{Position: posOf(t), Kind: "char", Lexeme: t.Lexeme}
	case token.STRING:
		p.advance()
		return &ast.Literal{Position: posOf(t), Kind: "string", Lexeme: t.Lexeme}
	case token.IDENT:
		p.advance()
		if p.check(token.SCOPE) {
			return p.parseScopedIdentifier(t)
		}
		return &ast.Identifier{Position: posOf(t), Name: t.Lexeme}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN, "')'")
		return &ast.Group{Position: posOf(t), Inner: inner}
	case token.LBRACE:
		return p.parseInitList()
	case token.EXIT:
		p.advance()
		p.expect(token.LPAREN, "'('")
		args := p.parseArgList()
		p.expect(token.RPAREN, "')'")
		return &ast.Exit{Position: posOf(t), Args: args}
	case token.ASSERT:
		p.advance()
		p.expect(token.LPAREN, "'('")
		args := p.parseArgList()
		p.expect(token.RPAREN, "')'")
		return &ast.Assert{Position: posOf(t), Args: args}
	default:
		p.fail("expected an expression, got %q", t.Lexeme)
		return nil
	}
}

// maxScopeDepth caps the number of "::" segments a scoped identifier may
// chain, guarding against runaway input. Grounded on
// original_source/src/parser.cpp's parsePrimary, which counts scope_count
// and reports "Too many scope operators" past the same limit.
const maxScopeDepth = 100

// parseScopedIdentifier consumes a "::"-joined path, e.g. `outer::inner::x`,
// starting after the first component has already been scanned.
func (p *Parser) parseScopedIdentifier(first token.Token) ast.Expr {
	path := []string{first.Lexeme}
	depth := 0
	for p.match(token.SCOPE) {
		depth++
		if depth > maxScopeDepth {
			p.fail("too many scope operators (::) at token %q", p.curr().Lexeme)
		}
		path = append(path, p.expect(token.IDENT, "an identifier").Lexeme)
	}
	return &ast.ScopedIdentifier{Position: posOf(first), Path: path}
}
