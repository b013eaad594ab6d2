// Package parser implements a hand-written recursive-descent parser with an
// operator-precedence ladder for the expression grammar, producing a typed
// AST (package ast) from a token.Token stream.
//
// The token-lookahead/error-collection *idiom* — a cursor over the token
// slice, an expect-or-record-diagnostic helper, errors gathered instead of
// aborting on the first one — is carried over from the teacher
// interpreter's Parser (CurrToken/NextToken, expectAdvance, Errors []string).
// What changed is the *strategy*: the teacher is a Pratt parser driven by
// per-token-kind function tables, suited to an expression-oriented
// scripting language with no static types to disambiguate. Lumen's grammar
// needs explicit, stateful disambiguation — a two-token isType lookahead, a
// backtracking cast-vs-group decision, a function-vs-variable lookahead at
// top level — that a generic precedence table can't express, so each
// grammar rule in spec.md's BNF gets its own parse function instead.
package parser

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/token"
)

// Parser holds the token cursor and parsing state for one translation unit.
type Parser struct {
	tokens []token.Token
	pos    int

	// knownStructs is the set of struct names seen so far, used by isType
	// to decide whether a bare identifier names a type. It lives on the
	// Parser, not a package-level variable — the reference source keeps
	// this as process-wide global mutable state, which spec.md §9 flags
	// as a redesign smell ("pass a parser-scoped context instead").
	knownStructs map[string]bool

	diags    *diag.Collector
	hadError bool
}

// parseError is panicked by fail and recovered at statement/declaration
// boundaries, unwinding the partially built expression tree up to the
// nearest point synchronize() can resume from. This mirrors the exception-
// based recovery of the reference parser.cpp without needing Go's
// (nonexistent) exceptions — callers below a recover point never see a
// parseError value.
type parseError struct{}

// Parse tokenizes nothing itself — it consumes an already-scanned,
// well-formed token stream (per the lexer's invariant: exactly one END token
// at the end) and returns the resulting TranslationUnit along with every
// diagnostic collected and whether any was syntactic.
func Parse(tokens []token.Token) (*ast.TranslationUnit, *diag.Collector, bool) {
	p := &Parser{
		tokens:       tokens,
		knownStructs: make(map[string]bool),
		diags:        &diag.Collector{},
	}
	tu := &ast.TranslationUnit{}
	if len(tokens) > 0 {
		tu.Position = posOf(tokens[0])
	}
	for !p.atEnd() {
		if d := p.parseTopDecl(); d != nil {
			tu.Decls = append(tu.Decls, d)
		}
	}
	return tu, p.diags, p.hadError
}

// ParseSource is the convenience entry point used by the driver: it lexes
// src, halting immediately on a lexical error (per spec.md §7's "lexical
// errors halt the compile immediately"), then parses the resulting tokens.
func ParseSource(src string) (*ast.TranslationUnit, *diag.Collector, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, nil, err
	}
	tu, diags, _ := Parse(tokens)
	return tu, diags, nil
}

func posOf(t token.Token) ast.Position {
	return ast.Position{Line: t.Line, Column: t.Column}
}

// ---- token cursor ----------------------------------------------------

func (p *Parser) curr() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) tokAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.curr().Kind == token.END
}

func (p *Parser) advance() token.Token {
	t := p.curr()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return p.curr().Kind == kind
}

func (p *Parser) checkAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.curr().Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) match(kinds ...token.Kind) bool {
	if p.checkAny(kinds...) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it matches kind, recording a
// diagnostic naming what was expected and unwinding to the nearest recover
// point otherwise. what should read naturally in "expected %s" — e.g.
// "';'" or "an identifier".
func (p *Parser) expect(kind token.Kind, what string) token.Token {
	if !p.check(kind) {
		p.fail("expected %s, got %q", what, p.curr().Lexeme)
	}
	return p.advance()
}

// fail records a syntactic diagnostic at the current token and unwinds the
// parse of the current statement/declaration via panic/recover.
func (p *Parser) fail(format string, args ...interface{}) {
	t := p.curr()
	p.diags.Addf(diag.Syntactic, t.Line, t.Column, t.Lexeme, format, args...)
	p.hadError = true
	panic(parseError{})
}

// recoverStmt is deferred by every parse function that is a valid
// synchronize() landing point (top-level declarations and statements). It
// swallows a parseError, resynchronizes the token stream, and reports nil
// up through the named return so the caller's statement/declaration list
// simply omits the failed entry — spec.md §4.2's "Returning a null child is
// permitted and callers must be tolerant."
func (p *Parser) recoverStmt() {
	if r := recover(); r != nil {
		if _, ok := r.(parseError); ok {
			p.synchronize()
			return
		}
		panic(r)
	}
}

// synchronize discards tokens until a plausible statement/declaration
// boundary: right after a consumed ';', or right before a token that starts
// a new construct (a type keyword, "struct", "if", "while", "for",
// "return"). Grounded on original_source's parser resync loop and spec.md
// §4.2's definition of the recovery set.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMI {
			return
		}
		if token.BuiltinTypeKeywords[p.curr().Kind] {
			return
		}
		switch p.curr().Kind {
		case token.STRUCT, token.IF, token.WHILE, token.FOR, token.RETURN:
			return
		}
		p.advance()
	}
}

// ---- type lookahead ----------------------------------------------------

// isType reports whether the parser is positioned at the start of a type:
// zero or more const/unsigned modifiers followed by a builtin type keyword,
// or an identifier already registered as a struct name.
func (p *Parser) isType() bool {
	return p.isTypeAt(p.pos)
}

func (p *Parser) isTypeAt(i int) bool {
	for p.tokAt(i).Kind == token.CONST || p.tokAt(i).Kind == token.UNSIGNED {
		i++
	}
	k := p.tokAt(i).Kind
	if token.BuiltinTypeKeywords[k] {
		return true
	}
	return k == token.IDENT && p.knownStructs[p.tokAt(i).Lexeme]
}

// parseType consumes a type reference. Callers must have already confirmed
// isType() (or isTypeAt at the relevant position) — parseType itself does
// not re-validate, since by the time it runs the caller has committed to
// the type branch of whatever ambiguity it was resolving.
func (p *Parser) parseType() ast.TypeRef {
	start := p.curr()
	var isConst, isUnsigned bool
	for {
		switch {
		case p.check(token.CONST):
			isConst = true
			p.advance()
		case p.check(token.UNSIGNED):
			isUnsigned = true
			p.advance()
		default:
			name := p.curr().Lexeme
			p.advance()
			return ast.TypeRef{
				Position:   posOf(start),
				Name:       name,
				IsConst:    isConst,
				IsUnsigned: isUnsigned,
			}
		}
	}
}
