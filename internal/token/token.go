// Package token defines the lexical token vocabulary of the Lumen language:
// the closed set of token kinds the lexer emits, the keyword table used to
// disambiguate identifiers from reserved words, and the Token value itself.
package token

import "fmt"

// Kind identifies the category of a Token. It is a closed enumeration: every
// kind the lexer can produce is listed below, grouped by the grammar role it
// plays (operator, literal, keyword, structural, sentinel).
type Kind int

const (
	// ILLEGAL marks a character the lexer could not classify. The lexer
	// itself never emits ILLEGAL as a token in the stream handed to the
	// parser — invalid input is reported as a lexical error instead — but
	// the kind exists so internal helpers have a zero value to return.
	ILLEGAL Kind = iota
	END // end-of-input sentinel; exactly one terminates every token stream

	// Literals
	INT    // 42
	FLOAT  // 3.14
	CHAR   // 'a'
	STRING // "hello"
	IDENT  // x, foo, my_var

	// Keywords
	IF
	ELSE
	WHILE
	DO
	FOR
	RETURN
	BREAK
	CONTINUE
	INT_KW
	DOUBLE_KW
	FLOAT_KW
	CHAR_KW
	BOOL_KW
	VOID_KW
	SHORT_KW
	LONG_KW
	STRING_KW
	SIZEOF
	CONST
	UNSIGNED
	STATIC_ASSERT
	ASSERT
	EXIT
	STRUCT
	PRINT
	READ
	NAMESPACE

	// Single-character operators and punctuation
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	ASSIGN   // =
	BANG     // !
	LT       // <
	GT       // >
	AMP      // &
	QUESTION // ?
	COLON    // :
	SEMI     // ;
	COMMA    // ,
	DOT      // .
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]

	// Multi-character operators
	INC        // ++
	DEC        // --
	AND        // &&
	OR         // ||
	EQ         // ==
	NEQ        // !=
	GE         // >=
	LE         // <=
	PLUS_EQ    // +=
	MINUS_EQ   // -=
	STAR_EQ    // *=
	SLASH_EQ   // /=
	PERCENT_EQ // %=
	ARROW      // ->
	SCOPE      // ::

	// Comments (filtered from the stream the parser sees, never exposed)
	LINE_COMMENT
	BLOCK_COMMENT
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL", END: "EOF",
	INT: "INT", FLOAT: "FLOAT", CHAR: "CHAR", STRING: "STRING", IDENT: "IDENT",
	IF: "if", ELSE: "else", WHILE: "while", DO: "do", FOR: "for",
	RETURN: "return", BREAK: "break", CONTINUE: "continue",
	INT_KW: "int", DOUBLE_KW: "double", FLOAT_KW: "float", CHAR_KW: "char",
	BOOL_KW: "bool", VOID_KW: "void", SHORT_KW: "short", LONG_KW: "long",
	STRING_KW: "string",
	SIZEOF:    "sizeof", CONST: "const", UNSIGNED: "unsigned",
	STATIC_ASSERT: "static_assert", ASSERT: "assert", EXIT: "exit",
	STRUCT: "struct", PRINT: "print", READ: "read", NAMESPACE: "namespace",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	ASSIGN: "=", BANG: "!", LT: "<", GT: ">", AMP: "&", QUESTION: "?",
	COLON: ":", SEMI: ";", COMMA: ",", DOT: ".",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]",
	INC: "++", DEC: "--", AND: "&&", OR: "||", EQ: "==", NEQ: "!=",
	GE: ">=", LE: "<=", PLUS_EQ: "+=", MINUS_EQ: "-=", STAR_EQ: "*=",
	SLASH_EQ: "/=", PERCENT_EQ: "%=", ARROW: "->", SCOPE: "::",
	LINE_COMMENT: "//", BLOCK_COMMENT: "/*",
}

// String renders a Kind for diagnostics, e.g. "int" or "EOF".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved-word spellings to their Kind. Populated once and
// consulted by the lexer whenever it finishes scanning an identifier run.
var keywords = map[string]Kind{
	"if": IF, "else": ELSE, "while": WHILE, "do": DO, "for": FOR,
	"return": RETURN, "break": BREAK, "continue": CONTINUE,
	"int": INT_KW, "double": DOUBLE_KW, "float": FLOAT_KW, "char": CHAR_KW,
	"bool": BOOL_KW, "void": VOID_KW, "short": SHORT_KW, "long": LONG_KW,
	"string": STRING_KW,
	"sizeof":       SIZEOF,
	"const":        CONST,
	"unsigned":     UNSIGNED,
	"static_assert": STATIC_ASSERT,
	"assert":       ASSERT,
	"exit":         EXIT,
	"struct":       STRUCT,
	"print":        PRINT,
	"read":         READ,
	"namespace":    NAMESPACE,
}

// LookupIdent classifies an identifier-shaped run of characters: if it names
// a reserved word, its keyword Kind is returned; otherwise it is a plain
// IDENT.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// BuiltinTypeKeywords is the set of Kinds that start a builtin type name, used
// by the parser's isType lookahead.
var BuiltinTypeKeywords = map[Kind]bool{
	INT_KW: true, DOUBLE_KW: true, FLOAT_KW: true, CHAR_KW: true,
	BOOL_KW: true, VOID_KW: true, SHORT_KW: true, LONG_KW: true,
	STRING_KW: true,
}

// Token is a single lexical token: its Kind, the literal source text it was
// scanned from, and its source position. The reference grammar this
// language is drawn from carries no position information on Token; this
// implementation adds Line/Column, as spec.md invites, so diagnostics can
// name a location instead of only a lexeme.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

// New builds a Token with position information.
func New(kind Kind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

// String renders a Token for debugging, e.g. "+:+" or "x:IDENT".
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Lexeme, t.Kind)
}
