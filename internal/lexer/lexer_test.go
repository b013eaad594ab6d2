package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/token"
)

// tokenCase mirrors the teacher lexer's table-driven test shape: a source
// string paired with the kinds/lexemes expected, END included.
type tokenCase struct {
	Input    string
	Expected []token.Token
}

func TestTokenize_OperatorsAndLiterals(t *testing.T) {
	tests := []tokenCase{
		{
			Input: "1 + 2 * 31",
			Expected: []token.Token{
				{Kind: token.INT, Lexeme: "1"},
				{Kind: token.PLUS, Lexeme: "+"},
				{Kind: token.INT, Lexeme: "2"},
				{Kind: token.STAR, Lexeme: "*"},
				{Kind: token.INT, Lexeme: "31"},
				{Kind: token.END, Lexeme: ""},
			},
		},
		{
			Input: "a <= b && c != d",
			Expected: []token.Token{
				{Kind: token.IDENT, Lexeme: "a"},
				{Kind: token.LE, Lexeme: "<="},
				{Kind: token.IDENT, Lexeme: "b"},
				{Kind: token.AND, Lexeme: "&&"},
				{Kind: token.IDENT, Lexeme: "c"},
				{Kind: token.NEQ, Lexeme: "!="},
				{Kind: token.IDENT, Lexeme: "d"},
				{Kind: token.END, Lexeme: ""},
			},
		},
		{
			Input: "x->y.z :: w",
			Expected: []token.Token{
				{Kind: token.IDENT, Lexeme: "x"},
				{Kind: token.ARROW, Lexeme: "->"},
				{Kind: token.IDENT, Lexeme: "y"},
				{Kind: token.DOT, Lexeme: "."},
				{Kind: token.IDENT, Lexeme: "z"},
				{Kind: token.SCOPE, Lexeme: "::"},
				{Kind: token.IDENT, Lexeme: "w"},
				{Kind: token.END, Lexeme: ""},
			},
		},
	}

	for _, tc := range tests {
		toks, err := Tokenize(tc.Input)
		require.NoError(t, err, tc.Input)
		require.Len(t, toks, len(tc.Expected), tc.Input)
		for i, want := range tc.Expected {
			assert.Equal(t, want.Kind, toks[i].Kind, "token %d of %q", i, tc.Input)
			assert.Equal(t, want.Lexeme, toks[i].Lexeme, "token %d of %q", i, tc.Input)
		}
	}
}

func TestTokenize_KeywordsVsIdentifiers(t *testing.T) {
	toks, err := Tokenize("int x = 5; if (x) return;")
	require.NoError(t, err)
	kinds := make([]token.Kind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	assert.Equal(t, []token.Kind{
		token.INT_KW, token.IDENT, token.ASSIGN, token.INT, token.SEMI,
		token.IF, token.LPAREN, token.IDENT, token.RPAREN, token.RETURN, token.SEMI,
		token.END,
	}, kinds)
}

func TestTokenize_CommentsAreFiltered(t *testing.T) {
	toks, err := Tokenize("1 // a line comment\n+ /* a block\ncomment */ 2")
	require.NoError(t, err)
	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT, token.END}, kinds)
}

func TestTokenize_FloatVsIntLiteral(t *testing.T) {
	toks, err := Tokenize("3.14 42 .5")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Lexeme)
	assert.Equal(t, token.INT, toks[1].Kind)
	// A leading '.' is not part of a literal — it scans as DOT then digits.
	assert.Equal(t, token.DOT, toks[2].Kind)
}

func TestTokenize_EndsWithExactlyOneEnd(t *testing.T) {
	toks, err := Tokenize("int x;")
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.END, toks[len(toks)-1].Kind)
	for _, tk := range toks[:len(toks)-1] {
		assert.NotEqual(t, token.END, tk.Kind)
	}
}

// ---- boundary behaviors from spec.md §8 ----

func TestTokenize_EmptyCharLiteralIsError(t *testing.T) {
	_, err := Tokenize("''")
	require.Error(t, err)
}

func TestTokenize_MultiCharLiteralIsError(t *testing.T) {
	_, err := Tokenize("'ab'")
	require.Error(t, err)
}

func TestTokenize_UnknownEscapeIsError(t *testing.T) {
	_, err := Tokenize(`'\q'`)
	require.Error(t, err)
}

func TestTokenize_UnterminatedStringIsError(t *testing.T) {
	_, err := Tokenize(`"abc`)
	require.Error(t, err)
}

func TestTokenize_UnterminatedBlockCommentIsError(t *testing.T) {
	_, err := Tokenize("/* unterminated")
	require.Error(t, err)
}

func TestTokenize_StrayBlockCommentCloseIsError(t *testing.T) {
	_, err := Tokenize("1 */ 2")
	require.Error(t, err)
}

func TestTokenize_DigitLeadingNameIsNotAnIdentifier(t *testing.T) {
	toks, err := Tokenize("9abc")
	require.NoError(t, err)
	// Scans as an integer literal "9" followed by an identifier "abc", never
	// as one identifier token.
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, "9", toks[0].Lexeme)
	assert.Equal(t, token.IDENT, toks[1].Kind)
	assert.Equal(t, "abc", toks[1].Lexeme)
}

func TestTokenize_ValidEscapesDecode(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc"`)
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, "a\nb\tc", toks[0].Lexeme)
}

func TestTokenize_PositionsAdvanceAcrossLines(t *testing.T) {
	toks, err := Tokenize("int x;\nint y;")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(toks), 7)
	assert.Equal(t, 1, toks[0].Line)
	// the ";" that ends the second line
	secondLineTok := toks[5]
	assert.Equal(t, 2, secondLineTok.Line)
}
