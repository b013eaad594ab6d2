package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/ast"
)

func TestParseSource_SimpleVarDecl(t *testing.T) {
	tu, diags, err := ParseSource("int x = 5;")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	require.Len(t, tu.Decls, 1)

	vd, ok := tu.Decls[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "int", vd.Type.Name)
	require.Len(t, vd.Declarators, 1)
	assert.Equal(t, "x", vd.Declarators[0].Declarator.Name)
	require.NotNil(t, vd.Declarators[0].Initializer)
}

func TestParseSource_MultiDeclarator(t *testing.T) {
	tu, diags, err := ParseSource("int a, b = 2, c;")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	require.Len(t, tu.Decls, 1)
	vd := tu.Decls[0].(*ast.VarDecl)
	require.Len(t, vd.Declarators, 3)
	assert.Equal(t, "a", vd.Declarators[0].Declarator.Name)
	assert.Nil(t, vd.Declarators[0].Initializer)
	assert.Equal(t, "b", vd.Declarators[1].Declarator.Name)
	require.NotNil(t, vd.Declarators[1].Initializer)
	assert.Equal(t, "c", vd.Declarators[2].Declarator.Name)
}

func TestParseSource_FuncDeclWithBody(t *testing.T) {
	src := `int add(int a, int b) { return a + b; }`
	tu, diags, err := ParseSource(src)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	require.Len(t, tu.Decls, 1)

	fd, ok := tu.Decls[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fd.Name)
	assert.Equal(t, "int", fd.ReturnType.Name)
	require.Len(t, fd.Params, 2)
	require.NotNil(t, fd.Body)
	require.Len(t, fd.Body.Stmts, 1)

	ret, ok := fd.Body.Stmts[0].(*ast.Return)
	require.True(t, ok)
	require.NotNil(t, ret.Value)
	bin, ok := ret.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParseSource_FuncPrototypeHasNilBody(t *testing.T) {
	tu, diags, err := ParseSource("int foo(int x);")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	fd := tu.Decls[0].(*ast.FuncDecl)
	assert.Nil(t, fd.Body)
}

func TestParseSource_StructDecl(t *testing.T) {
	src := `struct Point { int x; int y; };`
	tu, diags, err := ParseSource(src)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	sd, ok := tu.Decls[0].(*ast.StructDecl)
	require.True(t, ok)
	assert.Equal(t, "Point", sd.Name)
	require.Len(t, sd.Members, 2)
}

func TestParseSource_StructNameUsableAsTypeAfterDecl(t *testing.T) {
	src := `struct Point { int x; }; Point p;`
	tu, diags, err := ParseSource(src)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	require.Len(t, tu.Decls, 2)
	vd, ok := tu.Decls[1].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "Point", vd.Type.Name)
}

func TestParseSource_NamespaceDecl(t *testing.T) {
	src := `namespace math { int square(int x) { return x * x; } }`
	tu, diags, err := ParseSource(src)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	nd, ok := tu.Decls[0].(*ast.NamespaceDecl)
	require.True(t, ok)
	assert.Equal(t, "math", nd.Name)
	require.Len(t, nd.Decls, 1)
}

func TestParseSource_IfWhileForStatements(t *testing.T) {
	src := `int f() {
		if (1) { return 1; } else { return 0; }
		while (1) { break; }
		for (int i = 0; i < 10; i = i + 1) { continue; }
		return 0;
	}`
	tu, diags, err := ParseSource(src)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	fd := tu.Decls[0].(*ast.FuncDecl)
	require.Len(t, fd.Body.Stmts, 4)

	ifStmt, ok := fd.Body.Stmts[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)

	whileStmt, ok := fd.Body.Stmts[1].(*ast.While)
	require.True(t, ok)
	require.NotNil(t, whileStmt.Body)

	forStmt, ok := fd.Body.Stmts[2].(*ast.For)
	require.True(t, ok)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Cond)
	require.NotNil(t, forStmt.Increment)
}

func TestParseSource_TernaryAndCastPrecedence(t *testing.T) {
	tu, diags, err := ParseSource("int x = (1 < 2) ? 1 : (int) 3.5;")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	vd := tu.Decls[0].(*ast.VarDecl)
	tern, ok := vd.Declarators[0].Initializer.(*ast.Ternary)
	require.True(t, ok)
	_, isCast := tern.Else.(*ast.Cast)
	assert.True(t, isCast)
}

func TestParseSource_CallSubscriptMemberChain(t *testing.T) {
	tu, diags, err := ParseSource("int y = f(a, b)[0].field;")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	vd := tu.Decls[0].(*ast.VarDecl)
	ma, ok := vd.Declarators[0].Initializer.(*ast.MemberAccess)
	require.True(t, ok)
	assert.Equal(t, "field", ma.Member)
	sub, ok := ma.Object.(*ast.Subscript)
	require.True(t, ok)
	call, ok := sub.Array.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestParseSource_ScopedIdentifier(t *testing.T) {
	tu, diags, err := ParseSource("int x = math::square(2);")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	vd := tu.Decls[0].(*ast.VarDecl)
	call := vd.Declarators[0].Initializer.(*ast.Call)
	si, ok := call.Callee.(*ast.ScopedIdentifier)
	require.True(t, ok)
	assert.Equal(t, []string{"math", "square"}, si.Path)
}

// RecoversAfterSyntaxError is the spec.md §8 scenario 6 shape: a
// malformed declaration (missing initializer expression before the ';')
// followed by a well-formed one. The parser should report a syntactic error
// but still recover and parse the remaining declaration.
func TestParseSource_RecoversAfterSyntaxError(t *testing.T) {
	src := "int a = ; int b = 1;"
	tu, diags, err := ParseSource(src)
	require.NoError(t, err)
	require.True(t, diags.HasErrors())

	found := false
	for _, d := range tu.Decls {
		if vd, ok := d.(*ast.VarDecl); ok && vd.Declarators[0].Declarator.Name == "b" {
			found = true
		}
	}
	assert.True(t, found, "parser should recover and still parse `int b = 1;`")
}

func TestParseSource_ArrayDeclaratorWithSize(t *testing.T) {
	tu, diags, err := ParseSource("int arr[10];")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	vd := tu.Decls[0].(*ast.VarDecl)
	require.NotNil(t, vd.Declarators[0].Declarator.ArraySize)
}

func TestParseSource_InitListAssignment(t *testing.T) {
	tu, diags, err := ParseSource("int arr[3] = {1, 2, 3};")
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	vd := tu.Decls[0].(*ast.VarDecl)
	il, ok := vd.Declarators[0].Initializer.(*ast.InitList)
	require.True(t, ok)
	require.Len(t, il.Elements, 3)
}

func TestParseSource_PrintReadStaticAssert(t *testing.T) {
	src := `int f() {
		int x = 1;
		print(x);
		read(x);
		static_assert(1, "must hold");
		return 0;
	}`
	tu, diags, err := ParseSource(src)
	require.NoError(t, err)
	require.False(t, diags.HasErrors())
	fd := tu.Decls[0].(*ast.FuncDecl)
	_, isPrint := fd.Body.Stmts[1].(*ast.Print)
	assert.True(t, isPrint)
	_, isRead := fd.Body.Stmts[2].(*ast.Read)
	assert.True(t, isRead)
	_, isAssert := fd.Body.Stmts[3].(*ast.StaticAssert)
	assert.True(t, isAssert)
}
