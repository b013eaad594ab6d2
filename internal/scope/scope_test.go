package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumen/internal/types"
)

var intType = &types.Builtin{Name: "int"}
var boolType = &types.Builtin{Name: "bool"}

func TestDeclareAndLookup(t *testing.T) {
	s := New(nil)
	assert.True(t, s.Declare("x", intType))
	got, ok := s.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, intType, got)
}

func TestDeclareRejectsLocalRedeclaration(t *testing.T) {
	s := New(nil)
	require := assert.New(t)
	require.True(s.Declare("x", intType))
	require.False(s.Declare("x", boolType))

	got, _ := s.Lookup("x")
	require.Same(intType, got, "first declaration must win")
}

func TestLookupWalksToParent(t *testing.T) {
	parent := New(nil)
	parent.Declare("outer", intType)
	child := New(parent)

	got, ok := child.Lookup("outer")
	assert.True(t, ok)
	assert.Same(t, intType, got)
}

func TestLookupLocalDoesNotSeeParent(t *testing.T) {
	parent := New(nil)
	parent.Declare("outer", intType)
	child := New(parent)

	_, ok := child.LookupLocal("outer")
	assert.False(t, ok)
}

func TestInnerDeclarationShadowsOuter(t *testing.T) {
	parent := New(nil)
	parent.Declare("x", intType)
	child := New(parent)
	child.Declare("x", boolType)

	got, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, boolType, got, "inner declaration must shadow the outer one")

	// The outer scope is untouched.
	outerGot, _ := parent.Lookup("x")
	assert.Same(t, intType, outerGot)
}

func TestLookupMissingNameFails(t *testing.T) {
	s := New(nil)
	_, ok := s.Lookup("nope")
	assert.False(t, ok)
}

func TestGuardPushesAndPopsCurrent(t *testing.T) {
	var cur *Scope
	root := New(nil)
	cur = root

	guard := Enter(&cur)
	assert.NotSame(t, root, cur)
	assert.Same(t, guard.Current(), cur)

	cur.Declare("inner", intType)
	guard.Close()

	assert.Same(t, root, cur)
	_, ok := cur.Lookup("inner")
	assert.False(t, ok, "popping the guard must restore the parent scope")
}

func TestGuardClosesEvenAfterPanic(t *testing.T) {
	var cur *Scope
	root := New(nil)
	cur = root

	func() {
		defer func() { recover() }()
		guard := Enter(&cur)
		defer guard.Close()
		panic("boom")
	}()

	assert.Same(t, root, cur, "a deferred guard.Close must run even when the enclosing work panics")
}
