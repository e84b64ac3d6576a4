package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntern_SameNameSameTerm(t *testing.T) {
	ctx := NewContext()
	a := Intern(ctx, "foo", 0)
	b := Intern(ctx, "foo", 0)
	assert.Same(t, a, b)

	c := Intern(ctx, "foo", 1)
	assert.NotSame(t, a, c)
}

func TestMakeStub_AlwaysFresh(t *testing.T) {
	ctx := NewContext()
	a := MakeStub(ctx, "x")
	b := MakeStub(ctx, "x")
	assert.NotSame(t, a, b)
	assert.True(t, a.IsStub())
	assert.True(t, b.IsStub())
}

func TestAppendString_DoesNotMutateOriginal(t *testing.T) {
	ctx := NewContext()
	s := NewString(ctx, "ab")
	s2 := AppendString(ctx, s, "cd")
	assert.Equal(t, "ab", s.StringValue())
	assert.Equal(t, "abcd", s2.StringValue())
}

func TestListAndListItems_RoundTrip(t *testing.T) {
	ctx := NewContext()
	a, b, c := NewInteger(ctx, 1), NewInteger(ctx, 2), NewInteger(ctx, 3)
	list := List(ctx, a, b, c)
	items := ListItems(list)
	assert.Equal(t, []*Term{a, b, c}, items)
}

func TestIsPairHeaded(t *testing.T) {
	ctx := NewContext()
	p := NewHookPair(ctx, RefHook, List(ctx, NewHookTerm(ctx, Int0Hook)))
	assert.True(t, p.IsPairHeaded(RefHook))
	assert.False(t, p.IsPairHeaded(RowHook))
	assert.Equal(t, RefHook, p.Head())
}
