package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayer_SetGetInnermost(t *testing.T) {
	ctx := NewContext()
	name := Intern(ctx, "x", 0)
	l := PushLayer(KindPlain, nil)
	l.Set(ctx, name, NewHookTerm(ctx, Int0Hook), NewInteger(ctx, 42), notAttributed)

	info, value, err := l.Get(name, 0)
	require.NoError(t, err)
	assert.Equal(t, Int0Hook, info.HookValue())
	assert.Equal(t, int64(42), value.Int())
}

func TestLayer_ChainLookupFindsOuter(t *testing.T) {
	ctx := NewContext()
	name := Intern(ctx, "y", 0)
	outer := PushLayer(KindPlain, nil)
	outer.Set(ctx, name, NewHookTerm(ctx, Int0Hook), NewInteger(ctx, 7), notAttributed)

	inner := PushLayer(KindEquate, outer)
	_, value, ok := inner.TryGet(name)
	require.True(t, ok)
	assert.Equal(t, int64(7), value.Int())
}

func TestLayer_InIsInnermostOnly(t *testing.T) {
	ctx := NewContext()
	name := Intern(ctx, "z", 0)
	outer := PushLayer(KindPlain, nil)
	outer.Set(ctx, name, nil, NewInteger(ctx, 1), notAttributed)
	inner := PushLayer(KindEquate, outer)

	assert.False(t, inner.In(name))
	assert.True(t, outer.In(name))
}

func TestLayer_UnboundNameErrors(t *testing.T) {
	ctx := NewContext()
	name := Intern(ctx, "missing", 0)
	l := PushLayer(KindPlain, nil)
	_, _, err := l.Get(name, 0)
	require.Error(t, err)
	objErr, ok := err.(ObjectError)
	require.True(t, ok)
	assert.Equal(t, MnemonicUnboundName, objErr.Mnemonic)
}

func TestLayer_ManyBindersStayBalanced(t *testing.T) {
	ctx := NewContext()
	l := PushLayer(KindPlain, nil)
	names := make([]*Term, 0, 200)
	for i := 0; i < 200; i++ {
		n := MakeStub(ctx, "n")
		names = append(names, n)
		l.Set(ctx, n, nil, NewInteger(ctx, int64(i)), notAttributed)
	}
	for i, n := range names {
		_, value, ok := l.TryGet(n)
		require.True(t, ok)
		assert.Equal(t, int64(i), value.Int())
	}
	// An AVL tree holding 200 nodes is at most 10 levels high.
	assert.LessOrEqual(t, int(nodeHeight(l.root)), 10)
}
