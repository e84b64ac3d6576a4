package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCoercing_WidensCharToInt(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	assert.True(t, IsCoercing(ctx, layer, hookT(ctx, Char0Hook), hookT(ctx, Int2Hook)))
	assert.True(t, IsCoercing(ctx, layer, hookT(ctx, Int0Hook), hookT(ctx, Int2Hook)))
	assert.False(t, IsCoercing(ctx, layer, hookT(ctx, Int0Hook), hookT(ctx, Real0Hook)))
	assert.False(t, IsCoercing(ctx, layer, hookT(ctx, Real0Hook), hookT(ctx, Int0Hook)))
}

func TestIsCoerced_SameTypeAlwaysTrue(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	assert.True(t, IsCoerced(ctx, layer, hookT(ctx, Char0Hook), hookT(ctx, Char0Hook)))
}

func TestGroundCoerce_FoldsCharLiteralToInt(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	v := NewCharacter(ctx, 'a')
	folded := GroundCoerce(ctx, layer, v, hookT(ctx, Char0Hook), hookT(ctx, Int2Hook))
	assert.Equal(t, TagInt, folded.Tag())
	assert.Equal(t, int64('a'), folded.Int())
}

func TestCoerce_NonConstantWrapsInCastNode(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	x := Intern(ctx, "x", 0)

	coerced, typ, ok := Coerce(ctx, layer, x, hookT(ctx, Int0Hook), hookT(ctx, Int2Hook))
	require.True(t, ok)
	assert.Equal(t, Int2Hook, typ.HookValue())
	require.Equal(t, IntCastHook, coerced.Head())
	items := ListItems(coerced.Cdr())
	require.Len(t, items, 2)
	assert.Equal(t, Int2Hook, items[0].HookValue())
	assert.Same(t, x, items[1])
}

func TestCoerceOrHalt_RecordsErrorWhenNotCoercible(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	v := NewReal(ctx, 1.5)
	CoerceOrHalt(ctx, layer, v, hookT(ctx, Real0Hook), hookT(ctx, Int0Hook), 0)
	assert.False(t, ctx.Places.IsEmpty())
	assert.Equal(t, MnemonicNotCoercible, ctx.Places.Places()[0].Errors[0].Mnemonic)
}
