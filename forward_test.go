package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardRef_ResolvesOnceNameIsBound(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	name := Intern(ctx, "list_node", 0)

	fwd := MakeForwardRef(ctx, false, name)
	assert.Equal(t, RefHook, fwd.Head())
	assert.Len(t, ctx.Bases, 1)

	layer.Set(ctx, name, hookT(ctx, Int0Hook), hookT(ctx, Int0Hook), notAttributed)
	ResolveForwardPointers(ctx, layer)

	assert.True(t, ctx.Places.IsEmpty())
	assert.Empty(t, ctx.Bases)
	assert.Equal(t, Int0Hook, fwd.Cdr().Car().HookValue())
}

func TestForwardRef_StillUnboundRecordsError(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	name := Intern(ctx, "never_bound", 0)

	MakeForwardRef(ctx, true, name)
	ResolveForwardPointers(ctx, layer)

	assert.False(t, ctx.Places.IsEmpty())
	assert.Empty(t, ctx.Bases)
}

func TestExpandProcedures_DrainsQueue(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)

	inner := &Member{Body: NewInteger(ctx, 1)}
	outer := &Member{Body: NewInteger(ctx, 2)}

	QueueProcedure(ctx, inner, layer)
	QueueProcedure(ctx, outer, layer)

	require.Len(t, ctx.ProcQueue, 2)
	ExpandProcedures(ctx)

	assert.Empty(t, ctx.ProcQueue)
	assert.Equal(t, TagTriple, inner.Body.Tag())
	assert.Equal(t, TagTriple, outer.Body.Tag())
}
