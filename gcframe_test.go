package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RequestedOnEveryAlloc(t *testing.T) {
	ctx := NewContext()
	cc := &CountingCollector{}
	ctx.Collector = cc

	NewInteger(ctx, 1)
	NewInteger(ctx, 2)
	NewCharacter(ctx, 'x')

	assert.Equal(t, 3, cc.Requests)
}

func TestFrame_OpenCloseNesting(t *testing.T) {
	ctx := NewContext()
	name := Intern(ctx, "v", 0)

	outer := ctx.OpenFrame()
	ctx.MarkSlot(name, hookT(ctx, Int0Hook))
	assert.Equal(t, 1, ctx.FrameDepth())

	inner := ctx.OpenFrame()
	ctx.MarkSlot(Intern(ctx, "w", 0), hookT(ctx, Int0Hook))
	assert.Equal(t, 2, ctx.FrameDepth())

	ctx.CloseFrame(inner)
	assert.Equal(t, 1, ctx.FrameDepth())

	ctx.CloseFrame(outer)
	assert.Equal(t, 0, ctx.FrameDepth())
}

func TestFrame_WithFrameClosesOnPanic(t *testing.T) {
	ctx := NewContext()
	require.Panics(t, func() {
		ctx.WithFrame(func(f *rootFrame) {
			panic("boom")
		})
	})
	assert.Equal(t, 0, ctx.FrameDepth())
}

func TestFrame_CloseOutOfOrderHalts(t *testing.T) {
	ctx := NewContext()
	a := ctx.OpenFrame()
	_ = ctx.OpenFrame()
	assert.Panics(t, func() { ctx.CloseFrame(a) })
}
