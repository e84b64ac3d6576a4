package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(ctx *Context, h *Hook, args ...*Term) *Term {
	return NewHookPair(ctx, h, List(ctx, args...))
}

func TestReduce_LiteralsCarryTheirOwnType(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	triple := Reduce(ctx, NewInteger(ctx, 9), layer)
	assert.Equal(t, Int0Hook, triple.InferredType().HookValue())
}

func TestReduce_IntAddFoldsConstants(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	expr := call(ctx, IntAddHook, NewInteger(ctx, 2), NewInteger(ctx, 3))
	triple := Reduce(ctx, expr, layer)
	require.Equal(t, TagInt, triple.Cdr().Tag())
	assert.Equal(t, int64(5), triple.Cdr().Int())
}

func TestReduce_IntAddWidensToWiderOperand(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	wide := Intern(ctx, "wide", 0)
	layer.Set(ctx, wide, hookT(ctx, Int2Hook), NewInteger(ctx, 100), notAttributed)
	expr := call(ctx, IntAddHook, NewInteger(ctx, 2), wide)
	triple := Reduce(ctx, expr, layer)
	assert.Equal(t, Int2Hook, triple.InferredType().HookValue())
}

func TestReduce_UnboundNameRecordsErrorAndSkips(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	name := Intern(ctx, "nowhere", 0)
	triple := Reduce(ctx, name, layer)
	assert.False(t, ctx.Places.IsEmpty())
	assert.Equal(t, SkipHook, triple.Cdr().HookValue())
}

func TestReduce_WithBindsNamesForBody(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	x := Intern(ctx, "x", 0)
	binding := List(ctx, NewPair(ctx, x, List(ctx, NewInteger(ctx, 4)), notAttributed))
	withExpr := NewHookPair(ctx, WithHook, NewPair(ctx, binding, List(ctx, x), notAttributed))

	triple := Reduce(ctx, withExpr, layer)
	assert.Equal(t, int64(4), triple.Cdr().Int())
}

func TestReduce_IfPicksEmittableTernaryShape(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	expr := call(ctx, IfHook, NewInteger(ctx, 1), NewInteger(ctx, 10), NewInteger(ctx, 20))
	triple := Reduce(ctx, expr, layer)
	assert.Equal(t, IfHook, triple.Cdr().Head())
}

func TestReduce_CellRoundTrip(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	x := Intern(ctx, "c", 0)

	makeExpr := call(ctx, CellMakeHook, NewInteger(ctx, 1))
	made := Reduce(ctx, makeExpr, layer)
	layer.Set(ctx, x, made.InferredType(), made.Cdr(), notAttributed)

	setExpr := call(ctx, CellSetHook, x, NewInteger(ctx, 9))
	setTriple := Reduce(ctx, setExpr, layer)
	assert.Equal(t, VoidHook, setTriple.InferredType().HookValue())

	getExpr := call(ctx, CellGetHook, x)
	getTriple := Reduce(ctx, getExpr, layer)
	assert.Equal(t, Int0Hook, getTriple.InferredType().HookValue())
}
