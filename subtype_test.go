package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hookT(ctx *Context, h *Hook) *Term { return NewHookTerm(ctx, h) }

func TestIsSubtype_SimpleIdentity(t *testing.T) {
	ctx := NewContext()
	l := PushLayer(KindPlain, nil)
	assert.True(t, IsSubtype(ctx, l, hookT(ctx, Int0Hook), hookT(ctx, Int0Hook)))
	assert.False(t, IsSubtype(ctx, l, hookT(ctx, Int0Hook), hookT(ctx, Real0Hook)))
}

func TestIsSubtype_Joker(t *testing.T) {
	ctx := NewContext()
	l := PushLayer(KindPlain, nil)
	assert.True(t, IsSubtype(ctx, l, hookT(ctx, Int0Hook), hookT(ctx, InjHook)))
	assert.False(t, IsSubtype(ctx, l, hookT(ctx, Real0Hook), hookT(ctx, InjHook)))
	assert.True(t, IsSubtype(ctx, l, hookT(ctx, Real1Hook), hookT(ctx, FojHook)))
}

func TestIsSubtype_RowCovariant(t *testing.T) {
	ctx := NewContext()
	l := PushLayer(KindPlain, nil)
	intRow := NewRowType(ctx, hookT(ctx, Int0Hook))
	objRow := NewRowType(ctx, hookT(ctx, ObjHook))
	assert.True(t, IsSubtype(ctx, l, intRow, objRow))
	assert.False(t, IsSubtype(ctx, l, objRow, intRow))
}

func TestIsSubtype_RefInvariant(t *testing.T) {
	ctx := NewContext()
	l := PushLayer(KindPlain, nil)
	intRef := NewRefType(ctx, hookT(ctx, Int0Hook))
	objRef := NewRefType(ctx, hookT(ctx, ObjHook))
	assert.False(t, IsSubtype(ctx, l, intRef, objRef))
}

func TestIsSubtype_ProcContravariantDomainCovariantRange(t *testing.T) {
	ctx := NewContext()
	l := PushLayer(KindPlain, nil)
	narrow := NewProcType(ctx, []*Term{hookT(ctx, ObjHook)}, hookT(ctx, Int0Hook))
	wide := NewProcType(ctx, []*Term{hookT(ctx, Int0Hook)}, hookT(ctx, ObjHook))
	assert.True(t, IsSubtype(ctx, l, narrow, wide))
	assert.False(t, IsSubtype(ctx, l, wide, narrow))
}

func TestIsSubtype_SelfReferentialRowTerminates(t *testing.T) {
	ctx := NewContext()
	l := PushLayer(KindPlain, nil)
	name := Intern(ctx, "Node", 0)
	row := NewRowType(ctx, name)
	l.Set(ctx, name, nil, row, notAttributed)
	// row's referent is `name`, which is bound to row itself; comparing
	// row to itself must terminate rather than loop forever. IsSubtype's
	// identity check returns before any structural walk of the referent.
	assert.True(t, IsSubtype(ctx, l, row, row))
}
