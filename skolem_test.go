package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkolemize_ReplacesQuantifierWithFreshWitness(t *testing.T) {
	ctx := NewContext()
	a := Intern(ctx, "a", 0)
	genType := NewGenType(ctx, a, NewRefType(ctx, a))

	sko1 := Skolemize(ctx, genType)
	sko2 := Skolemize(ctx, genType)

	require.True(t, sko1.Head() == SkoHook)
	witness1 := QuantifierName(sko1)
	witness2 := QuantifierName(sko2)
	assert.NotSame(t, witness1, witness2, "two skolemizations of the same gen type must mint distinct witnesses")

	body1 := QuantifierBody(sko1)
	assert.Same(t, witness1, TypeReferent(body1), "the witness must replace every free occurrence of the quantifier")
}

func TestIsSkolemizable(t *testing.T) {
	ctx := NewContext()
	a := Intern(ctx, "a", 0)
	assert.True(t, IsSkolemizable(NewGenType(ctx, a, hookT(ctx, Int0Hook))))
	assert.False(t, IsSkolemizable(hookT(ctx, Int0Hook)))
}

func TestSkolemize_NonGenPassesThrough(t *testing.T) {
	ctx := NewContext()
	ty := hookT(ctx, Int0Hook)
	assert.Same(t, ty, Skolemize(ctx, ty))
}
