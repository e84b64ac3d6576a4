package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AdjoinMember(t *testing.T) {
	s := NewSet()
	assert.False(t, s.Member(5))
	s = s.Adjoin(5)
	assert.True(t, s.Member(5))
	assert.False(t, s.Member(64))
	s = s.Adjoin(200)
	assert.True(t, s.Member(200))
}

func TestSet_Remove(t *testing.T) {
	s := NewSet().Adjoin(3).Adjoin(70)
	s = s.Remove(3)
	assert.False(t, s.Member(3))
	assert.True(t, s.Member(70))
}

func TestSet_UnionDifferenceSubset(t *testing.T) {
	a := NewSet().Adjoin(1).Adjoin(2)
	b := NewSet().Adjoin(2).Adjoin(3)

	union := a.Union(b)
	assert.True(t, union.Member(1))
	assert.True(t, union.Member(2))
	assert.True(t, union.Member(3))

	diff := a.Difference(b)
	assert.True(t, diff.Member(1))
	assert.False(t, diff.Member(2))

	assert.True(t, a.Subset(union))
	assert.False(t, union.Subset(a))
}

func TestSet_IsEmpty(t *testing.T) {
	s := NewSet()
	assert.True(t, s.IsEmpty())
	s = s.Adjoin(130)
	assert.False(t, s.IsEmpty())
}
