package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCIdent_ReplacesIllegalCharsAndLeadingDigits(t *testing.T) {
	assert.Equal(t, "_9lives", sanitizeCIdent("9lives"))
	assert.Equal(t, "x_y", sanitizeCIdent("x-y"))
	assert.Equal(t, "_", sanitizeCIdent("!"))
	assert.Equal(t, "X", sanitizeCIdent(""))
}

func TestCNamer_SameTermAlwaysGetsSameName(t *testing.T) {
	ctx := NewContext()
	namer := newCNamer()
	x := Intern(ctx, "x", 0)

	first := namer.Name(x)
	second := namer.Name(x)
	assert.Equal(t, first, second)
}

func TestCNamer_DistinctStubsWithSamePrintableNameGetDistinctNames(t *testing.T) {
	ctx := NewContext()
	namer := newCNamer()
	a := MakeStub(ctx, "tmp")
	b := MakeStub(ctx, "tmp")

	nameA := namer.Name(a)
	nameB := namer.Name(b)
	assert.NotEqual(t, nameA, nameB)
}

func TestCNamer_ReservedWordGetsDisambiguated(t *testing.T) {
	ctx := NewContext()
	namer := newCNamer()
	forName := Intern(ctx, "for", 0)
	assert.Equal(t, "for_", namer.Name(forName))
}
