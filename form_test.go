package formlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_PicksFirstMatchingMember(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)

	intMember := &Member{Type: NewProcType(ctx, []*Term{hookT(ctx, Int0Hook)}, hookT(ctx, Int0Hook))}
	realMember := &Member{Type: NewProcType(ctx, []*Term{hookT(ctx, Real0Hook)}, hookT(ctx, Real0Hook))}
	form := &Form{Members: []*Member{intMember, realMember}}

	chosen, err := Apply(ctx, form, nil, []*Term{hookT(ctx, Int0Hook)}, layer, 0)
	require.NoError(t, err)
	assert.Same(t, intMember, chosen)
}

func TestApply_NoApplicableMemberErrors(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	member := &Member{Type: NewProcType(ctx, []*Term{hookT(ctx, Int0Hook)}, hookT(ctx, Int0Hook))}
	form := &Form{Members: []*Member{member}}

	_, err := Apply(ctx, form, nil, []*Term{hookT(ctx, ObjHook)}, layer, 5)
	require.Error(t, err)
	objErr := err.(ObjectError)
	assert.Equal(t, MnemonicNoApplicableMember, objErr.Mnemonic)
}

func TestSubsumes_CoveredWhenEveryOtherMemberHasABroaderCounterpart(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	broad := &Form{Members: []*Member{
		{Type: NewProcType(ctx, []*Term{hookT(ctx, ObjHook)}, hookT(ctx, Int0Hook))},
	}}
	narrow := &Form{Members: []*Member{
		{Type: NewProcType(ctx, []*Term{hookT(ctx, Int0Hook)}, hookT(ctx, Int0Hook))},
	}}
	assert.True(t, Subsumes(ctx, broad, narrow, layer))
	assert.False(t, Subsumes(ctx, narrow, broad, layer))
}

func TestConcatenate_LaterMembersTakePrecedence(t *testing.T) {
	ctx := NewContext()
	layer := PushLayer(KindPlain, nil)
	earlier := &Form{Members: []*Member{
		{Type: NewProcType(ctx, []*Term{hookT(ctx, Int0Hook)}, hookT(ctx, Int0Hook))},
	}}
	later := &Form{Members: []*Member{
		{Type: NewProcType(ctx, []*Term{hookT(ctx, ObjHook)}, hookT(ctx, Int0Hook))},
	}}
	result := Concatenate(ctx, earlier, later, layer)
	// earlier's member is subsumed by later's broader member, so it is
	// dropped rather than appended redundantly.
	assert.Len(t, result.Members, 1)
	assert.Same(t, later.Members[0], result.Members[0])
}
