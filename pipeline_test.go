package formlang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/formlang/formlang"
	"github.com/formlang/formlang/internal/sexpr"
)

func TestCompile_SimpleArithmeticUnitEmitsC(t *testing.T) {
	ctx := NewContext()
	ctx.Config.SetString("emit.unit_name", "main_unit")

	file := FileID(0)
	unit, err := sexpr.Read(ctx, file, `(with ((x 2)) (int-add x 3))`)
	require.NoError(t, err)

	topLevel := PushLayer(KindPlain, nil)
	out, err := Compile(ctx, unit, topLevel)
	require.NoError(t, err)

	assert.Contains(t, out, "int main_unit(void) {")
	assert.Contains(t, out, "5;")
}

func TestCompile_WhileLoopEmitsCLoop(t *testing.T) {
	ctx := NewContext()
	file := FileID(0)
	unit, err := sexpr.Read(ctx, file, `(while 1 (int-add 1 1))`)
	require.NoError(t, err)

	topLevel := PushLayer(KindPlain, nil)
	out, err := Compile(ctx, unit, topLevel)
	require.NoError(t, err)
	assert.Contains(t, out, "while (1)")
}

func TestCompile_UnboundNameSurfacesAsError(t *testing.T) {
	ctx := NewContext()
	file := FileID(0)
	unit, err := sexpr.Read(ctx, file, `nowhere`)
	require.NoError(t, err)

	topLevel := PushLayer(KindPlain, nil)
	_, err = Compile(ctx, unit, topLevel)
	require.Error(t, err)
}
