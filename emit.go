package formlang

import (
	"embed"
	"fmt"
)

//go:embed c/gcframe.c
var gcFrameRuntime embed.FS

// Emitter walks a reduced term tree and renders it as a single C
// translation unit, rendering one reduced term's control/data flow as C.
type Emitter struct {
	ctx        *Context
	out        *outputWriter
	namer      *cNamer
	frameDepth int
}

func NewEmitter(ctx *Context) *Emitter {
	return &Emitter{
		ctx:   ctx,
		out:   newOutputWriter("  "),
		namer: newCNamer(),
	}
}

// EmitUnit renders term (already fully Reduce'd and forward-resolved)
// as one C source string: the embedded GC-frame runtime, a prelude,
// and the unit's body inside a `unit_name` entry function.
func (e *Emitter) EmitUnit(term *Term) (string, error) {
	runtime, err := gcFrameRuntime.ReadFile("c/gcframe.c")
	if err != nil {
		return "", err
	}
	e.out.writel(string(runtime))
	e.out.writel("")

	unitName := sanitizeCIdent(e.ctx.Config.GetString("emit.unit_name"))
	e.out.writeil(fmt.Sprintf("int %s(void) {", unitName))
	e.out.indent()
	e.emitStatement(term)
	e.out.writeil("return 0;")
	e.out.unindent()
	e.out.writel("}")

	return e.out.buffer.String(), nil
}
