package formlang

func init() {
	registerEmitStmt(WithHook, emitWithFrame)
	registerEmitExpr(WithHook, emitWithFrameExpr)
}

// decodeFrameSlots reverses encodeFrameSlots, reading the Binder list a
// reduced WithHook node carries its markable slots in.
func decodeFrameSlots(slotList *Term) []frameSlot {
	binders := ListItems(slotList)
	slots := make([]frameSlot, len(binders))
	for i, b := range binders {
		slots[i] = frameSlot{key: b.BinderKey(), typ: b.BinderInfo()}
	}
	return slots
}

// emitWithFrame renders a `with` that bound at least one markable name
// as a nested C block: the frame opens before its body and closes
// after, so the collector sees the binding's lifetime exactly bracket
// the block the names are visible in.
func emitWithFrame(e *Emitter, t *Term) {
	items := ListItems(t.Cdr())
	slots, body := decodeFrameSlots(items[0]), items[1]

	e.out.writeil("{")
	e.out.indent()
	e.emitFrameOpen(slots)
	e.frameDepth++
	e.emitStatementValue(body)
	e.frameDepth--
	e.emitFrameClose()
	e.out.unindent()
	e.out.writel("}")
}

// emitWithFrameExpr renders a markable `with` used as a value rather
// than a statement: C has no block-scoped expression form, so only the
// inner value renders and the frame is dropped. A `with` needing GC
// marking is expected to appear in statement position (bound to a name
// by an enclosing with, or the tail of a procedure body), not nested
// inside an arithmetic expression.
func emitWithFrameExpr(e *Emitter, t *Term, parentPrec int) string {
	items := ListItems(t.Cdr())
	return e.emitExpr(items[1], parentPrec)
}
