package formlang

// bindMarked sets a binding in layer and, if its type is markable,
// registers a GC root slot for it in the current frame. reduceWith is
// its only caller: procedure parameters (reduceProc, applyMember) and
// cells bind through Layer.Set directly and never register a slot.
func bindMarked(ctx *Context, layer *Layer, name, typ, value *Term, at CharCount) {
	layer.Set(ctx, name, typ, value, int64(at))
	if ctx.Config.GetBool("transform.gc_marking") && IsMarkable(ctx, typ, layer) {
		ctx.MarkSlot(name, typ)
	}
}
