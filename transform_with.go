package formlang

func init() {
	registerReduce(WithHook, reduceWith)
	registerReduce(ProgHook, reduceProg)
}

// reduceWith handles `(with (binder...) body)`: each binder is reduced
// in turn in a fresh equate layer seeded by the ones before it, then
// body is reduced in the fully-populated layer. A frame is opened
// around the whole binding group so bindMarked's slot registrations
// land in it rather than in whatever frame encloses this `with`; if any
// binding turned out markable, the result is wrapped back in a
// WithHook node carrying the slot list, so the emitter can reopen the
// same frame at the point this with's C block actually appears —
// ctx's own frame stack is long gone by emission time.
func reduceWith(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	bindings := ListItems(operands.Car())
	body := operands.Cdr().Car()

	var result *Term
	var slots []frameSlot
	ctx.WithFrame(func(f *rootFrame) {
		inner := PushLayer(KindEquate, layer)
		for _, b := range bindings {
			name := b.Car()
			valueExpr := b.Cdr().Car()
			reduced := Reduce(ctx, valueExpr, inner)
			bindMarked(ctx, inner, name, reduced.InferredType(), reduced.Cdr(), at)
		}
		result = Reduce(ctx, body, inner)
		slots = append([]frameSlot(nil), f.slots...)
	})
	if len(slots) == 0 {
		return result
	}
	node := NewHookPair(ctx, WithHook, List(ctx, encodeFrameSlots(ctx, slots), result.Cdr()))
	return NewTriple(ctx, node, node, result.InferredType())
}

// encodeFrameSlots renders a frame's slot list as a plain term list of
// Binders (key = bound name, value = its type) so it can travel inside
// the reduced tree from Reduce through to the Emitter, which has no
// other way to recover a closed frame's contents.
func encodeFrameSlots(ctx *Context, slots []frameSlot) *Term {
	items := make([]*Term, len(slots))
	for i, s := range slots {
		items[i] = NewBinder(ctx, s.key, s.typ, nil, notAttributed)
	}
	return List(ctx, items...)
}

// reduceProg reduces a sequence of forms for effect, returning a
// ProgHook-headed node listing every reduced value in order, typed by
// the last form; the emitter renders each value as a statement, in
// order — `(prog form...)`.
func reduceProg(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	forms := ListItems(operands)
	if len(forms) == 0 {
		return skipTerm(ctx)
	}
	values := make([]*Term, len(forms))
	var lastType *Term
	for i, f := range forms {
		reduced := Reduce(ctx, f, layer)
		values[i] = reduced.Cdr()
		lastType = reduced.InferredType()
	}
	node := NewHookPair(ctx, ProgHook, List(ctx, values...))
	return NewTriple(ctx, node, node, lastType)
}
