package formlang

// MakeForwardRef builds a ref[T] (or row[T] via rowKind) type term
// whose referent name isn't bound yet — the shape a recursive type
// definition's body takes on first mention of its own name — and
// queues it on ctx.Bases for ResolveForwardPointers to patch once the
// name is bound.
func MakeForwardRef(ctx *Context, rowKind bool, baseName *Term) *Term {
	hook := RefHook
	if rowKind {
		hook = RowHook
	}
	t := NewHookPair(ctx, hook, List(ctx, baseName))
	t.baseName = baseName
	t.forwardNext = nil
	ctx.Bases = append(ctx.Bases, t)
	return t
}

// ResolveForwardPointers walks every forwarded pointer type queued in
// ctx.Bases and patches its referent slot with baseName's bound value
// from layer, recording an ObjectError with MnemonicUnforwardedPointer
// in ctx.Places for any name that is still unbound once loading has
// finished.
func ResolveForwardPointers(ctx *Context, layer *Layer) {
	for _, t := range ctx.Bases {
		_, value, ok := layer.TryGet(t.baseName)
		if !ok {
			ctx.Places.Record(ObjectError{
				Mnemonic: MnemonicUnforwardedPointer,
				Message:  "unresolved forward reference: " + t.baseName.Printable(),
				At:       CharCount(t.baseName.Info()),
			})
			continue
		}
		t.cdr = List(ctx, value)
	}
	ctx.Bases = nil
}

// QueueProcedure defers a form member's body for expansion until after
// every forward pointer in the current load has resolved, so a
// recursive procedure can refer to a type still being forward-declared
// when the procedure itself was parsed.
func QueueProcedure(ctx *Context, member *Member, layer *Layer) {
	ctx.ProcQueue = append(ctx.ProcQueue, &procEntry{closureMember: member, boundLayer: layer})
}

// ExpandProcedures reduces every queued procedure body in its bound
// layer, draining ctx.ProcQueue. Expansion may itself queue further
// procedures (a procedure whose body defines a nested form), so this
// loops until the queue is empty rather than assuming one pass
// suffices.
func ExpandProcedures(ctx *Context) {
	for len(ctx.ProcQueue) > 0 {
		entry := ctx.ProcQueue[0]
		ctx.ProcQueue = ctx.ProcQueue[1:]
		ctx.WithFrame(func(f *rootFrame) {
			entry.closureMember.Body = Reduce(ctx, entry.closureMember.Body, entry.boundLayer)
		})
	}
}
