package formlang

func init() {
	registerReduce(ApplyHook, reduceApply)
}

// reduceApply handles the explicit `(apply operator . args)` form —
// the same dispatch reduceFormCall runs for a bare `(operator . args)`
// pair, exposed as its own hook for call sites that want to apply a
// value already held in a variable.
func reduceApply(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) == 0 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "apply requires an operator", At: at})
		return skipTerm(ctx)
	}
	call := NewPair(ctx, items[0], List(ctx, items[1:]...), int64(at))
	return reduceFormCall(ctx, call, layer)
}
