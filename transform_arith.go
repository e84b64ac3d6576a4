package formlang

func init() {
	registerReduce(IntAddHook, reduceIntBinop(IntAddHook, func(a, b int64) int64 { return a + b }))
	registerReduce(IntSubHook, reduceIntBinop(IntSubHook, func(a, b int64) int64 { return a - b }))
	registerReduce(IntMulHook, reduceIntBinop(IntMulHook, func(a, b int64) int64 { return a * b }))
}

// reduceIntBinop builds a handler for a binary int operator: both
// operands are reduced, coerced to a common width, and folded to a
// literal when both sides are already constants. hook is the operator
// this handler is registered under, so a non-folded result can be
// rebuilt as a genuinely hook-headed node for the emitter to dispatch
// on later.
func reduceIntBinop(hook *Hook, op func(a, b int64) int64) reduceHandler {
	return func(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
		items := ListItems(operands)
		if len(items) != 2 {
			ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "binary operator expects 2 operands", At: at})
			return skipTerm(ctx)
		}
		left := Reduce(ctx, items[0], layer)
		right := Reduce(ctx, items[1], layer)
		ty := widerIntType(left.InferredType(), right.InferredType())
		lv := CoerceOrHalt(ctx, layer, left.Cdr(), left.InferredType(), ty, at)
		rv := CoerceOrHalt(ctx, layer, right.Cdr(), right.InferredType(), ty, at)

		if lv.Tag() == TagInt && rv.Tag() == TagInt {
			folded := NewInteger(ctx, op(lv.Int(), rv.Int()))
			return NewTriple(ctx, folded, folded, ty)
		}
		applied := NewHookPair(ctx, hook, List(ctx, lv, rv))
		return NewTriple(ctx, applied, applied, ty)
	}
}

func widerIntType(a, b *Term) *Term {
	rank := map[*Hook]int{Int0Hook: 0, Int1Hook: 1, Int2Hook: 2}
	ar, aok := rank[a.HookValue()]
	br, bok := rank[b.HookValue()]
	if !aok {
		return b
	}
	if !bok {
		return a
	}
	if ar >= br {
		return a
	}
	return b
}
