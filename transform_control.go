package formlang

func init() {
	registerReduce(IfHook, reduceIf)
	registerReduce(WhileHook, reduceWhile)
	registerReduce(LastHook, reduceLast)
	registerReduce(SkipHook, reduceSkip)
	registerReduce(CaseHook, reduceCase)
}

// reduceIf handles `(if cond then else)`. cond must coerce to int0
// (the core's boolean); both branches are reduced so type errors in a
// dead branch still surface, favoring diagnostics-first reporting over short-circuiting.
func reduceIf(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) != 3 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "if expects 3 operands", At: at})
		return skipTerm(ctx)
	}
	cond := Reduce(ctx, items[0], layer)
	then := Reduce(ctx, items[1], layer)
	els := Reduce(ctx, items[2], layer)
	coercedCond := CoerceOrHalt(ctx, layer, cond.Cdr(), cond.InferredType(), NewHookTerm(ctx, Int0Hook), at)

	node := NewHookPair(ctx, IfHook, List(ctx, coercedCond, then.Cdr(), els.Cdr()))
	return NewTriple(ctx, node, node, then.InferredType())
}

// reduceWhile handles `(while cond body)`, always typed void.
func reduceWhile(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) != 2 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "while expects 2 operands", At: at})
		return skipTerm(ctx)
	}
	cond := Reduce(ctx, items[0], layer)
	body := Reduce(ctx, items[1], layer)
	node := NewHookPair(ctx, WhileHook, List(ctx, cond.Cdr(), body.Cdr()))
	return NewTriple(ctx, node, node, NewHookTerm(ctx, VoidHook))
}

// reduceLast returns its only operand's value unchanged — the
// identity form used to force a procedure's tail position (Glossary
// "last").
func reduceLast(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	return Reduce(ctx, operands.Car(), layer)
}

// reduceSkip is the no-op form void-typed skip itself reduces to.
func reduceSkip(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	return skipTerm(ctx)
}

// reduceCase handles `(case selector (value body)... )`, picking the
// first alternative whose value literal matches selector once both
// are folded to ground constants; all alternatives are still reduced
// for diagnostics.
func reduceCase(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) < 1 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "case requires a selector", At: at})
		return skipTerm(ctx)
	}
	selector := Reduce(ctx, items[0], layer)
	var chosen *Term
	for _, alt := range items[1:] {
		altValue := Reduce(ctx, alt.Car(), layer)
		altBody := Reduce(ctx, alt.Cdr().Car(), layer)
		if chosen == nil && literalsEqual(selector.Cdr(), altValue.Cdr()) {
			chosen = altBody
		}
	}
	if chosen == nil {
		return skipTerm(ctx)
	}
	return chosen
}

func literalsEqual(a, b *Term) bool {
	if a.Tag() != b.Tag() {
		return false
	}
	switch a.Tag() {
	case TagInt:
		return a.Int() == b.Int()
	case TagChar:
		return a.Char() == b.Char()
	case TagName:
		return a == b
	default:
		return false
	}
}
