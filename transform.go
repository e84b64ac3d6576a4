package formlang

// Reduce walks a parsed term and produces its transformed form: every
// Name is resolved against layer, every hook-headed Pair is dispatched
// to its handler, and the result is wrapped in a Triple carrying the
// term's inferred type. Reduce never aborts on an
// object-level mistake — it records an ObjectError in ctx.Places and
// substitutes `skip : void`, a continue-past-errors discipline carried into this transformer.
func Reduce(ctx *Context, term *Term, layer *Layer) *Term {
	switch term.Tag() {
	case TagChar:
		return NewTriple(ctx, term, term, NewHookTerm(ctx, Char0Hook))
	case TagInt:
		return NewTriple(ctx, term, term, NewHookTerm(ctx, Int0Hook))
	case TagReal:
		return NewTriple(ctx, term, term, NewHookTerm(ctx, Real0Hook))
	case TagString:
		return NewTriple(ctx, term, term, NewListType(ctx, NewHookTerm(ctx, Char0Hook)))
	case TagTriple:
		return term // already reduced; Reduce is idempotent.
	case TagName:
		return reduceName(ctx, term, layer)
	case TagPair:
		return reducePair(ctx, term, layer)
	default:
		Halt(MnemonicCompilationHalted, "reduce: unexpected tag %s", term.Tag())
		return nil
	}
}

func reduceName(ctx *Context, name *Term, layer *Layer) *Term {
	info, value, err := layer.Get(name, CharCount(name.Info()))
	if err != nil {
		ctx.Places.Record(err.(ObjectError))
		return skipTerm(ctx)
	}
	if value == nil {
		value = name
	}
	return NewTriple(ctx, name, value, info)
}

// skipTerm builds the canonical `skip : void` substitute emitted in
// place of any term that failed to reduce.
func skipTerm(ctx *Context) *Term {
	skip := NewHookTerm(ctx, SkipHook)
	return NewTriple(ctx, skip, skip, NewHookTerm(ctx, VoidHook))
}

// reduceHandler is the signature every per-hook transform function
// implements: given the unreduced operand list (the cdr of the
// hook-headed pair) and the ambient layer, produce the reduced Triple.
type reduceHandler func(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term

var reduceDispatch map[*Hook]reduceHandler

func registerReduce(h *Hook, fn reduceHandler) {
	if reduceDispatch == nil {
		reduceDispatch = map[*Hook]reduceHandler{}
	}
	reduceDispatch[h] = fn
}

func reducePair(ctx *Context, term *Term, layer *Layer) *Term {
	head := term.Head()
	if head == nil {
		// Not hook-headed: an ordinary cons application candidate, e.g.
		// a name standing for a form value applied to arguments.
		return reduceFormCall(ctx, term, layer)
	}
	if fn, ok := reduceDispatch[head]; ok {
		return fn(ctx, term.Cdr(), layer, CharCount(term.Info()))
	}
	Halt(MnemonicCompilationHalted, "reduce: no handler registered for hook %s", head)
	return nil
}

// reduceFormCall handles `(operator . args)` where operator is not
// itself a hook: operator must reduce to a form value, dispatched via
// form.go's Apply.
func reduceFormCall(ctx *Context, term *Term, layer *Layer) *Term {
	opTriple := Reduce(ctx, term.Car(), layer)
	form, ok := formValueOf(opTriple)
	if !ok {
		ctx.Places.Record(ObjectError{
			Mnemonic: MnemonicUnexpectedType,
			Message:  "called value is not a form",
			At:       CharCount(term.Info()),
		})
		return skipTerm(ctx)
	}
	args := ListItems(term.Cdr())
	reducedArgs := make([]*Term, len(args))
	argTypes := make([]*Term, len(args))
	for i, a := range args {
		reducedArgs[i] = Reduce(ctx, a, layer)
		argTypes[i] = reducedArgs[i].InferredType()
	}
	member, err := Apply(ctx, form, reducedArgs, argTypes, layer, CharCount(term.Info()))
	if err != nil {
		ctx.Places.Record(err.(ObjectError))
		return skipTerm(ctx)
	}
	return applyMember(ctx, member, reducedArgs, CharCount(term.Info()))
}

func formValueOf(triple *Term) (*Form, bool) {
	return triple.Cdr().formValue()
}

// applyMember binds a member's parameters to args in a fresh equate
// layer, coercing each argument to its declared parameter type first
// (Apply only verified a coercion path exists; applyMember is what
// actually materializes it), opens a GC frame, reduces the member
// body, and returns the result.
func applyMember(ctx *Context, member *Member, args []*Term, at CharCount) *Term {
	inner := PushLayer(KindEquate, member.Closure)
	domain := TypeDomain(member.Type)
	for i, p := range member.Params {
		argType := args[i].InferredType()
		want := argType
		if i < len(domain) {
			want = domain[i]
		}
		coerced := CoerceOrHalt(ctx, inner, args[i].Cdr(), argType, want, at)
		inner.Set(ctx, p, want, coerced, int64(at))
	}
	var result *Term
	ctx.WithFrame(func(f *rootFrame) {
		result = Reduce(ctx, member.Body, inner)
	})
	return result
}
