package formlang

func init() {
	registerReduce(ProcHook, reduceProc)
	registerReduce(FormHook, reduceForm)
	registerReduce(GenHook, reduceGen)
	registerReduce(AltHook, reduceAlt)
	registerReduce(AltsHook, reduceAlts)
}

// reduceProc handles `(proc ((name type)...) range body)`: builds the
// single-member Form the procedure realizes, queuing its body for
// deferred expansion (forward.go's ExpandProcedures pass) rather
// than reducing it now, so a recursive reference to a type still being
// forward-declared at this point in the source has a chance to
// resolve first.
func reduceProc(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) != 3 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "proc expects a parameter list, a range type, and a body", At: at})
		return skipTerm(ctx)
	}
	paramSpecs := ListItems(items[0])
	params := make([]*Term, len(paramSpecs))
	domain := make([]*Term, len(paramSpecs))

	closure := PushLayer(KindEquate, layer)
	for i, p := range paramSpecs {
		params[i] = p.Car()
		domain[i] = reduceTypeExpr(ctx, p.Cdr().Car(), layer)
		closure.Set(ctx, params[i], domain[i], nil, int64(at))
	}
	rangeType := reduceTypeExpr(ctx, items[1], layer)

	member := &Member{
		Type:    NewProcType(ctx, domain, rangeType),
		Params:  params,
		Body:    items[2],
		Closure: closure,
	}
	QueueProcedure(ctx, member, closure)

	return formValueTriple(ctx, &Form{Members: []*Member{member}})
}

// reduceForm handles `(form member...)`: each member is itself a
// reduced proc (or gen-wrapped proc) expression contributing one or
// more Members; they're kept in declaration order, the order
// apply-form (§4.5) tries them in.
func reduceForm(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) == 0 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "form requires at least one member", At: at})
		return skipTerm(ctx)
	}
	var members []*Member
	for _, it := range items {
		reduced := Reduce(ctx, it, layer)
		f, ok := formValueOf(reduced)
		if !ok {
			ctx.Places.Record(ObjectError{Mnemonic: MnemonicUnexpectedType, Message: "form member does not reduce to a procedure", At: at})
			continue
		}
		members = append(members, f.Members...)
	}
	return formValueTriple(ctx, &Form{Members: members})
}

// reduceGen handles `(gen name body)`. When body reduces to a closure
// (the common case: a generic procedure or form), gen quantifies every
// member's type and leaves Params/Body/Closure untouched — the
// quantifier is purely a type-level annotation, substituted away by
// Skolemize at each application site. Otherwise body is an ordinary
// type expression and gen just wraps it.
func reduceGen(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) != 2 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "gen expects a quantifier name and a body", At: at})
		return skipTerm(ctx)
	}
	name, bodyExpr := items[0], items[1]

	switch bodyExpr.Head() {
	case ProcHook, FormHook, AltHook:
		reducedBody := Reduce(ctx, bodyExpr, layer)
		f, ok := formValueOf(reducedBody)
		if !ok {
			return reducedBody
		}
		quantified := make([]*Member, len(f.Members))
		for i, m := range f.Members {
			quantified[i] = &Member{
				Type:    NewGenType(ctx, name, m.Type),
				Params:  m.Params,
				Body:    m.Body,
				Closure: m.Closure,
			}
		}
		return formValueTriple(ctx, &Form{Members: quantified})
	default:
		body := reduceTypeExpr(ctx, bodyExpr, layer)
		genType := NewGenType(ctx, name, body)
		return NewTriple(ctx, genType, genType, NewHookTerm(ctx, TypeHook))
	}
}

// reduceAlt handles `(alt left right)`: both operands must reduce to
// closures; the combined closure keeps right's members first, then
// left's members right doesn't already subsume (form.go's
// Concatenate) — the combinator used to extend an existing form with
// new, more specific overloads.
func reduceAlt(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) != 2 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "alt expects 2 operands", At: at})
		return skipTerm(ctx)
	}
	left := Reduce(ctx, items[0], layer)
	right := Reduce(ctx, items[1], layer)
	lf, lok := formValueOf(left)
	rf, rok := formValueOf(right)
	if !lok || !rok {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicUnexpectedType, Message: "alt operands must be forms", At: at})
		return skipTerm(ctx)
	}
	return formValueTriple(ctx, Concatenate(ctx, lf, rf, layer))
}

// reduceAlts handles `(alts T...)`, the type-level alternative-set
// union: unlike alt, this only ever builds a type, never a closure.
func reduceAlts(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	alternatives := make([]*Term, len(items))
	for i, it := range items {
		alternatives[i] = reduceTypeExpr(ctx, it, layer)
	}
	node := NewAltsType(ctx, alternatives...)
	return NewTriple(ctx, node, node, NewHookTerm(ctx, TypeHook))
}

// formValueTriple wraps a realized Form as the Triple an expression
// reducing to a closure always produces: the form value itself (as
// both car and cdr — a closure is never re-emitted as C, only applied
// at compile time) typed by a form type built from its members.
func formValueTriple(ctx *Context, f *Form) *Term {
	types := make([]*Term, len(f.Members))
	for i, m := range f.Members {
		types[i] = m.Type
	}
	value := NewFormValue(ctx, f)
	return NewTriple(ctx, value, value, NewFormType(ctx, types...))
}
