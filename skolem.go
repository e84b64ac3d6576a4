package formlang

// Skolemize replaces a gen type's bound quantifier with a fresh opaque
// witness name everywhere it occurs free in the body, turning `gen a
// T` into `sko a' T[a -> a']`.
//
// labeler is a layer used purely as a visited-set to guard against
// infinite recursion through self-referential row types; it is never
// consulted for bindings, only for membership.
func Skolemize(ctx *Context, t *Term) *Term {
	if !IsSkolemizable(t) {
		return t
	}
	if t.Head() == GenHook {
		name := QuantifierName(t)
		witness := MakeStub(ctx, name.Printable())
		body := substitute(ctx, QuantifierBody(t), name, witness, PushLayer(KindPlain, nil))
		return NewSkoType(ctx, witness, body)
	}
	// t has a proper subtype distinct from itself (a structured type, a
	// joker, an alts, a form, or a pointer type) but isn't itself a gen
	// wrapper: the witness simply opaquely wraps t's own shape, with no
	// quantifier name to substitute.
	witness := MakeStub(ctx, "_")
	return NewSkoType(ctx, witness, t)
}

// IsSkolemizable reports whether t is a gen wrapper, or any other type
// that has a proper subtype distinct from itself: a structured type
// (ref/row/var/array/tuple/cell/list/proc), a joker, an alts, a form,
// or sym(no-name). Simple ground types like int0 or char0 have no
// proper subtype and pass through Skolemize unchanged.
func IsSkolemizable(t *Term) bool {
	if t.Tag() == TagPair && t.Head() == GenHook {
		return true
	}
	return hasProperSubtype(t)
}

func hasProperSubtype(t *Term) bool {
	if t.Tag() == TagHook {
		return IsJokerHook(t.HookValue())
	}
	h := t.Head()
	if h == nil {
		return false
	}
	switch h {
	case RefHook, RowHook, VarHook, ArrayHook, TupleHook, CellHook, ListHook,
		ProcHook, FormHook, AltsHook:
		return true
	case SymHook:
		return t.Cdr() == nil
	default:
		return IsJokerHook(h)
	}
}

// substitute walks t, replacing every free occurrence of name with
// replacement. Occurrences shadowed by a nested gen/sko binding the
// same name are left alone; labeler records pointers already visited
// on this walk so a self-referential row type terminates.
func substitute(ctx *Context, t, name, replacement *Term, labeler *Layer) *Term {
	switch t.Tag() {
	case TagName:
		if t == name {
			return replacement
		}
		return t
	case TagHook:
		return t
	case TagPair:
		if labeler.In(t) {
			return t
		}
		labeler.Set(ctx, t, nil, nil, notAttributed)
		if IsQuantified(t) && QuantifierName(t) == name {
			return t // shadowed: inner binding of the same name wins.
		}
		car := substitute(ctx, t.Car(), name, replacement, labeler)
		cdr := substituteList(ctx, t.Cdr(), name, replacement, labeler)
		if car == t.Car() && cdr == t.Cdr() {
			return t
		}
		return NewPair(ctx, car, cdr, t.Info())
	default:
		return t
	}
}

func substituteList(ctx *Context, list, name, replacement *Term, labeler *Layer) *Term {
	if list == nil {
		return nil
	}
	car := substitute(ctx, list.Car(), name, replacement, labeler)
	cdr := substituteList(ctx, list.Cdr(), name, replacement, labeler)
	if car == list.Car() && cdr == list.Cdr() {
		return list
	}
	return NewPair(ctx, car, cdr, list.Info())
}

// SkolemizeForm skolemizes every gen-wrapped member of a form type,
// leaving already-concrete members untouched. form.go's Apply does not
// call it; Apply skolemizes each gen-headed member itself.
func SkolemizeForm(ctx *Context, form *Term) []*Term {
	members := TypeMembers(form)
	out := make([]*Term, len(members))
	for i, m := range members {
		out[i] = Skolemize(ctx, m)
	}
	return out
}
