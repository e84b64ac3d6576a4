package formlang

// This file collects the type-expression constructors and predicates
// that subtype.go, coerce.go, skolem.go, and form.go all share — the
// "ground" and "strongly ground" vocabulary of /§4.4.

// IsSimpleType reports whether h is one of the nine simple type hooks.
func IsSimpleType(h *Hook) bool {
	switch h {
	case Char0Hook, Char1Hook, Int0Hook, Int1Hook, Int2Hook, Real0Hook, Real1Hook, VoidHook, NullHook:
		return true
	default:
		return false
	}
}

func NewRefType(ctx *Context, referent *Term) *Term  { return NewHookPair(ctx, RefHook, List(ctx, referent)) }
func NewRowType(ctx *Context, referent *Term) *Term  { return NewHookPair(ctx, RowHook, List(ctx, referent)) }
func NewVarType(ctx *Context, referent *Term) *Term  { return NewHookPair(ctx, VarHook, List(ctx, referent)) }
func NewArrayType(ctx *Context, size, elem *Term) *Term {
	return NewHookPair(ctx, ArrayHook, List(ctx, size, elem))
}
func NewTupleType(ctx *Context, fields ...*Term) *Term {
	return NewHookPair(ctx, TupleHook, List(ctx, fields...))
}
func NewCellType(ctx *Context, elem *Term) *Term { return NewHookPair(ctx, CellHook, List(ctx, elem)) }
func NewListType(ctx *Context, elem *Term) *Term { return NewHookPair(ctx, ListHook, List(ctx, elem)) }

// NewProcType builds a `proc[domain... -> range]` type.
func NewProcType(ctx *Context, domain []*Term, rng *Term) *Term {
	return NewHookPair(ctx, ProcHook, List(ctx, List(ctx, domain...), rng))
}

// NewFormType builds a `form[...]` type from its member list, each
// member itself a proc type (possibly behind a gen/sko quantifier).
func NewFormType(ctx *Context, members ...*Term) *Term {
	return NewHookPair(ctx, FormHook, List(ctx, members...))
}

// NewGenType wraps body in a `gen name T` universally quantified type.
func NewGenType(ctx *Context, name, body *Term) *Term {
	return NewHookPair(ctx, GenHook, List(ctx, name, body))
}

// NewSkoType wraps body in a `sko name T` skolemized type (a gen whose
// quantifier has already been replaced by an opaque witness).
func NewSkoType(ctx *Context, name, body *Term) *Term {
	return NewHookPair(ctx, SkoHook, List(ctx, name, body))
}

// NewAltsType builds an `alts(T...)` union type from its alternatives.
func NewAltsType(ctx *Context, alternatives ...*Term) *Term {
	return NewHookPair(ctx, AltsHook, List(ctx, alternatives...))
}

// AltsAlternatives returns an alts type's alternative list.
func AltsAlternatives(t *Term) []*Term {
	if t.Head() != AltsHook {
		return nil
	}
	return ListItems(t.Cdr())
}

// unwrapQuantifier peels a gen/sko wrapper down to the proc type it
// quantifies, so TypeDomain/TypeRange work the same whether a member's
// type has already been skolemized or not.
func unwrapQuantifier(t *Term) *Term {
	for t.Head() == GenHook || t.Head() == SkoHook {
		t = QuantifierBody(t)
	}
	return t
}

func TypeDomain(t *Term) []*Term {
	t = unwrapQuantifier(t)
	if t.Head() != ProcHook {
		return nil
	}
	return ListItems(t.Cdr().Car())
}

func TypeRange(t *Term) *Term {
	t = unwrapQuantifier(t)
	if t.Head() != ProcHook {
		return nil
	}
	return t.Cdr().Cdr().Car()
}

func TypeReferent(t *Term) *Term {
	switch t.Head() {
	case RefHook, RowHook, VarHook, CellHook, ListHook:
		return t.Cdr().Car()
	default:
		return nil
	}
}

func TypeMembers(t *Term) []*Term {
	if t.Head() != FormHook {
		return nil
	}
	return ListItems(t.Cdr())
}

// IsQuantified reports whether t is a gen or sko wrapper.
func IsQuantified(t *Term) bool {
	h := t.Head()
	return h == GenHook || h == SkoHook
}

// QuantifierName/QuantifierBody unwrap a gen/sko term.
func QuantifierName(t *Term) *Term { return t.Cdr().Car() }
func QuantifierBody(t *Term) *Term { return t.Cdr().Cdr().Car() }

// IsGround reports whether t contains no free gen quantifier — every
// name appearing in it is either a concrete type hook or already
// bound in layer.
func IsGround(ctx *Context, t *Term, layer *Layer) bool {
	switch t.Tag() {
	case TagHook:
		return true
	case TagName:
		_, _, ok := layer.TryGet(t)
		return ok
	case TagPair:
		if t.Head() == GenHook {
			return false
		}
		return IsGround(ctx, t.Car(), layer) && groundList(ctx, t.Cdr(), layer)
	default:
		return true
	}
}

func groundList(ctx *Context, list *Term, layer *Layer) bool {
	for list != nil {
		if !IsGround(ctx, list.Car(), layer) {
			return false
		}
		list = list.Cdr()
	}
	return true
}

// IsStronglyGround additionally requires every skolem witness to be
// resolved to a concrete type rather than left opaque. Nothing in the
// core calls it; the emitter does not check it.
func IsStronglyGround(ctx *Context, t *Term, layer *Layer) bool {
	if !IsGround(ctx, t, layer) {
		return false
	}
	if t.Tag() == TagPair && t.Head() == SkoHook {
		return false
	}
	if t.Tag() == TagPair {
		for list := t.Cdr(); list != nil; list = list.Cdr() {
			if !IsStronglyGround(ctx, list.Car(), layer) {
				return false
			}
		}
	}
	return true
}

// IsMarkable reports whether a value of type t must be registered as a
// GC root when held in a (var) ref T equate — it is exactly ctx's
// configured MarkableType, or a type built from it.
func IsMarkable(ctx *Context, t *Term, layer *Layer) bool {
	if ctx.MarkableType == nil {
		return false
	}
	return IsSubtype(ctx, layer, t, ctx.MarkableType) || IsSubtype(ctx, layer, ctx.MarkableType, t)
}
