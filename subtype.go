package formlang

// IsSubtype reports whether left is a subtype of right under layer's
// bindings. The recursion guard (ctx.Calls) makes structural comparison
// of mutually-referential ref/row types coinductive rather than
// infinite: a (left, right) pair already under comparison is assumed
// to hold, translated into an ordinary recursive boolean here.
func IsSubtype(ctx *Context, layer *Layer, left, right *Term) bool {
	if left == right {
		return true
	}
	if ctx.hasCall(left, right) {
		return true
	}
	ctx.pushCall(left, right)
	defer ctx.popCall()

	switch right.Tag() {
	case TagName:
		if info, _, ok := layer.TryGet(right); ok && info != nil {
			return IsSubtype(ctx, layer, left, info)
		}
		return left.Tag() == TagName && left == right
	case TagHook:
		return subtypeSimple(ctx, layer, left, right)
	case TagPair:
		return subtypePair(ctx, layer, left, right)
	default:
		return false
	}
}

func subtypeSimple(ctx *Context, layer *Layer, left, right *Term) bool {
	if IsJokerHook(right.HookValue()) {
		return subtypeAgainstJoker(ctx, layer, left, right.HookValue())
	}
	if left.Tag() == TagHook {
		return left.HookValue() == right.HookValue()
	}
	if left.Tag() == TagPair {
		return subtypeJokerOrQuantified(ctx, layer, left, right.HookValue())
	}
	return false
}

func subtypeJokerOrQuantified(ctx *Context, layer *Layer, left *Term, rightHook *Hook) bool {
	switch left.Head() {
	case GenHook, SkoHook:
		return IsSubtype(ctx, layer, QuantifierBody(left), NewHookTerm(ctx, rightHook))
	default:
		return false
	}
}

func subtypePair(ctx *Context, layer *Layer, left, right *Term) bool {
	if left.Tag() == TagName {
		if info, _, ok := layer.TryGet(left); ok && info != nil {
			return IsSubtype(ctx, layer, info, right)
		}
		ctx.pushMatch(left, right, layer)
		defer ctx.popMatch()
		return true
	}

	rightHead := right.Head()
	if IsJokerHook(rightHead) {
		return subtypeAgainstJoker(ctx, layer, left, rightHead)
	}

	switch left.Head() {
	case GenHook, SkoHook:
		return IsSubtype(ctx, layer, QuantifierBody(left), right)
	}
	if right.Head() == GenHook {
		inner := PushLayer(KindSkolem, layer)
		witness := MakeStub(ctx, QuantifierName(right).Printable())
		inner.Set(ctx, QuantifierName(right), nil, witness, notAttributed)
		return IsSubtype(ctx, inner, left, QuantifierBody(right))
	}

	leftHead := left.Head()
	if leftHead == nil || rightHead == nil || leftHead != rightHead {
		return false
	}

	switch rightHead {
	case RefHook, VarHook, ArrayHook, ListHook, CellHook:
		return subtypeInvariantReferent(ctx, layer, left, right)
	case RowHook:
		// rows are covariant: a row of a subtype is a row of the supertype.
		return IsSubtype(ctx, layer, TypeReferent(left), TypeReferent(right))
	case TupleHook:
		return subtypeEachCovariant(ctx, layer, ListItems(left.Cdr()), ListItems(right.Cdr()))
	case ProcHook:
		return subtypeProc(ctx, layer, left, right)
	case FormHook:
		return subtypeForm(ctx, layer, left, right)
	default:
		return false
	}
}

func subtypeAgainstJoker(ctx *Context, layer *Layer, left *Term, joker *Hook) bool {
	h := left.Head()
	if h == nil {
		if left.Tag() == TagHook {
			h = left.HookValue()
		} else {
			return false
		}
	}
	return JokerAdmits(joker, h)
}

func subtypeInvariantReferent(ctx *Context, layer *Layer, left, right *Term) bool {
	lr, rr := TypeReferent(left), TypeReferent(right)
	return IsSubtype(ctx, layer, lr, rr) && IsSubtype(ctx, layer, rr, lr)
}

func subtypeEachCovariant(ctx *Context, layer *Layer, lefts, rights []*Term) bool {
	if len(lefts) != len(rights) {
		return false
	}
	for i := range lefts {
		if !IsSubtype(ctx, layer, lefts[i], rights[i]) {
			return false
		}
	}
	return true
}

// subtypeProc implements standard function-type variance: contravariant
// domain, covariant range.
func subtypeProc(ctx *Context, layer *Layer, left, right *Term) bool {
	ld, rd := TypeDomain(left), TypeDomain(right)
	if len(ld) != len(rd) {
		return false
	}
	for i := range ld {
		if !IsSubtype(ctx, layer, rd[i], ld[i]) {
			return false
		}
	}
	return IsSubtype(ctx, layer, TypeRange(left), TypeRange(right))
}

// subtypeForm requires every member of right to be subsumed by some
// member of left (a form with more members, or more general members,
// can stand in for a form with fewer/narrower ones).
func subtypeForm(ctx *Context, layer *Layer, left, right *Term) bool {
	for _, rm := range TypeMembers(right) {
		found := false
		for _, lm := range TypeMembers(left) {
			if IsSubtype(ctx, layer, lm, rm) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
