package formlang

// coerceTable lists every implicit widening the core allows, indexed
// by the source simple-type hook: the fixed cascade a ground-type
// mismatch is walked against before it is rejected outright.
var coerceTable = map[*Hook][]*Hook{
	Char0Hook: {Char1Hook, Int0Hook, Int1Hook, Int2Hook},
	Char1Hook: {Int2Hook},
	Int0Hook:  {Int1Hook, Int2Hook},
	Int1Hook:  {Int2Hook},
	Real0Hook: {Real1Hook},
}

// castHookForSource names the cast node a value of the given source
// hook is wrapped in once a coercion to one of its table targets
// succeeds — the same family (character, integer, real) regardless of
// which target in the row was chosen.
func castHookForSource(h *Hook) *Hook {
	switch h {
	case Char0Hook, Char1Hook:
		return CharCastHook
	case Int0Hook, Int1Hook, Int2Hook:
		return IntCastHook
	case Real0Hook:
		return RealCastHook
	default:
		return nil
	}
}

// foldConstant reports the literal value coercion of value to target
// folds to at compile time, without any cast node: a widening never
// changes a character or integer literal's underlying representation,
// it only reinterprets it under a wider type (except char-to-int,
// which actually converts the rune to its ordinal).
func foldConstant(ctx *Context, value *Term, target *Hook) (*Term, bool) {
	switch target {
	case Char1Hook:
		if value.Tag() == TagChar {
			return value, true
		}
	case Int0Hook, Int1Hook, Int2Hook:
		switch value.Tag() {
		case TagChar:
			return NewInteger(ctx, int64(value.Char())), true
		case TagInt:
			return value, true
		}
	case Real1Hook:
		if value.Tag() == TagReal {
			return value, true
		}
	}
	return nil, false
}

// IsCoercing reports whether a value of type from may be implicitly
// widened to type to — the "coercing" relation, distinct from
// subtyping in that it only ever widens a simple numeric or character
// type, unwraps a var T to its referent, or retypes a ref T as a
// row T.
func IsCoercing(ctx *Context, layer *Layer, from, to *Term) bool {
	if IsSubtype(ctx, layer, from, to) {
		return true
	}
	switch from.Head() {
	case RefHook:
		return IsCoercing(ctx, layer, NewRowType(ctx, TypeReferent(from)), to)
	case VarHook:
		return IsCoercing(ctx, layer, TypeReferent(from), to)
	}
	if from.Tag() != TagHook {
		return false
	}
	for _, h := range coerceTable[from.HookValue()] {
		if IsSubtype(ctx, layer, NewHookTerm(ctx, h), to) {
			return true
		}
	}
	return false
}

// IsCoerced reports whether from is already a subtype of to, or
// coerces to it — the relation used at call sites to decide whether an
// argument needs a cast inserted before emission.
func IsCoerced(ctx *Context, layer *Layer, from, to *Term) bool {
	return IsSubtype(ctx, layer, from, to) || IsCoercing(ctx, layer, from, to)
}

// Coerce widens value from type from to type to, returning the
// (possibly cast-wrapped) term and the type it now carries. A
// constant folds in place; anything else is wrapped in the cast node
// its source family uses (char-cast, int-cast, real-cast), or, for a
// ref T source, reinterpreted as a row T with a ptr-cast node. A var T
// source unwraps transparently to its referent type with no node at
// all, then keeps coercing. ok is false if no coercion path reaches
// to.
func Coerce(ctx *Context, layer *Layer, value, from, to *Term) (coerced, coercedType *Term, ok bool) {
	if IsSubtype(ctx, layer, from, to) {
		return value, from, true
	}
	switch from.Head() {
	case RefHook:
		row := NewRowType(ctx, TypeReferent(from))
		cast := NewHookPair(ctx, PtrCastHook, List(ctx, row, value))
		return Coerce(ctx, layer, cast, row, to)
	case VarHook:
		return Coerce(ctx, layer, value, TypeReferent(from), to)
	}
	if from.Tag() != TagHook {
		return nil, nil, false
	}
	for _, h := range coerceTable[from.HookValue()] {
		target := NewHookTerm(ctx, h)
		if !IsSubtype(ctx, layer, target, to) {
			continue
		}
		if folded, ok := foldConstant(ctx, value, h); ok {
			return folded, target, true
		}
		cast := NewHookPair(ctx, castHookForSource(from.HookValue()), List(ctx, target, value))
		return cast, target, true
	}
	return nil, nil, false
}

// GroundCoerce is Coerce specialized for a strongly ground right type:
// it returns the coerced value, or value unchanged if from is already
// to or no coercion path applies (the caller is expected to have
// already reported that failure through CoerceOrHalt).
func GroundCoerce(ctx *Context, layer *Layer, value, from, to *Term) *Term {
	if coerced, _, ok := Coerce(ctx, layer, value, from, to); ok {
		return coerced
	}
	return value
}

// CoerceOrHalt coerces value from -> to, recording an ObjectError at
// `at` via ctx.Places if no coercion path exists, and returns the
// possibly cast-wrapped or folded value term to use in place of
// value.
func CoerceOrHalt(ctx *Context, layer *Layer, value, from, to *Term, at CharCount) *Term {
	if coerced, _, ok := Coerce(ctx, layer, value, from, to); ok {
		return coerced
	}
	ctx.Places.Record(ObjectError{
		Mnemonic: MnemonicNotCoercible,
		Message:  "cannot coerce " + from.String() + " to " + to.String(),
		At:       at,
	})
	return value
}
