package formlang

func init() {
	registerReduce(RefOpHook, reduceRefOp)
	registerReduce(RowOpHook, reduceRowOp)
	registerReduce(RowToHook, castHandler(rowToRef))
	registerReduce(ToRowHook, castHandler(refToRow))
	registerReduce(VarToHook, castHandler(varToRef))
	registerReduce(ToVarHook, castHandler(refToVar))
}

// reduceRefOp handles `(ref-op T)`, building the ref[T] type term.
func reduceRefOp(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	referent := Reduce(ctx, operands.Car(), layer)
	ty := NewRefType(ctx, referent.Cdr())
	return NewTriple(ctx, ty, ty, NewHookTerm(ctx, TypeHook))
}

// reduceRowOp handles `(row-op T)`, building the row[T] type term.
func reduceRowOp(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	referent := Reduce(ctx, operands.Car(), layer)
	ty := NewRowType(ctx, referent.Cdr())
	return NewTriple(ctx, ty, ty, NewHookTerm(ctx, TypeHook))
}

// castHandler wraps a pointer-conversion helper (row<->ref, var<->ref)
// into a reduceHandler: reduce the single operand, apply the
// conversion to its value and type, and re-wrap as a Triple.
func castHandler(convert func(ctx *Context, value, typ *Term) (*Term, *Term)) reduceHandler {
	return func(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
		inner := Reduce(ctx, operands.Car(), layer)
		value, typ := convert(ctx, inner.Cdr(), inner.InferredType())
		return NewTriple(ctx, value, value, typ)
	}
}

func rowToRef(ctx *Context, value, typ *Term) (*Term, *Term) {
	return value, NewRefType(ctx, TypeReferent(typ))
}

func refToRow(ctx *Context, value, typ *Term) (*Term, *Term) {
	return value, NewRowType(ctx, TypeReferent(typ))
}

func varToRef(ctx *Context, value, typ *Term) (*Term, *Term) {
	return value, NewRefType(ctx, TypeReferent(typ))
}

func refToVar(ctx *Context, value, typ *Term) (*Term, *Term) {
	return value, NewVarType(ctx, TypeReferent(typ))
}
