package formlang

func init() {
	registerReduce(CellMakeHook, reduceCellMake)
	registerReduce(CellGetHook, reduceCellGet)
	registerReduce(CellSetHook, reduceCellSet)
}

// reduceCellMake handles `(cell-make value)`: allocates a fresh cell
// term holding value's reduced type and content.
func reduceCellMake(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	inner := Reduce(ctx, operands.Car(), layer)
	cell := NewCell(ctx, inner.InferredType(), inner.Cdr())
	return NewTriple(ctx, cell, cell, NewCellType(ctx, inner.InferredType()))
}

// reduceCellGet handles `(cell-get cell)`.
func reduceCellGet(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	inner := Reduce(ctx, operands.Car(), layer)
	cellTerm := inner.Cdr()
	if cellTerm.Tag() != TagCell {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicUnexpectedType, Message: "cell-get on a non-cell value", At: at})
		return skipTerm(ctx)
	}
	node := NewHookPair(ctx, CellGetHook, List(ctx, inner.Car()))
	return NewTriple(ctx, node, node, cellTerm.CellType())
}

// reduceCellSet handles `(cell-set cell value)`, requiring value's
// type to coerce to the cell's declared element type.
func reduceCellSet(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	items := ListItems(operands)
	if len(items) != 2 {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicArityMismatch, Message: "cell-set expects 2 operands", At: at})
		return skipTerm(ctx)
	}
	cellTriple := Reduce(ctx, items[0], layer)
	valueTriple := Reduce(ctx, items[1], layer)
	cellTerm := cellTriple.Cdr()
	if cellTerm.Tag() != TagCell {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicUnexpectedType, Message: "cell-set on a non-cell value", At: at})
		return skipTerm(ctx)
	}
	coerced := CoerceOrHalt(ctx, layer, valueTriple.Cdr(), valueTriple.InferredType(), cellTerm.CellType(), at)
	CellSet(cellTerm, cellTerm.CellType(), coerced)
	node := NewHookPair(ctx, CellSetHook, List(ctx, cellTriple.Car(), coerced))
	return NewTriple(ctx, node, node, NewHookTerm(ctx, VoidHook))
}
