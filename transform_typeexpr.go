package formlang

// reduceTypeExpr interprets a term in type position: a bare hook is
// already a type (simple types and jokers are self-evaluating), a name
// resolves to whatever it's bound to (a prelude type name, or an outer
// `gen`'s quantifier, left as a bare name when unbound), and a
// structural constructor recurses into its referent(s) through
// types.go's own constructors rather than through the value-level
// Reduce — a type expression never needs a Triple's inferred-type
// wrapper, only the type term itself.
func reduceTypeExpr(ctx *Context, t *Term, layer *Layer) *Term {
	switch t.Tag() {
	case TagHook, TagName:
		if t.Tag() == TagName {
			if info, value, ok := layer.TryGet(t); ok {
				if value != nil {
					return value
				}
				if info != nil {
					return info
				}
			}
		}
		return t
	case TagPair:
		switch t.Head() {
		case RefHook:
			return NewRefType(ctx, reduceTypeExpr(ctx, t.Cdr().Car(), layer))
		case RowHook:
			return NewRowType(ctx, reduceTypeExpr(ctx, t.Cdr().Car(), layer))
		case VarHook:
			return NewVarType(ctx, reduceTypeExpr(ctx, t.Cdr().Car(), layer))
		case ArrayHook:
			items := ListItems(t.Cdr())
			return NewArrayType(ctx, items[0], reduceTypeExpr(ctx, items[1], layer))
		case TupleHook:
			items := ListItems(t.Cdr())
			out := make([]*Term, len(items))
			for i, it := range items {
				out[i] = reduceTypeExpr(ctx, it, layer)
			}
			return NewTupleType(ctx, out...)
		case CellHook:
			return NewCellType(ctx, reduceTypeExpr(ctx, t.Cdr().Car(), layer))
		case ListHook:
			return NewListType(ctx, reduceTypeExpr(ctx, t.Cdr().Car(), layer))
		case GenHook, ProcHook, FormHook, AltHook, AltsHook:
			return Reduce(ctx, t, layer).Cdr()
		default:
			return t
		}
	default:
		return t
	}
}
