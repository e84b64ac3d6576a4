package formlang

import "fmt"

var arithCOp = map[*Hook]string{
	IntAddHook: "+",
	IntSubHook: "-",
	IntMulHook: "*",
}

// emitExpr renders a reduced value term as a C expression, wrapping it
// in parentheses only when parentPrec is tighter than the expression's
// own operator.
func (e *Emitter) emitExpr(t *Term, parentPrec int) string {
	switch t.Tag() {
	case TagChar:
		return emitCharLiteral(t.Char())
	case TagInt:
		return emitIntLiteral(t.Int(), nil)
	case TagReal:
		return emitRealLiteral(t.Real(), nil)
	case TagString:
		return emitStringLiteral(t)
	case TagName:
		return e.namer.Name(t)
	case TagCell:
		return e.emitExpr(t.CellValue(), parentPrec)
	case TagPair:
		return e.emitExprPair(t, parentPrec)
	default:
		return "/* unrepresentable */ 0"
	}
}

func (e *Emitter) emitExprPair(t *Term, parentPrec int) string {
	head := t.Head()
	if fn, ok := emitExprDispatch[head]; ok {
		return fn(e, t, parentPrec)
	}
	if head == IfHook {
		items := ListItems(t.Cdr())
		myPrec := precedenceOf(IfHook)
		s := fmt.Sprintf("%s ? %s : %s", e.emitExpr(items[0], myPrec+1), e.emitExpr(items[1], myPrec), e.emitExpr(items[2], myPrec))
		return parenthesizeIf(s, myPrec, parentPrec)
	}
	if op, ok := arithCOp[head]; ok {
		items := ListItems(t.Cdr())
		left, right := items[0], items[1]
		myPrec := precedenceOf(head)
		s := fmt.Sprintf("%s %s %s", e.emitExpr(left, myPrec), op, e.emitExpr(right, myPrec+1))
		return parenthesizeIf(s, myPrec, parentPrec)
	}
	// A call or a bare cons pair fallthrough: render as a function call
	// `name(args...)` when the head is a plain name, otherwise as a
	// parenthesized comma pair for diagnostics.
	if t.Car().Tag() == TagName {
		fn := e.namer.Name(t.Car())
		args := ListItems(t.Cdr())
		s := fn + "("
		for i, a := range args {
			if i > 0 {
				s += ", "
			}
			s += e.emitExpr(a, 0)
		}
		s += ")"
		return s
	}
	return fmt.Sprintf("(%s, %s)", e.emitExpr(t.Car(), 0), e.emitExpr(t.Cdr(), 0))
}

func parenthesizeIf(s string, myPrec, parentPrec int) string {
	if myPrec < parentPrec {
		return "(" + s + ")"
	}
	return s
}
