package formlang

// cPrecedence ranks the C operators this emitter ever produces, lowest
// binding first, so emitExpr only wraps an operand in parentheses when
// its own operator binds looser than its parent's — the same "only
// parenthesize when necessary" discipline a pretty-printer needs for
// any expression tree.
var cPrecedence = map[*Hook]int{
	CaseHook:     1, // ternary ?:
	IfHook:       1,
	IntAddHook:   4,
	IntSubHook:   4,
	IntMulHook:   5,
	CharCastHook: 11,
	IntCastHook:  11,
	RealCastHook: 11,
	PtrCastHook:  11,
	VoidCastHook: 11,
	ApplyHook:    12, // function call
	CellGetHook:  12,
	CellSetHook:  12,
}

const cPrecedenceAtom = 13 // literals, names: never need parens.

func precedenceOf(h *Hook) int {
	if p, ok := cPrecedence[h]; ok {
		return p
	}
	return cPrecedenceAtom
}
