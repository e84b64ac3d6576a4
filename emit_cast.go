package formlang

import "fmt"

// cCastTypeName names the C type a cast node's target-type hook
// renders as.
var cCastTypeName = map[*Hook]string{
	Char0Hook: "char",
	Char1Hook: "wchar_t",
	Int0Hook:  "int32_t",
	Int1Hook:  "int64_t",
	Int2Hook:  "__int128",
	Real0Hook: "float",
	Real1Hook: "double",
	VoidHook:  "void",
}

func init() {
	registerEmitExpr(CharCastHook, emitSimpleCast)
	registerEmitExpr(IntCastHook, emitSimpleCast)
	registerEmitExpr(RealCastHook, emitSimpleCast)
	registerEmitExpr(VoidCastHook, emitSimpleCast)
	registerEmitExpr(PtrCastHook, emitPtrCast)
}

// emitSimpleCast renders a (cast-hook target-type value) node — the
// shape coerce.go wraps a non-constant char/int/real coercion or a
// void-wrapped form result in — as a parenthesized C cast.
func emitSimpleCast(e *Emitter, t *Term, parentPrec int) string {
	items := ListItems(t.Cdr())
	target, value := items[0], items[1]
	cName, ok := cCastTypeName[target.HookValue()]
	if !ok {
		cName = "int64_t"
	}
	myPrec := precedenceOf(t.Head())
	s := fmt.Sprintf("(%s)(%s)", cName, e.emitExpr(value, 0))
	return parenthesizeIf(s, myPrec, parentPrec)
}

// emitPtrCast renders a ref<->row reinterpretation: both share the
// same C pointer representation, so only the inner value is emitted.
func emitPtrCast(e *Emitter, t *Term, parentPrec int) string {
	items := ListItems(t.Cdr())
	return e.emitExpr(items[1], parentPrec)
}
