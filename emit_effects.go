package formlang

import "fmt"

// Cells emit as ordinary C pointers: `cell-make` becomes a malloc'd
// slot (left to the surrounding procedure's declarations, not modeled
// here), `cell-get` a dereference, and `cell-set` an assignment
// statement.

func init() {
	registerEmitExpr(CellGetHook, func(e *Emitter, t *Term, parentPrec int) string {
		target := ListItems(t.Cdr())[0]
		return "*" + e.emitExpr(target, cPrecedenceAtom)
	})
}

func init() {
	registerEmitStmt(CellSetHook, func(e *Emitter, t *Term) {
		items := ListItems(t.Cdr())
		target, value := items[0], items[1]
		e.out.writeil(fmt.Sprintf("*%s = %s;", e.emitExpr(target, cPrecedenceAtom), e.emitExpr(value, 0)))
	})
}

type emitExprHandler func(e *Emitter, t *Term, parentPrec int) string
type emitStmtHandler func(e *Emitter, t *Term)

var emitExprDispatch map[*Hook]emitExprHandler
var emitStmtDispatch map[*Hook]emitStmtHandler

func registerEmitExpr(h *Hook, fn emitExprHandler) {
	if emitExprDispatch == nil {
		emitExprDispatch = map[*Hook]emitExprHandler{}
	}
	emitExprDispatch[h] = fn
}

func registerEmitStmt(h *Hook, fn emitStmtHandler) {
	if emitStmtDispatch == nil {
		emitStmtDispatch = map[*Hook]emitStmtHandler{}
	}
	emitStmtDispatch[h] = fn
}
