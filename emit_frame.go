package formlang

import "fmt"

// emitFrameOpen writes the local `gc_frame` declaration and its
// `gc_frame_open` call for slots (decoded from a markable `with` node),
// sized from len(slots).
func (e *Emitter) emitFrameOpen(slots []frameSlot) {
	if len(slots) == 0 {
		return
	}
	e.out.writeil(fmt.Sprintf("void *gc_slots_%d[%d];", e.frameDepth, len(slots)))
	e.out.writeil(fmt.Sprintf("gc_frame gc_f_%d;", e.frameDepth))
	e.out.writeil(fmt.Sprintf("gc_frame_open(&gc_f_%d, gc_slots_%d, %d);", e.frameDepth, e.frameDepth, len(slots)))
	for i, s := range slots {
		e.out.writeil(fmt.Sprintf("gc_slots_%d[%d] = (void *)&%s;", e.frameDepth, i, e.namer.Name(s.key)))
	}
}

// emitFrameClose writes the matching `gc_frame_close` call.
func (e *Emitter) emitFrameClose() {
	e.out.writeil(fmt.Sprintf("gc_frame_close(&gc_f_%d);", e.frameDepth))
}
