package formlang

// Collector is the hook the transformer calls on every term allocation.
// Production compilation never actually collects — the core only
// emits frame-marking instructions for a runtime collector to use
// later — but tests exercise the discipline by counting requests and
// frame shapes.
type Collector interface {
	RequestCollection()
}

// NullCollector is the default Collector: compilation never triggers
// it, it only exists so alloc has something to call.
type NullCollector struct{}

func (NullCollector) RequestCollection() {}

// CountingCollector is a test Collector that records how many
// allocations asked for a collection, without ever performing one.
type CountingCollector struct {
	Requests int
}

func (c *CountingCollector) RequestCollection() { c.Requests++ }

// frameSlot is one GC root registered in the current frame: a
// (var) ref T equate, identified by its Binder key.
type frameSlot struct {
	key  *Term
	typ  *Term
}

// rootFrame is one entry of the GC-visible frame stack:
// "every (var) ref T equate visible at a give point pushes a frame slot
// recording its Binder key and type; closing a frame pops every slot it
// pushed, in reverse order."
type rootFrame struct {
	slots  []frameSlot
	outer  *rootFrame
}

// OpenFrame pushes a fresh, empty frame onto ctx's frame stack and
// returns it so the caller can later Close it. Frames nest: closing an
// inner frame never disturbs slots registered in an outer one.
func (ctx *Context) OpenFrame() *rootFrame {
	f := &rootFrame{outer: ctx.frames}
	ctx.frames = f
	return f
}

// CloseFrame pops ctx's current frame, which must be f, back to f's
// outer frame. Mismatched open/close nesting is a programming error in
// the transformer and halts rather than silently desyncing the stack.
func (ctx *Context) CloseFrame(f *rootFrame) {
	if ctx.frames != f {
		Halt(MnemonicCompilationHalted, "frame close out of order")
	}
	ctx.frames = f.outer
}

// MarkSlot registers a GC root in ctx's current frame. bindMarked in
// transform_binder.go calls this for every (var) ref T equate whose
// type is markable (IsMarkable reports true against ctx.MarkableType).
func (ctx *Context) MarkSlot(key, typ *Term) {
	if ctx.frames == nil {
		Halt(MnemonicCompilationHalted, "mark slot with no open frame")
	}
	ctx.frames.slots = append(ctx.frames.slots, frameSlot{key: key, typ: typ})
}

// FrameDepth reports how many slots are visible across the whole open
// frame chain — used by tests to assert push/pop balance.
func (ctx *Context) FrameDepth() int {
	n := 0
	for f := ctx.frames; f != nil; f = f.outer {
		n += len(f.slots)
	}
	return n
}

// CurrentFrameSlots returns the slots registered directly in ctx's
// innermost open frame, in push order.
func (ctx *Context) CurrentFrameSlots() []frameSlot {
	if ctx.frames == nil {
		return nil
	}
	return ctx.frames.slots
}

// WithFrame opens a frame, runs body, and closes the frame regardless
// of whether body panics — a scoped-guard idiom preferred over manual
// C-style push/pop pairs.
func (ctx *Context) WithFrame(body func(f *rootFrame)) {
	f := ctx.OpenFrame()
	defer ctx.CloseFrame(f)
	body(f)
}
