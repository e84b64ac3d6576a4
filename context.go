package formlang

// Context is the single mutable threading point for every process-wide
// list the core needs: the interning table, the allocation/stub counters,
// the subtype recursion guard, the match-obligation chain, the forward
// pointer base list, and the deferred procedure queue.
//
// Nothing here is a package global. Every entry point takes a *Context
// explicitly: a from-scratch reimplementation of a design that used to
// lean on C globals (calls, matches, bases, the procedure queue, the
// open-binder stack) carries them as one value instead.
type Context struct {
	Config *Config

	Collector Collector
	frames    *rootFrame

	interned map[internKey]*Term
	nextID   uint64
	nextStub int

	// Calls is the subtype engine's coinductive recursion guard: a
	// push/pop-scoped list of (left, right) pointer pairs currently
	// under structural comparison.
	Calls []callPair

	// Matches is the chain of deferred subtype obligations raised by
	// comparisons against unbound names, newest first.
	Matches *Obligation

	// Bases links every forwarded ref/row pointer type constructed so
	// far, for the forward resolver to walk once loading is done.
	Bases []*Term

	// ProcQueue holds deferred procedure closures awaiting expansion.
	ProcQueue []*procEntry

	// MarkableType is the process-wide type that bindMarked consults to
	// decide whether a (var) ref T equate needs a frame slot.
	MarkableType *Term

	Places PlaceSet

	// Loader, ParseUnit, and Sources wire the `load` hook to the
	// driver's source discovery and parsing — both out of scope for
	// this core but needed as named collaborator
	// hooks so transform_load.go has somewhere to delegate.
	Loader      SourceLoader
	ParseUnit   func(ctx *Context, content []byte, file FileID) *Term
	Sources     *SourceTable
	CurrentPath string
}

type internKey struct {
	printable string
	number    int
}

type callPair struct {
	left, right *Term
}

type procEntry struct {
	closureMember *Member
	boundLayer    *Layer
}

// NewContext creates a Context primed with a NullCollector and a default
// Config. Callers that care about GC-frame testing should replace
// Collector before running the transformer.
func NewContext() *Context {
	return &Context{
		Config:    NewConfig(),
		Collector: NullCollector{},
		interned:  map[internKey]*Term{},
	}
}

// alloc is the single choke point every term constructor funnels
// through. It is the one place in the core a collection may be
// triggered, and it assigns the monotonic id used
// to give layer binder trees a stable ordering without resorting to
// unsafe pointer arithmetic (identity is still checked with plain `==`
// everywhere that matters; id only orders the AVL tree).
func (ctx *Context) alloc(tag Tag) *Term {
	ctx.nextID++
	if ctx.Collector != nil {
		ctx.Collector.RequestCollection()
	}
	return &Term{tag: tag, id: ctx.nextID}
}

func (ctx *Context) pushCall(left, right *Term) {
	ctx.Calls = append(ctx.Calls, callPair{left, right})
}

func (ctx *Context) popCall() {
	ctx.Calls = ctx.Calls[:len(ctx.Calls)-1]
}

func (ctx *Context) hasCall(left, right *Term) bool {
	for _, c := range ctx.Calls {
		if c.left == left && c.right == right {
			return true
		}
	}
	return false
}

func (ctx *Context) pushMatch(quantifier, candidate *Term, layer *Layer) {
	ctx.Matches = &Obligation{Quantifier: quantifier, Candidate: candidate, Layer: layer, next: ctx.Matches}
}

func (ctx *Context) popMatch() {
	if ctx.Matches != nil {
		ctx.Matches = ctx.Matches.next
	}
}
