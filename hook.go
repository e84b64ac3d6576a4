package formlang

// Hook is a process-wide singleton tag identifying a built-in operator
// or type constructor. Hooks compare by identity:
// two Hook values are the same hook iff they are the same pointer.
type Hook struct {
	id   int
	name string
}

func (h *Hook) String() string { return h.name }

var hookTable []*Hook

func newHook(name string) *Hook {
	h := &Hook{id: len(hookTable), name: name}
	hookTable = append(hookTable, h)
	return h
}

// LookupHook resolves a hook by its printable name — the one lookup a
// term reader needs to turn a leading symbol like `int-add` into a
// hook-headed Pair instead of a plain name application.
func LookupHook(name string) (*Hook, bool) {
	for _, h := range hookTable {
		if h.name == name {
			return h, true
		}
	}
	return nil, false
}

// Simple types.
var (
	Char0Hook = newHook("char0")
	Char1Hook = newHook("char1")
	Int0Hook  = newHook("int0")
	Int1Hook  = newHook("int1")
	Int2Hook  = newHook("int2")
	Real0Hook = newHook("real0")
	Real1Hook = newHook("real1")
	VoidHook  = newHook("void")
	NullHook  = newHook("null")
)

// Type constructors.
var (
	RefHook   = newHook("ref")
	RowHook   = newHook("row")
	VarHook   = newHook("var")
	ArrayHook = newHook("array")
	TupleHook = newHook("tuple")
	CellHook  = newHook("cell")
	ListHook  = newHook("list")
	ProcHook  = newHook("proc")
	FormHook  = newHook("form")
	GenHook   = newHook("gen")
	SkoHook   = newHook("sko")
	SymHook   = newHook("sym")
	TypeHook  = newHook("type")
	AltsHook  = newHook("alts")
	CloseHook = newHook("close")
)

// Jokers: type-set wildcards.
var (
	ObjHook = newHook("obj")
	ExeHook = newHook("exe")
	InjHook = newHook("inj")
	FojHook = newHook("foj")
	MutHook = newHook("mut")
	RejHook = newHook("rej")
	NomHook = newHook("nom")
)

// Operator / transformer hooks.
var (
	ApplyHook     = newHook("apply")
	WithHook      = newHook("with")
	ProgHook      = newHook("prog")
	LoadHook      = newHook("load")
	AltHook       = newHook("alt")
	CellMakeHook  = newHook("cell-make")
	CellGetHook   = newHook("cell-get")
	CellSetHook   = newHook("cell-set")
	VarSetHook    = newHook("var-set")
	RefOpHook     = newHook("ref-op")
	RowOpHook     = newHook("row-op")
	RowToHook     = newHook("row-to")
	ToRowHook     = newHook("to-row")
	VarToHook     = newHook("var-to")
	ToVarHook     = newHook("to-var")
	SkipHook      = newHook("skip")
	NoNameHook    = newHook("no-name")
	CaseHook      = newHook("case")
	IfHook        = newHook("if")
	LastHook      = newHook("last")
	WhileHook     = newHook("while")
	IntAddHook    = newHook("int-add")
	IntSubHook    = newHook("int-sub")
	IntMulHook    = newHook("int-mul")
	CharCastHook  = newHook("char-cast")
	IntCastHook   = newHook("int-cast")
	RealCastHook  = newHook("real-cast")
	PtrCastHook   = newHook("ptr-cast")
	VoidCastHook  = newHook("void-cast")
)

// joker sets: the outer hooks each joker tag admits.
var jokerMembers = map[*Hook]map[*Hook]bool{
	InjHook: {Int0Hook: true, Int1Hook: true, Int2Hook: true},
	FojHook: {Real0Hook: true, Real1Hook: true},
	ObjHook: { // any value type, including jokers themselves
		Char0Hook: true, Char1Hook: true, Int0Hook: true, Int1Hook: true, Int2Hook: true,
		Real0Hook: true, Real1Hook: true, VoidHook: true, NullHook: true,
		RefHook: true, RowHook: true, ArrayHook: true, TupleHook: true, CellHook: true,
		ListHook: true, ProcHook: true, FormHook: true,
		ObjHook: true, ExeHook: true, InjHook: true, FojHook: true, MutHook: true,
		RejHook: true, NomHook: true,
	},
	ExeHook: {ProcHook: true, FormHook: true},
	MutHook: {RefHook: true, RowHook: true},
	RejHook: {RefHook: true},
	NomHook: {SymHook: true},
}

// IsJokerHook reports whether h is one of the type-set wildcard tags.
func IsJokerHook(h *Hook) bool {
	_, ok := jokerMembers[h]
	return ok
}

// JokerAdmits reports whether outer is among the outer hooks joker
// admits.
func JokerAdmits(joker, outer *Hook) bool {
	members, ok := jokerMembers[joker]
	if !ok {
		return false
	}
	return members[outer]
}
