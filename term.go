package formlang

import "fmt"

// Tag identifies the shape of a Term's payload. This is the universal
// value of the core: every parsed, transformed, or synthesized node is a
// Term, distinguished only by Tag.
type Tag int

const (
	TagChar Tag = iota
	TagInt
	TagReal
	TagString
	TagName
	TagHook
	TagPair
	TagTriple
	TagCell
	TagBinder
	TagFormValue
)

func (t Tag) String() string {
	switch t {
	case TagChar:
		return "char"
	case TagInt:
		return "int"
	case TagReal:
		return "real"
	case TagString:
		return "string"
	case TagName:
		return "name"
	case TagHook:
		return "hook"
	case TagPair:
		return "pair"
	case TagTriple:
		return "triple"
	case TagCell:
		return "cell"
	case TagBinder:
		return "binder"
	case TagFormValue:
		return "form-value"
	default:
		return "unknown"
	}
}

// notAttributed marks a Pair whose info slot carries no source
// attribution.
const notAttributed = -1

// NotAttributed is notAttributed exported for callers outside the
// package (term readers) building Pair terms with no source position.
func NotAttributed() int64 { return notAttributed }

// Term is the tagged node every component of the core operates on.
// Fields are only meaningful for the tag that uses them; constructors
// are the only place a Term is built, and they all go through
// Context.alloc so allocation stays a single, instrumentable choke
// point.
type Term struct {
	tag Tag
	id  uint64

	// TagChar / TagInt / TagReal
	ch rune
	i  int64
	r  float64

	// TagString: a segmented rope. Segments are kept separate (rather
	// than eagerly concatenated) so Append never copies existing
	// content.
	segments []string

	// TagName
	printable string
	number    int

	// TagHook
	hook *Hook

	// TagPair / TagTriple
	car, cdr *Term
	info     int64 // Pair: source char count, or notAttributed.
	typeInfo *Term // Triple: the inferred type attached to the term.

	// TagCell
	cellType  *Term
	cellValue *Term

	// TagBinder
	bKey   *Term
	bInfo  *Term
	bValue *Term
	bPos   int64

	// TagFormValue: a realized form value, carried as a term so it can
	// flow through Binder/Triple slots like any other reduced value.
	form *Form

	// Forwarded-pointer linkage (only meaningful on ref/row Pair
	// terms built by forward.go's MakeForwardRef). baseName is the
	// name term whose binding this pointer is waiting on. Context.Bases
	// is a slice, so forwardNext is always nil and never read.
	baseName    *Term
	forwardNext *Term
}

func (t *Term) Tag() Tag { return t.tag }

// Car/Cdr are valid for TagPair and TagTriple.
func (t *Term) Car() *Term { return t.car }
func (t *Term) Cdr() *Term { return t.cdr }

// Info returns a Pair's source char count attribution, or notAttributed.
func (t *Term) Info() int64 {
	if t.tag != TagPair {
		return notAttributed
	}
	return t.info
}

// InferredType returns a Triple's attached type, or nil.
func (t *Term) InferredType() *Term {
	if t.tag != TagTriple {
		return nil
	}
	return t.typeInfo
}

func (t *Term) Char() rune    { return t.ch }
func (t *Term) Int() int64    { return t.i }
func (t *Term) Real() float64 { return t.r }

func (t *Term) StringValue() string {
	if len(t.segments) == 1 {
		return t.segments[0]
	}
	out := ""
	for _, s := range t.segments {
		out += s
	}
	return out
}

func (t *Term) Printable() string { return t.printable }
func (t *Term) Number() int       { return t.number }

// IsStub reports whether a Name term was synthesized (a nonzero
// disambiguating number) rather than parsed from source.
func (t *Term) IsStub() bool { return t.tag == TagName && t.number != 0 }

func (t *Term) HookValue() *Hook { return t.hook }

// formValue returns t's realized Form if t is a TagFormValue term.
func (t *Term) formValue() (*Form, bool) {
	if t == nil || t.tag != TagFormValue {
		return nil, false
	}
	return t.form, true
}

func (t *Term) CellType() *Term  { return t.cellType }
func (t *Term) CellValue() *Term { return t.cellValue }

func (t *Term) BinderKey() *Term    { return t.bKey }
func (t *Term) BinderInfo() *Term   { return t.bInfo }
func (t *Term) BinderValue() *Term  { return t.bValue }
func (t *Term) BinderSourcePos() int64 { return t.bPos }

// IsPairHeaded reports whether t is a Pair whose car is the hook h —
// the idiom used throughout types.go/transform.go to recognize a
// specific type constructor or operator form.
func (t *Term) IsPairHeaded(h *Hook) bool {
	return t != nil && t.tag == TagPair && t.car != nil && t.car.tag == TagHook && t.car.hook == h
}

// Head returns t.Car()'s hook if t is a hook-headed pair, else nil.
func (t *Term) Head() *Hook {
	if t == nil || t.tag != TagPair || t.car == nil || t.car.tag != TagHook {
		return nil
	}
	return t.car.hook
}

func (t *Term) String() string {
	if t == nil {
		return "nil"
	}
	switch t.tag {
	case TagChar:
		return fmt.Sprintf("%q", t.ch)
	case TagInt:
		return fmt.Sprintf("%d", t.i)
	case TagReal:
		return fmt.Sprintf("%g", t.r)
	case TagString:
		return fmt.Sprintf("%q", t.StringValue())
	case TagName:
		if t.number == 0 {
			return t.printable
		}
		return fmt.Sprintf("%s#%d", t.printable, t.number)
	case TagHook:
		return t.hook.name
	case TagPair:
		return fmt.Sprintf("(%s . %s)", t.car, t.cdr)
	case TagTriple:
		return fmt.Sprintf("(%s . %s){%s}", t.car, t.cdr, t.typeInfo)
	case TagCell:
		return fmt.Sprintf("cell<%s>(%s)", t.cellType, t.cellValue)
	case TagBinder:
		return fmt.Sprintf("%s:%s", t.bKey, t.bInfo)
	default:
		return "?"
	}
}

// ---- Constructors ----
//
// Every constructor allocates through ctx.alloc; apart from alloc
// itself (context.go), nothing builds a Term by struct literal outside
// this file.

func NewCharacter(ctx *Context, ch rune) *Term {
	t := ctx.alloc(TagChar)
	t.ch = ch
	return t
}

func NewInteger(ctx *Context, v int64) *Term {
	t := ctx.alloc(TagInt)
	t.i = v
	return t
}

func NewReal(ctx *Context, v float64) *Term {
	t := ctx.alloc(TagReal)
	t.r = v
	return t
}

func NewString(ctx *Context, segments ...string) *Term {
	t := ctx.alloc(TagString)
	if len(segments) == 0 {
		segments = []string{""}
	}
	t.segments = append([]string(nil), segments...)
	return t
}

// AppendString returns a new String term whose segments are s's
// followed by suffix, without copying s's existing segments.
func AppendString(ctx *Context, s *Term, suffix string) *Term {
	t := ctx.alloc(TagString)
	t.segments = append(append([]string(nil), s.segments...), suffix)
	return t
}

// Intern returns the unique Name term for (printable, number),
// creating it on first use. Equal (printable, number) pairs always
// yield the identical *Term; stubs
// (nonzero number, see MakeStub) are never looked up this way since
// each stub is deliberately unique.
func Intern(ctx *Context, printable string, number int) *Term {
	key := internKey{printable, number}
	if t, ok := ctx.interned[key]; ok {
		return t
	}
	t := ctx.alloc(TagName)
	t.printable = printable
	t.number = number
	ctx.interned[key] = t
	return t
}

// MakeStub creates a fresh, never-interned Name with a unique nonzero
// number, used by the transformer and procedure expansion to rebind
// parameters without capturing the source name.
func MakeStub(ctx *Context, printable string) *Term {
	ctx.nextStub++
	t := ctx.alloc(TagName)
	t.printable = printable
	t.number = ctx.nextStub
	return t
}

func NewPair(ctx *Context, car, cdr *Term, info int64) *Term {
	t := ctx.alloc(TagPair)
	t.car, t.cdr, t.info = car, cdr, info
	return t
}

// NewHookPair builds the common (hook . cdr) shape used for type
// constructors and operator forms, with no source attribution.
func NewHookPair(ctx *Context, h *Hook, cdr *Term) *Term {
	return NewPair(ctx, NewHookTerm(ctx, h), cdr, notAttributed)
}

func NewTriple(ctx *Context, car, cdr, inferredType *Term) *Term {
	t := ctx.alloc(TagTriple)
	t.car, t.cdr, t.typeInfo = car, cdr, inferredType
	return t
}

func NewHookTerm(ctx *Context, h *Hook) *Term {
	t := ctx.alloc(TagHook)
	t.hook = h
	return t
}

func NewCell(ctx *Context, typ, value *Term) *Term {
	t := ctx.alloc(TagCell)
	t.cellType, t.cellValue = typ, value
	return t
}

func CellSet(c *Term, typ, value *Term) {
	c.cellType, c.cellValue = typ, value
}

// NewFormValue wraps a realized Form so it can be bound like any other
// value.
func NewFormValue(ctx *Context, f *Form) *Term {
	t := ctx.alloc(TagFormValue)
	t.form = f
	return t
}

func NewBinder(ctx *Context, key, info, value *Term, pos int64) *Term {
	t := ctx.alloc(TagBinder)
	t.bKey, t.bInfo, t.bValue, t.bPos = key, info, value, pos
	return t
}

// List builds a proper list of items as nested Pairs terminated by nil.
func List(ctx *Context, items ...*Term) *Term {
	var tail *Term
	for i := len(items) - 1; i >= 0; i-- {
		tail = NewPair(ctx, items[i], tail, notAttributed)
	}
	return tail
}

// ListItems collects the car of every Pair in a proper list.
func ListItems(list *Term) []*Term {
	var out []*Term
	for list != nil {
		out = append(out, list.car)
		list = list.cdr
	}
	return out
}
