package formlang

// Compile runs the full core pipeline over one already-parsed unit:
// reduce, resolve forward pointers, expand deferred procedures, then
// emit C. Parsing itself is out of scope; a
// driver hands this a unit term built however it likes, plus the
// top-level Layer any prelude bindings live in.
func Compile(ctx *Context, unit *Term, topLevel *Layer) (string, error) {
	var reduced *Term
	ctx.WithFrame(func(f *rootFrame) {
		reduced = Reduce(ctx, unit, topLevel)
	})

	ResolveForwardPointers(ctx, topLevel)
	ExpandProcedures(ctx)

	if !ctx.Places.IsEmpty() {
		return "", compileError{places: ctx.Places}
	}

	e := NewEmitter(ctx)
	return e.EmitUnit(reduced)
}

// compileError collects every recorded object error into one Go error
// value — the driver decides how to format each Place for the user.
type compileError struct {
	places PlaceSet
}

func (e compileError) Error() string {
	places := e.places.Places()
	if len(places) == 0 {
		return "compilation failed"
	}
	msg := ""
	for i, p := range places {
		if i > 0 {
			msg += "; "
		}
		for _, oe := range p.Errors {
			msg += oe.Error()
		}
	}
	return msg
}
