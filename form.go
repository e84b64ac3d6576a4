package formlang

// Member is one callable alternative of a form value: a proc type
// (possibly gen-quantified; Apply skolemizes it per call) paired with the closure (a transformed procedure body and
// the layer it closes over) that implements it.
type Member struct {
	Type    *Term
	Params  []*Term
	Body    *Term
	Closure *Layer
}

// Form is a realized form value: an ordered list of Members tried in
// order at an application site.
type Form struct {
	Members []*Member
}

// Apply finds the first Member of f whose type accepts args' types
// under layer, skolemizing each member's quantifiers fresh before
// comparison so two call sites never share a witness. It reports the
// chosen Member, or returns an ObjectError with
// MnemonicNoApplicableMember if none apply.
func Apply(ctx *Context, f *Form, args []*Term, argTypes []*Term, layer *Layer, at CharCount) (*Member, error) {
	for _, m := range f.Members {
		memberType := m.Type
		if memberType.Head() == GenHook {
			memberType = Skolemize(ctx, memberType)
		}
		if memberAccepts(ctx, memberType, argTypes, layer) {
			return m, nil
		}
	}
	return nil, ObjectError{
		Mnemonic: MnemonicNoApplicableMember,
		Message:  "no applicable member for this call",
		At:       at,
	}
}

// memberAccepts reports whether every argType coerces into memberType's
// corresponding parameter — coercion, not subtyping, is the relation
// form dispatch is specified against, so a caller passing a char0
// where the member wants an int2 still dispatches.
func memberAccepts(ctx *Context, memberType *Term, argTypes []*Term, layer *Layer) bool {
	domain := TypeDomain(memberType)
	if len(domain) != len(argTypes) {
		return false
	}
	for i, want := range domain {
		if !IsCoercing(ctx, layer, argTypes[i], want) {
			return false
		}
	}
	return true
}

// Subsumes reports whether every member of other is already covered by
// some member of f — the check form-definition merging runs before
// adding a new member, so that redundant members never inflate the
// dispatch list. Coverage uses the same coercion relation application
// dispatch does: a member whose parameters merely coerce into an
// existing member's is still redundant.
func Subsumes(ctx *Context, f *Form, other *Form, layer *Layer) bool {
	for _, om := range other.Members {
		covered := false
		for _, m := range f.Members {
			if formCoercesInto(ctx, om.Type, m.Type, layer) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// Concatenate builds the form produced by `alt`:
// members of the later form take precedence, so ties are broken by
// appending earlier-form members only when the later form doesn't
// already subsume them.
func Concatenate(ctx *Context, earlier, later *Form, layer *Layer) *Form {
	out := &Form{Members: append([]*Member(nil), later.Members...)}
	for _, m := range earlier.Members {
		redundant := false
		for _, lm := range later.Members {
			if formCoercesInto(ctx, m.Type, lm.Type, layer) {
				redundant = true
				break
			}
		}
		if !redundant {
			out.Members = append(out.Members, m)
		}
	}
	return out
}

// formCoercesInto reports whether every parameter of proc type from
// coerces componentwise into to's corresponding parameter — the
// subsumption test of §4.6, distinct from Apply's IsCoercing check
// only in that it compares two declared domains rather than a domain
// against concrete argument types.
func formCoercesInto(ctx *Context, from, to *Term, layer *Layer) bool {
	fd, td := TypeDomain(from), TypeDomain(to)
	if len(fd) != len(td) {
		return false
	}
	for i := range fd {
		if !IsCoercing(ctx, layer, fd[i], td[i]) {
			return false
		}
	}
	return true
}
