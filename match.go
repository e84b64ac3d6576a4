package formlang

// Obligation is one pending "does this candidate still fit" check
// deferred during subtype matching of a quantified member: matching `exe[a -> b]` against a concrete procedure type
// records an Obligation for each quantified parameter instead of
// failing immediately, so a later member with a better fit for the
// quantifier can still be tried. Context.Matches threads the chain,
// newest first, through nested subtype calls.
type Obligation struct {
	Quantifier *Term
	Candidate  *Term
	Layer      *Layer
	next       *Obligation
}

// IsMatched reports whether the candidate of every recorded obligation
// for quantifier is a subtype of quantifier under that obligation's
// layer. Nothing in the core calls it.
func (ctx *Context) IsMatched(quantifier *Term) bool {
	for o := ctx.Matches; o != nil; o = o.next {
		if o.Quantifier == quantifier && !IsSubtype(ctx, o.Layer, o.Candidate, quantifier) {
			return false
		}
	}
	return true
}
