package formlang

import "fmt"

// Mnemonic is a fixed error code reported to the driver. The driver — out of scope here — renders these per source
// location; the core only ever produces them.
type Mnemonic string

const (
	MnemonicApostrophesExpected Mnemonic = "aax"
	MnemonicUnexpectedType      Mnemonic = "ehut"
	MnemonicMemoryExhausted     Mnemonic = "me"
	MnemonicCompilationHalted   Mnemonic = "ch"
	MnemonicUnboundName         Mnemonic = "unb"
	MnemonicNoApplicableMember  Mnemonic = "noam"
	MnemonicUnforwardedPointer  Mnemonic = "unfp"
	MnemonicArityMismatch       Mnemonic = "arty"
	MnemonicNotCoercible        Mnemonic = "ncoe"
)

// ObjectError is a transformation-time error attached to a term's
// source attribution. It never aborts
// reduction: the transformer records it and replaces the failing term
// with skip : void.
type ObjectError struct {
	Mnemonic Mnemonic
	Message  string
	At       CharCount
}

func (e ObjectError) Error() string {
	return fmt.Sprintf("%s: %s @ %d:%d", e.Mnemonic, e.Message, e.At.File(), e.At.Offset())
}

// InternalError is fatal: memory exhaustion or an invariant violation.
// Propagation unwinds to the driver via Go's ordinary panic/recover,
// matching the core's single global "halt" cancellation model without inventing a second panic convention beyond the one the
// teacher already uses for programmer-error panics (config.go).
type InternalError struct {
	Mnemonic Mnemonic
	Message  string
}

func (e InternalError) Error() string { return fmt.Sprintf("%s: %s", e.Mnemonic, e.Message) }

func Halt(mnemonic Mnemonic, format string, args ...any) {
	panic(InternalError{Mnemonic: mnemonic, Message: fmt.Sprintf(format, args...)})
}

// Place is the error set recorded at one source position. PlaceSet accumulates every Place seen during a run; its
// union is the final error set.
type Place struct {
	At     CharCount
	Errors []ObjectError
}

type PlaceSet struct {
	byOffset map[CharCount]*Place
	order    []CharCount
}

func (ps *PlaceSet) Record(err ObjectError) {
	if ps.byOffset == nil {
		ps.byOffset = map[CharCount]*Place{}
	}
	p, ok := ps.byOffset[err.At]
	if !ok {
		p = &Place{At: err.At}
		ps.byOffset[err.At] = p
		ps.order = append(ps.order, err.At)
	}
	p.Errors = append(p.Errors, err)
}

func (ps *PlaceSet) IsEmpty() bool { return len(ps.order) == 0 }

// Places returns every recorded Place in first-seen order.
func (ps *PlaceSet) Places() []*Place {
	out := make([]*Place, 0, len(ps.order))
	for _, c := range ps.order {
		out = append(out, ps.byOffset[c])
	}
	return out
}

// Merge folds other's places into ps, so ps ends up holding the union
// of both error sets.
func (ps *PlaceSet) Merge(other PlaceSet) {
	for _, p := range other.Places() {
		for _, e := range p.Errors {
			ps.Record(e)
		}
	}
}
