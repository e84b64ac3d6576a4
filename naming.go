package formlang

import (
	"strconv"
	"strings"
	"unicode"
)

// sanitizeCIdent maps an arbitrary printable name to a valid C
// identifier, serving this emitter's term names.
func sanitizeCIdent(s string) string {
	if s == "" {
		return "X"
	}
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if i == 0 {
			if r == '_' || unicode.IsLetter(r) {
				b.WriteRune(r)
				continue
			}
			if unicode.IsDigit(r) {
				b.WriteRune('_')
				b.WriteRune(r)
				continue
			}
			b.WriteRune('_')
			continue
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// reservedCWords are the C keywords and this runtime's own reserved
// identifiers that a user-chosen name must never collide with once
// emitted.
var reservedCWords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "int": true, "long": true, "register": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true, "struct": true,
	"switch": true, "typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true,
	// this runtime's own reserved C names.
	"frame": true, "main": true, "gc_root": true,
	"gc_frame": true, "gc_top": true, "gc_frame_open": true, "gc_frame_close": true,
}

// cNamer assigns a stable, collision-free C identifier to every Name
// term it is asked about, mapping a dirty source name to a clean C
// identifier once and caching the mapping by the name's allocation id
// — two distinct stub copies of the same printable name each get a
// distinct `_oN` suffix rather than colliding.
type cNamer struct {
	byID map[uint64]string
	used map[string]bool
}

func newCNamer() *cNamer {
	return &cNamer{byID: map[uint64]string{}, used: map[string]bool{}}
}

func (n *cNamer) Name(t *Term) string {
	if t.Tag() != TagName {
		Halt(MnemonicCompilationHalted, "cNamer.Name called on non-name term")
	}
	if name, ok := n.byID[t.id]; ok {
		return name
	}
	base := sanitizeCIdent(t.Printable())
	if reservedCWords[base] {
		base = base + "_"
	}
	candidate := base
	suffix := 0
	for n.used[candidate] || reservedCWords[candidate] {
		suffix++
		candidate = base + "_o" + strconv.Itoa(suffix)
	}
	n.used[candidate] = true
	n.byID[t.id] = candidate
	return candidate
}
