package formlang

import (
	"fmt"
	"strconv"
	"strings"
)

// emitCharLiteral renders a char0/char1 value as a C character
// constant, escaping the handful of characters C requires.
func emitCharLiteral(ch rune) string {
	switch ch {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case 0:
		return `'\0'`
	default:
		return "'" + string(ch) + "'"
	}
}

// emitIntLiteral renders an int0/1/2 value with the suffix C needs to
// keep it from silently truncating to `int`.
func emitIntLiteral(v int64, typ *Term) string {
	suffix := ""
	if typ != nil {
		switch typ.HookValue() {
		case Int1Hook:
			suffix = "L"
		case Int2Hook:
			suffix = "LL"
		}
	}
	return strconv.FormatInt(v, 10) + suffix
}

// emitRealLiteral renders a real0/1 value so C parses it back as a
// floating literal even when the value happens to be integral.
func emitRealLiteral(v float64, typ *Term) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	if typ != nil && typ.HookValue() == Real0Hook {
		s += "f"
	}
	return s
}

// emitStringLiteral renders a string term's segments as one escaped C
// string literal, concatenating segments first since C doesn't carry
// the rope structure used to avoid copies at compile time.
func emitStringLiteral(s *Term) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.StringValue() {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			fmt.Fprintf(&b, "%c", r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
