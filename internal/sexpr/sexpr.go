// Package sexpr is a minimal parenthesized-term reader used to drive
// the core end to end in tests and the cmd/formc demo driver. It is
// deliberately not the real source grammar — just enough
// to build Term trees by hand without constructing them via Go calls
// at every call site.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/formlang/formlang"
)

type reader struct {
	ctx   *formlang.Context
	src   []rune
	pos   int
	file  formlang.FileID
}

// Read parses one top-level term from src and lowers every
// hook-named leading symbol in a list to a hook-headed Pair, via
// formlang.LookupHook, so the result is ready for formlang.Reduce.
func Read(ctx *formlang.Context, file formlang.FileID, src string) (*formlang.Term, error) {
	r := &reader{ctx: ctx, src: []rune(src), file: file}
	r.skipSpace()
	t, err := r.readTerm()
	if err != nil {
		return nil, err
	}
	r.skipSpace()
	if r.pos != len(r.src) {
		return nil, fmt.Errorf("sexpr: trailing input at offset %d", r.pos)
	}
	return t, nil
}

func (r *reader) at() int64 {
	return int64(formlang.PackCharCount(r.file, r.pos))
}

func (r *reader) skipSpace() {
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		if c == ';' {
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.pos++
			}
			continue
		}
		if !unicode.IsSpace(c) {
			return
		}
		r.pos++
	}
}

func (r *reader) readTerm() (*formlang.Term, error) {
	r.skipSpace()
	if r.pos >= len(r.src) {
		return nil, fmt.Errorf("sexpr: unexpected end of input")
	}
	switch c := r.src[r.pos]; {
	case c == '(':
		return r.readList()
	case c == '"':
		return r.readString()
	case c == '\'':
		return r.readChar()
	case unicode.IsDigit(c) || (c == '-' && r.pos+1 < len(r.src) && unicode.IsDigit(r.src[r.pos+1])):
		return r.readNumber()
	default:
		return r.readSymbol()
	}
}

func (r *reader) readList() (*formlang.Term, error) {
	at := r.at()
	r.pos++ // consume '('
	var items []*formlang.Term
	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			return nil, fmt.Errorf("sexpr: unterminated list")
		}
		if r.src[r.pos] == ')' {
			r.pos++
			break
		}
		item, err := r.readTerm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, nil
	}
	if items[0].Tag() == formlang.TagName {
		if h, ok := formlang.LookupHook(items[0].Printable()); ok {
			rest := formlang.List(r.ctx, items[1:]...)
			return formlang.NewPair(r.ctx, formlang.NewHookTerm(r.ctx, h), rest, at), nil
		}
	}
	return listWithInfo(r.ctx, items, at), nil
}

func listWithInfo(ctx *formlang.Context, items []*formlang.Term, at int64) *formlang.Term {
	var tail *formlang.Term
	for i := len(items) - 1; i >= 0; i-- {
		pos := int64(formlang.NotAttributed())
		if i == 0 {
			pos = at
		}
		tail = formlang.NewPair(ctx, items[i], tail, pos)
	}
	return tail
}

func (r *reader) readString() (*formlang.Term, error) {
	r.pos++ // consume opening quote
	var b strings.Builder
	for r.pos < len(r.src) && r.src[r.pos] != '"' {
		c := r.src[r.pos]
		if c == '\\' && r.pos+1 < len(r.src) {
			r.pos++
			c = r.src[r.pos]
		}
		b.WriteRune(c)
		r.pos++
	}
	if r.pos >= len(r.src) {
		return nil, fmt.Errorf("sexpr: unterminated string")
	}
	r.pos++ // consume closing quote
	return formlang.NewString(r.ctx, b.String()), nil
}

func (r *reader) readChar() (*formlang.Term, error) {
	r.pos++ // consume opening quote
	if r.pos >= len(r.src) {
		return nil, fmt.Errorf("sexpr: unterminated character literal")
	}
	c := r.src[r.pos]
	r.pos++
	if r.pos >= len(r.src) || r.src[r.pos] != '\'' {
		return nil, fmt.Errorf("sexpr: unterminated character literal")
	}
	r.pos++
	return formlang.NewCharacter(r.ctx, c), nil
}

func (r *reader) readNumber() (*formlang.Term, error) {
	start := r.pos
	if r.src[r.pos] == '-' {
		r.pos++
	}
	isReal := false
	for r.pos < len(r.src) && (unicode.IsDigit(r.src[r.pos]) || r.src[r.pos] == '.') {
		if r.src[r.pos] == '.' {
			isReal = true
		}
		r.pos++
	}
	text := string(r.src[start:r.pos])
	if isReal {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return formlang.NewReal(r.ctx, v), nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, err
	}
	return formlang.NewInteger(r.ctx, v), nil
}

func (r *reader) readSymbol() (*formlang.Term, error) {
	start := r.pos
	for r.pos < len(r.src) && !unicode.IsSpace(r.src[r.pos]) && r.src[r.pos] != '(' && r.src[r.pos] != ')' {
		r.pos++
	}
	if r.pos == start {
		return nil, fmt.Errorf("sexpr: unexpected character %q at offset %d", r.src[r.pos], r.pos)
	}
	text := string(r.src[start:r.pos])
	return formlang.Intern(r.ctx, text, 0), nil
}
