package hydroconfig

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// text holds a piece of the configuration text along
// with its byte offsets in the original, so that errors
// can be reported against the right place.
type text struct {
	s      string
	p0, p1 int
}

func newText(s string) text {
	return text{
		s:  s,
		p1: len(s),
	}
}

func (t text) slice(p0, p1 int) text {
	return text{
		s:  t.s[p0:p1],
		p0: t.p0 + p0,
		p1: t.p0 + p1,
	}
}

func (t text) eqFold(s string) bool {
	return strings.EqualFold(t.s, s)
}

// word returns the first run of non-space runes in t
// and the text that follows it.
func (t text) word() (text, text) {
	start := strings.IndexFunc(t.s, notSpace)
	if start == -1 {
		return t.slice(0, 0), t.slice(len(t.s), len(t.s))
	}
	end := strings.IndexFunc(t.s[start:], unicode.IsSpace)
	if end == -1 {
		end = len(t.s)
	} else {
		end += start
	}
	return t.slice(start, end), t.slice(end, len(t.s))
}

// line returns the first line of t, without its newline,
// and the text following it.
func (t text) line() (text, text) {
	i := strings.Index(t.s, "\n")
	if i == -1 {
		return t, t.slice(len(t.s), len(t.s))
	}
	return t.slice(0, i), t.slice(i+1, len(t.s))
}

// cutComment returns t up to the start of any comment.
// A comment starts with a # at the start of t or after a space,
// so that a # inside a word, as in "Burn#2", is kept.
func (t text) cutComment() text {
	for i := 0; i < len(t.s); i++ {
		if t.s[i] != '#' {
			continue
		}
		if i == 0 {
			return t.slice(0, 0)
		}
		if r, _ := utf8.DecodeLastRuneInString(t.s[:i]); unicode.IsSpace(r) {
			return t.slice(0, i)
		}
	}
	return t
}

func (t text) trimSpace() text {
	start := strings.IndexFunc(t.s, notSpace)
	if start == -1 {
		return t.slice(len(t.s), len(t.s))
	}
	end := strings.LastIndexFunc(t.s, notSpace)
	_, size := utf8.DecodeRuneInString(t.s[end:])
	return t.slice(start, end+size)
}

// trimPrefix reports whether t starts with the words in p,
// compared without regard to case or the amount of space
// between them, and returns the text after them if so.
func (t text) trimPrefix(p string) (text, bool) {
	t0 := t
	for _, pw := range strings.Fields(p) {
		var tw text
		tw, t = t.word()
		if !tw.eqFold(pw) {
			return t0, false
		}
	}
	return t, true
}

// number parses the first word of t as a decimal number.
// When percent is true, a percent sign directly after the
// number is allowed. It returns the number, the word that
// held it, and the rest of the text.
func (t text) number(percent bool) (float64, text, text, error) {
	w, rest := t.word()
	s := w.s
	if percent {
		s = strings.TrimSuffix(s, "%")
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, w, rest, err
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
