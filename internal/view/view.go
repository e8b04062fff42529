// Package view offers read-only indexed access to one file's token stream.
//
// Every search takes explicit bounds and returns (index, ok); nothing here
// keeps a cursor, so a View can be shared by rules freely.
package view

import "cisniff/internal/token"

// NoBound as an until argument means "scan to the edge of the stream".
const NoBound = -1

type View struct {
	toks []token.Token
}

// New wraps toks. The slice is borrowed and must not be modified afterwards.
func New(toks []token.Token) *View {
	return &View{toks: toks}
}

func (v *View) Len() int { return len(v.toks) }

// At returns the token at i. It panics when i is out of range.
func (v *View) At(i int) token.Token { return v.toks[i] }

// Valid reports whether i addresses a token.
func (v *View) Valid(i int) bool { return i >= 0 && i < len(v.toks) }

// Last returns the index of the final token, -1 for an empty stream.
func (v *View) Last() int { return len(v.toks) - 1 }

// Tokens returns the underlying slice; callers must treat it as read-only.
func (v *View) Tokens() []token.Token { return v.toks }

// FindNext returns the first index in [from, until) whose kind is in kinds.
func (v *View) FindNext(kinds token.Set, from, until int) (int, bool) {
	return v.scanForward(from, until, func(k token.Kind) bool { return kinds.Has(k) })
}

// FindNextNot returns the first index in [from, until) whose kind is not in kinds.
func (v *View) FindNextNot(kinds token.Set, from, until int) (int, bool) {
	return v.scanForward(from, until, func(k token.Kind) bool { return !kinds.Has(k) })
}

// FindPrevious returns the last index in (until, from] whose kind is in kinds.
func (v *View) FindPrevious(kinds token.Set, from, until int) (int, bool) {
	return v.scanBackward(from, until, func(k token.Kind) bool { return kinds.Has(k) })
}

// FindPreviousNot returns the last index in (until, from] whose kind is not in kinds.
func (v *View) FindPreviousNot(kinds token.Set, from, until int) (int, bool) {
	return v.scanBackward(from, until, func(k token.Kind) bool { return !kinds.Has(k) })
}

func (v *View) scanForward(from, until int, match func(token.Kind) bool) (int, bool) {
	if until == NoBound || until > len(v.toks) {
		until = len(v.toks)
	}
	for i := max(from, 0); i < until; i++ {
		if match(v.toks[i].Kind) {
			return i, true
		}
	}
	return -1, false
}

func (v *View) scanBackward(from, until int, match func(token.Kind) bool) (int, bool) {
	if until < NoBound {
		until = NoBound
	}
	for i := min(from, len(v.toks)-1); i > until; i-- {
		if match(v.toks[i].Kind) {
			return i, true
		}
	}
	return -1, false
}

// NextSignificant skips whitespace and comments after i.
func (v *View) NextSignificant(i int) (int, bool) {
	return v.FindNextNot(token.Insignificant, i+1, NoBound)
}
