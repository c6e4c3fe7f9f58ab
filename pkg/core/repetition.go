package core

import "strings"

// Repetition emits Inner Count times in a row, each time re-deriving the
// state transition freshly against whatever state the previous iteration
// left behind (so e.g. `(+)*3` is tracked as three successive known
// increments, not folded through the loop-closure machinery — a
// Repetition's count is compile-time constant, so there is no need to
// guess at an indeterminate number of iterations). Grounded on tokens.py's
// Repetition.
type Repetition struct {
	span  Span
	Inner Construct
	Count int
}

func NewRepetition(span Span, inner Construct, count int) *Repetition {
	return &Repetition{span: span, Inner: inner, Count: count}
}

func (r *Repetition) Span() Span { return r.span }

func (r *Repetition) Emit(s *AbstractState) string {
	var out strings.Builder
	for i := 0; i < r.Count; i++ {
		out.WriteString(emitChild(r.Inner, s))
	}
	return out.String()
}

// Delta is the pure counterpart: thread a scratch state through Count
// successive applications of Inner's delta and compose the results.
func (r *Repetition) Delta(s *AbstractState) StateDelta {
	scratch := s.Clone()

	total := Identity()
	for i := 0; i < r.Count; i++ {
		d := r.Inner.Delta(scratch)
		scratch.Apply(d, r.Inner.Span())
		total = Compose(total, d)
	}
	return total
}
