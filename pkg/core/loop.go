package core

import "fmt"

// Loop is `[...]`: the target language's one control-flow primitive, with
// an explicit stability annotation attached at the source level. Grounded
// on tokens.py's BFLoop.
type Loop struct {
	span Span
	// IsStable asserts that one iteration of Inner leaves the pointer
	// (and generation) exactly where it found it. Violating that while
	// IsStable is true raises LoopNotStable; an explicitly unstable loop
	// is never checked and always invalidates the current generation,
	// since its net pointer movement per iteration can't be trusted.
	IsStable bool
	Inner    Construct
}

func NewLoop(span Span, isStable bool, inner Construct) *Loop {
	return &Loop{span: span, IsStable: isStable, Inner: inner}
}

func (l *Loop) Span() Span { return l.span }

// rawBodyDelta computes Inner's delta against s and forces it into
// whatever shape this loop's stability annotation demands, reporting
// LoopNotStable against s if a declared-stable body isn't. Called once
// for real (from a stable loop's Emit, to compute the pre-body closure)
// and once more,
// quietly, whenever the loop itself is recomputed via emitChild or this
// Delta method — matching tokens.py's get_inner_delta_rep.
func (l *Loop) rawBodyDelta(s *AbstractState) StateDelta {
	d := l.Inner.Delta(s)

	if l.IsStable && !d.IsStable() {
		s.Report(loopNotStable(l.span, d))
		d.PtrDelta = 0
		d.GenDelta = 0
	}
	if !l.IsStable {
		d.PtrDelta = 0
		d.GenDelta++
	}
	return d
}

// Emit checks whether the loop is provably dead (current cell known
// zero), computes and applies the pre-body closure so the body is
// emitted as if the loop had already run some indeterminate number of
// times, then emits the body for real exactly once. For an unstable loop
// the pre-body closure is taken over Inner's own delta, so the generation
// is bumped before the body only when the body itself is unbalanced. A
// dead loop's body is still emitted (for diagnostic and state-bookkeeping
// consistency — tokens.py's BFLoop.into_bf always recurses) but the
// produced text is discarded.
func (l *Loop) Emit(s *AbstractState) string {
	cur, known := s.CellKnown(s.Ptr)
	effective := !(known && cur == 0)

	if !effective {
		note := "this cell has never been written to"
		if sp, ok := s.LastWriteSpan(s.Ptr); ok {
			note = fmt.Sprintf("this cell was last known to be set at %s", sp)
		}
		s.Report(ineffectiveLoop(l.span, note))
	}

	var pre StateDelta
	if l.IsStable {
		pre = l.rawBodyDelta(s).Repeated()
	} else {
		pre = l.Inner.Delta(s).Repeated()
	}
	s.Apply(pre, l.span)

	body := l.Inner.Emit(s)

	if !effective {
		return ""
	}
	return "[" + body + "]"
}

// Delta is the pure total effect of this loop: the closure of one
// iteration's body, composed with the certainty that the loop only
// exits once the current cell is zero. Grounded on BFLoop.get_delta.
func (l *Loop) Delta(s *AbstractState) StateDelta {
	closure := l.rawBodyDelta(s).Repeated()
	reset := StateDelta{Cells: map[int]CellAction{0: SetTo{V: 0}}}
	return Compose(closure, reset)
}
