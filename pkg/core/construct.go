package core

// Construct is one node of the construct tree the parser (an external
// collaborator, per spec.md §1) builds and the core lowers to target code.
type Construct interface {
	// Emit lowers this construct to target code, advancing s as needed.
	Emit(s *AbstractState) string

	// Delta computes this construct's effect on s as a pure StateDelta,
	// without emitting target code. For constructs whose effect can't be
	// expressed as a StateDelta at all (declarations, undeclarations,
	// macro/type registration), Delta performs that registration
	// directly against whatever state is passed to it and returns the
	// identity delta — matching tokens.py, where e.g. LocDec.into_bf is
	// nothing but a call to get_delta.
	Delta(s *AbstractState) StateDelta

	// Span is this construct's source location, used to tag diagnostics
	// and last-writer notes.
	Span() Span
}

// emitChild drives one child of a Sequence or Repetition: Emit first
// (which, for a handful of constructs like Loop, already mutates s
// directly for their own bookkeeping), then recompute the child's Delta
// against the very same state with diagnostics suppressed, then fold that
// delta in. This mirrors tokens.py's "into_bf, then get_delta(ctx.silent()),
// then apply_delta" per-statement loop; see DESIGN.md's "Emit/Delta
// driving discipline" for why the apparent double computation is safe.
// A Sequence or Repetition child is the exception: its own Emit already
// drove each of its children through emitChild, so s holds its whole
// effect and its Delta is not applied a second time.
func emitChild(c Construct, s *AbstractState) string {
	text := c.Emit(s)
	switch c.(type) {
	case *Sequence, *Repetition:
		return text
	}
	wasQuiet := s.Quiet
	s.Quiet = true
	d := c.Delta(s)
	s.Quiet = wasQuiet
	s.Apply(d, c.Span())
	return text
}
