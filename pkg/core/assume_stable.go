package core

// AssumeStable is the "trust me" directive: it emits Inner for real, then
// forgets every known cell value so nothing downstream relies on a
// constant tracked across this opaque region — but it never touches the
// pointer or bumps the generation, so named locations declared before it
// stay resolvable afterward. It exists for loop bodies (or called
// macros) whose net effect genuinely can't be tracked but whose author
// asserts the pointer comes home anyway, sidestepping LoopNotStable.
// Grounded directly on tokens.py's AssumeStable.into_bf/get_delta: into_bf
// emits content for real and only then resets ctx.cell_values; get_delta
// computes content's delta and forces just ptr_delta/ptr_id_delta to
// zero, leaving its cell actions alone. The two are deliberately
// asymmetric (Emit is the more conservative of the two, matching the
// Python exactly) rather than both routing through one shared
// computation.
type AssumeStable struct {
	span  Span
	Inner Construct
}

func NewAssumeStable(span Span, inner Construct) *AssumeStable {
	return &AssumeStable{span: span, Inner: inner}
}

func (a *AssumeStable) Span() Span { return a.span }

// Emit runs Inner for real via the same emit-then-apply-delta discipline
// Sequence/Repetition use for their own children (so a bare PrimitiveToken
// inside Inner still gets its pointer/cell effect folded into s, not just
// its text), then wipes every known cell value (not a generation bump:
// named locations and the pointer are untouched, only the
// constant-propagation knowledge is discarded).
func (a *AssumeStable) Emit(s *AbstractState) string {
	text := emitChild(a.Inner, s)
	s.cells = map[int]cellInfo{}
	s.lastWrite = map[int]Span{}
	return text
}

// Delta computes Inner's pure effect and forces its ptr/gen deltas to
// zero — trusting the programmer's stability claim rather than verifying
// it (unlike a stable Loop, which raises LoopNotStable when its body
// isn't actually balanced) — while preserving Inner's cell actions.
func (a *AssumeStable) Delta(s *AbstractState) StateDelta {
	d := a.Inner.Delta(s)
	d.PtrDelta = 0
	d.GenDelta = 0
	return d
}
