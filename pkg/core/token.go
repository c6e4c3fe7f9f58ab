package core

import "fmt"

// PrimitiveKind is one of the six target-language instructions a
// PrimitiveToken can emit.
type PrimitiveKind byte

const (
	Inc     PrimitiveKind = '+'
	Dec     PrimitiveKind = '-'
	Left    PrimitiveKind = '<'
	Right   PrimitiveKind = '>'
	Output  PrimitiveKind = '.'
	Input   PrimitiveKind = ','
)

// PrimitiveToken is a single literal target-language instruction. It never
// mutates the state itself — by design, its Delta fully captures its
// effect, and the enclosing Sequence/Repetition applies that delta via
// emitChild. Grounded on tokens.py's BFToken, whose into_bf likewise just
// returns the character.
type PrimitiveToken struct {
	span Span
	Kind PrimitiveKind
}

// NewPrimitiveToken builds a PrimitiveToken, panicking on an unrecognized
// kind — a parser bug, not a user-facing diagnostic.
func NewPrimitiveToken(span Span, kind PrimitiveKind) *PrimitiveToken {
	switch kind {
	case Inc, Dec, Left, Right, Output, Input:
	default:
		panic(fmt.Sprintf("core: unrecognized primitive kind %q", rune(kind)))
	}
	return &PrimitiveToken{span: span, Kind: kind}
}

func (t *PrimitiveToken) Span() Span { return t.span }

func (t *PrimitiveToken) Emit(*AbstractState) string {
	return string(rune(t.Kind))
}

func (t *PrimitiveToken) Delta(*AbstractState) StateDelta {
	switch t.Kind {
	case Right:
		return StateDelta{Cells: map[int]CellAction{}, PtrDelta: 1}
	case Left:
		return StateDelta{Cells: map[int]CellAction{}, PtrDelta: -1}
	case Inc:
		return StateDelta{Cells: map[int]CellAction{0: NewDelta(1)}}
	case Dec:
		return StateDelta{Cells: map[int]CellAction{0: NewDelta(-1)}}
	case Input:
		return StateDelta{Cells: map[int]CellAction{0: Unknown{}}}
	case Output:
		return Identity()
	}
	return Identity()
}

func (t *PrimitiveToken) String() string {
	return string(rune(t.Kind))
}

// Debug is a no-op-on-target-code construct that prints the current
// abstract state (and this span) for the benefit of whoever is inspecting
// a compile, e.g. a CLI debug mode. Grounded on tokens.py's Debug class.
type Debug struct {
	span  Span
	Label string
}

func NewDebug(span Span, label string) *Debug {
	return &Debug{span: span, Label: label}
}

func (d *Debug) Span() Span { return d.span }

func (d *Debug) Emit(s *AbstractState) string {
	if !s.Quiet {
		s.Sink.Report(Message{
			Kind:     "Debug",
			Severity: SeverityWarning,
			Span:     d.span,
			Text:     fmt.Sprintf("%s: ptr=%d gen=%d", d.Label, s.Ptr, s.PtrGen),
		})
	}
	return ""
}

func (d *Debug) Delta(*AbstractState) StateDelta {
	return Identity()
}
