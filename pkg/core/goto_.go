package core

import "strings"

// Goto moves the pointer to a named location, emitting a run of `>` or `<`.
// The target must resolve to a single-cell type; a wider type raises
// GotoWide and the pointer moves to the start of that (multi-cell) region
// anyway. Grounded on tokens.py's LocGoto.
type Goto struct {
	span Span
	To   *Path
}

func NewGoto(span Span, to *Path) *Goto {
	return &Goto{span: span, To: to}
}

func (g *Goto) Span() Span { return g.span }

func (g *Goto) Emit(s *AbstractState) string {
	d := g.Delta(s)
	if d.PtrDelta > 0 {
		return strings.Repeat(">", d.PtrDelta)
	}
	return strings.Repeat("<", -d.PtrDelta)
}

func (g *Goto) Delta(s *AbstractState) StateDelta {
	at, typeName, ok := g.To.Resolve(s)
	if !ok {
		return Identity()
	}
	if size := s.Types.SizeOf(typeName); size != 1 {
		s.Report(gotoWide(g.span, typeName, size))
	}
	return StateDelta{Cells: map[int]CellAction{}, PtrDelta: at - s.Ptr}
}
