package core

import "testing"

func TestSequenceEmitConcatenatesChildren(t *testing.T) {
	s := NewAbstractState(nil)
	seq := NewSequence(NilSpan,
		NewPrimitiveToken(NilSpan, Inc),
		NewPrimitiveToken(NilSpan, Inc),
		NewPrimitiveToken(NilSpan, Right),
	)
	if got := seq.Emit(s); got != "++>" {
		t.Errorf("Emit() = %q; want %q", got, "++>")
	}
	if v, ok := s.CellKnown(0); !ok || v != 2 {
		t.Errorf("cell 0 = (%d, %v); want (2, true)", v, ok)
	}
	if s.Ptr != 1 {
		t.Errorf("Ptr = %d; want 1", s.Ptr)
	}
}

func TestSequenceDeltaThreadsNamesThroughScratch(t *testing.T) {
	s := NewAbstractState(nil)
	decl := NewLocDec(NilSpan, []LocDecl{{Name: "a", TypeName: "byte"}}, nil, NewPath(NilSpan, "a"))
	goT := NewGoto(NilSpan, NewPath(NilSpan, "a"))
	seq := NewSequence(NilSpan, decl, goT)

	d := seq.Delta(s)
	if d.PtrDelta != 0 {
		t.Errorf("PtrDelta = %d; want 0 (goto to the declared name shouldn't move anywhere)", d.PtrDelta)
	}
	if _, _, ok := s.ResolveName("a"); ok {
		t.Errorf("Delta must not mutate the real state directly")
	}
}

func TestRepetitionEmitsInnerCountTimes(t *testing.T) {
	s := NewAbstractState(nil)
	rep := NewRepetition(NilSpan, NewPrimitiveToken(NilSpan, Inc), 3)
	if got := rep.Emit(s); got != "+++" {
		t.Errorf("Emit() = %q; want %q", got, "+++")
	}
	if v, ok := s.CellKnown(0); !ok || v != 3 {
		t.Errorf("cell 0 = (%d, %v); want (3, true)", v, ok)
	}
}

func TestRepetitionDeltaComposesCount(t *testing.T) {
	s := NewAbstractState(nil)
	rep := NewRepetition(NilSpan, NewPrimitiveToken(NilSpan, Right), 4)
	d := rep.Delta(s)
	if d.PtrDelta != 4 {
		t.Errorf("PtrDelta = %d; want 4", d.PtrDelta)
	}
}
