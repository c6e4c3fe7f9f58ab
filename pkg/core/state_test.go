package core

import "testing"

func TestApplyAdvancesPointerAndCells(t *testing.T) {
	s := NewAbstractState(nil)
	s.Apply(StateDelta{Cells: map[int]CellAction{0: SetTo{V: 5}}, PtrDelta: 1}, NilSpan)
	if s.Ptr != 1 {
		t.Fatalf("Ptr = %d; want 1", s.Ptr)
	}
	if v, ok := s.CellKnown(0); !ok || v != 5 {
		t.Fatalf("cell 0 = (%d, %v); want (5, true)", v, ok)
	}
}

func TestApplyGenDeltaClearsCells(t *testing.T) {
	s := NewAbstractState(nil)
	s.Apply(StateDelta{Cells: map[int]CellAction{0: SetTo{V: 5}}}, NilSpan)
	s.DeclareName("x", 0, "byte")

	s.Apply(StateDelta{Cells: map[int]CellAction{}, GenDelta: 1}, NilSpan)

	if _, ok := s.CellKnown(0); ok {
		t.Errorf("a generation bump should clear all known cells")
	}
	if _, _, ok := s.ResolveName("x"); ok {
		t.Errorf("a generation bump should invalidate names declared under the old generation")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewAbstractState(nil)
	s.Apply(StateDelta{Cells: map[int]CellAction{0: SetTo{V: 1}}}, NilSpan)
	s.DeclareName("x", 0, "byte")

	clone := s.Clone()
	clone.Apply(StateDelta{Cells: map[int]CellAction{0: SetTo{V: 2}}}, NilSpan)
	clone.UndeclareName("x")

	if v, _ := s.CellKnown(0); v != 1 {
		t.Errorf("mutating a clone's cells should not affect the original, got %d", v)
	}
	if _, _, ok := s.ResolveName("x"); !ok {
		t.Errorf("mutating a clone's names should not affect the original")
	}
}

func TestReportDoesNotCountErrorsWhileQuiet(t *testing.T) {
	s := NewAbstractState(nil)
	s.Quiet = true
	s.Report(memNotFound(NilSpan, "x", nil))
	if s.ErrorCount != 0 {
		t.Errorf("ErrorCount = %d; want 0 while quiet", s.ErrorCount)
	}
}

func TestReportSuppressesSinkWhenQuiet(t *testing.T) {
	var got []Message
	s := NewAbstractState(SinkFunc(func(m Message) { got = append(got, m) }))
	s.Quiet = true
	s.Report(memNotFound(NilSpan, "x", nil))
	if len(got) != 0 {
		t.Errorf("expected no sink reports while quiet, got %d", len(got))
	}
	s.Quiet = false
	s.Report(memNotFound(NilSpan, "y", nil))
	if len(got) != 1 {
		t.Errorf("expected one sink report once not quiet, got %d", len(got))
	}
}
