package core

import "testing"

func TestPrimitiveTokenDeltas(t *testing.T) {
	tests := []struct {
		kind       PrimitiveKind
		wantPtr    int
		wantCellOp CellAction
	}{
		{Inc, 0, NewDelta(1)},
		{Dec, 0, NewDelta(-1)},
		{Left, -1, nil},
		{Right, 1, nil},
	}
	for _, tc := range tests {
		tok := NewPrimitiveToken(NilSpan, tc.kind)
		s := NewAbstractState(nil)
		d := tok.Delta(s)
		if d.PtrDelta != tc.wantPtr {
			t.Errorf("%c: PtrDelta = %d; want %d", tc.kind, d.PtrDelta, tc.wantPtr)
		}
		if tc.wantCellOp != nil && d.Cells[0] != tc.wantCellOp {
			t.Errorf("%c: Cells[0] = %v; want %v", tc.kind, d.Cells[0], tc.wantCellOp)
		}
		if got := tok.Emit(s); got != string(tc.kind) {
			t.Errorf("Emit(%c) = %q; want %q", tc.kind, got, string(tc.kind))
		}
	}
}

func TestPrimitiveTokenBadKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected NewPrimitiveToken to panic on an invalid kind")
		}
	}()
	NewPrimitiveToken(NilSpan, PrimitiveKind('x'))
}

func TestDebugEmitsNothingAndReports(t *testing.T) {
	var got []Message
	s := NewAbstractState(SinkFunc(func(m Message) { got = append(got, m) }))
	dbg := NewDebug(NilSpan, "checkpoint")
	if text := dbg.Emit(s); text != "" {
		t.Errorf("Debug.Emit should produce no code, got %q", text)
	}
	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if !dbg.Delta(s).IsStable() {
		t.Errorf("Debug.Delta should be the identity delta")
	}
}
