package core

import "testing"

func TestComposePtrDeltas(t *testing.T) {
	a := StateDelta{Cells: map[int]CellAction{}, PtrDelta: 2}
	b := StateDelta{Cells: map[int]CellAction{}, PtrDelta: 3}
	c := Compose(a, b)
	if c.PtrDelta != 5 {
		t.Errorf("PtrDelta = %d; want 5", c.PtrDelta)
	}
}

func TestComposeRebasesSecondCells(t *testing.T) {
	// a moves the pointer by 2; b then sets offset 0 (now absolute
	// offset 2 from the original pointer) to a known value.
	a := StateDelta{Cells: map[int]CellAction{}, PtrDelta: 2}
	b := StateDelta{Cells: map[int]CellAction{0: SetTo{V: 9}}}
	c := Compose(a, b)
	if act, ok := c.Cells[2]; !ok || act != (SetTo{V: 9}) {
		t.Errorf("Compose should rebase b's cell 0 to offset 2, got %v", c.Cells)
	}
}

func TestComposeChainsSameCell(t *testing.T) {
	a := StateDelta{Cells: map[int]CellAction{0: NewDelta(3)}}
	b := StateDelta{Cells: map[int]CellAction{0: NewDelta(4)}}
	c := Compose(a, b)
	if c.Cells[0] != NewDelta(7) {
		t.Errorf("Compose should chain same-offset actions via After, got %s", c.Cells[0])
	}
}

func TestComposeGenDeltaDiscardsFirst(t *testing.T) {
	a := StateDelta{Cells: map[int]CellAction{0: NewDelta(3)}, PtrDelta: 7}
	b := StateDelta{Cells: map[int]CellAction{1: NewDelta(1)}, GenDelta: 1}
	c := Compose(a, b)
	if c.PtrDelta != 0 {
		t.Errorf("PtrDelta should be b's own (0) once b invalidates the generation, got %d", c.PtrDelta)
	}
	if _, ok := c.Cells[0]; ok {
		t.Errorf("a's cells should be discarded once b invalidates the generation")
	}
	if c.Cells[1] != NewDelta(1) {
		t.Errorf("b's own cells should survive, got %v", c.Cells)
	}
}

func TestIsStable(t *testing.T) {
	if !Identity().IsStable() {
		t.Errorf("identity should be stable")
	}
	if (StateDelta{PtrDelta: 1}).IsStable() {
		t.Errorf("nonzero ptr delta should not be stable")
	}
	if (StateDelta{GenDelta: 1}).IsStable() {
		t.Errorf("nonzero gen delta should not be stable")
	}
}

func TestRepeatedUnstableBumpsGen(t *testing.T) {
	d := StateDelta{Cells: map[int]CellAction{0: NewDelta(1)}, PtrDelta: 1}
	r := d.Repeated()
	if r.GenDelta != 1 {
		t.Errorf("repeating an unstable delta should bump the generation, got %d", r.GenDelta)
	}
	if len(r.Cells) != 0 {
		t.Errorf("repeating an unstable delta can't keep any cell knowledge, got %v", r.Cells)
	}
}

func TestRepeatedStableClosesEachCell(t *testing.T) {
	d := StateDelta{Cells: map[int]CellAction{0: NewDelta(3), 1: NewDelta(0)}}
	r := d.Repeated()
	if _, ok := r.Cells[0].(Unknown); !ok {
		t.Errorf("a nonzero per-iteration delta becomes Unknown once closed, got %s", r.Cells[0])
	}
	if r.Cells[1] != NewDelta(0) {
		t.Errorf("a no-op cell stays a no-op once closed, got %s", r.Cells[1])
	}
}

func TestRepeatedIsIdempotent(t *testing.T) {
	d := StateDelta{Cells: map[int]CellAction{0: NewDelta(3), 1: SetTo{V: 5}}}
	once := d.Repeated()
	twice := once.Repeated()
	for off, act := range once.Cells {
		if twice.Cells[off] != act {
			t.Errorf("closing a delta twice should match closing it once at offset %d: %s vs %s", off, twice.Cells[off], act)
		}
	}
}
