package tape

import (
	"bytes"
	"testing"
)

type bufPeripheral struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func (b *bufPeripheral) ReadByte() (byte, error) { return b.in.ReadByte() }
func (b *bufPeripheral) WriteByte(c byte) error  { return b.out.WriteByte(c) }

func TestSimpleIncrement(t *testing.T) {
	in, err := New("+++", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Run(100); err != nil {
		t.Fatal(err)
	}
	if got := in.Cell(0); got != 3 {
		t.Errorf("cell 0 = %d, want 3", got)
	}
}

func TestWrappingCell(t *testing.T) {
	in, _ := New("-", nil)
	in.Run(10)
	if got := in.Cell(0); got != 255 {
		t.Errorf("cell 0 = %d, want 255 (wrapped)", got)
	}
}

func TestLoopClearsCell(t *testing.T) {
	in, _ := New("+++++[-]", nil)
	in.Run(100)
	if got := in.Cell(0); got != 0 {
		t.Errorf("cell 0 = %d, want 0", got)
	}
}

func TestMoveAndWrite(t *testing.T) {
	in, _ := New(">+++<++", nil)
	in.Run(100)
	if got := in.Cell(0); got != 2 {
		t.Errorf("cell 0 = %d, want 2", got)
	}
	if got := in.Cell(1); got != 3 {
		t.Errorf("cell 1 = %d, want 3", got)
	}
}

func TestIOEcho(t *testing.T) {
	p := &bufPeripheral{in: bytes.NewReader([]byte("A"))}
	in, _ := New(",.", p)
	if err := in.Run(10); err != nil {
		t.Fatal(err)
	}
	if p.out.String() != "A" {
		t.Errorf("output = %q, want %q", p.out.String(), "A")
	}
}

func TestUnmatchedBracketErrors(t *testing.T) {
	if _, err := New("[+", nil); err == nil {
		t.Error("expected error for unmatched '['")
	}
	if _, err := New("+]", nil); err == nil {
		t.Error("expected error for unmatched ']'")
	}
}

func TestRunStepBound(t *testing.T) {
	// "+[]" sets cell 0 nonzero then loops forever on an empty body:
	// the cell is never touched again, so the loop never exits.
	in, _ := New("+[]", nil)
	if err := in.Run(1000); err == nil {
		t.Error("expected step-bound error for an infinite loop")
	}
}

func TestHibernateRoundTrip(t *testing.T) {
	in, _ := New("+++>++", nil)
	in.Run(10)

	data, err := in.HibernateToBytes()
	if err != nil {
		t.Fatal(err)
	}

	restored, err := RestoreFromBytes(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Cell(0) != 3 || restored.Cell(1) != 2 {
		t.Errorf("restored cells = (%d, %d), want (3, 2)", restored.Cell(0), restored.Cell(1))
	}
	if restored.Ptr() != in.Ptr() || restored.Halted != in.Halted {
		t.Errorf("restored control state mismatch: ptr=%d halted=%v", restored.Ptr(), restored.Halted)
	}
}
