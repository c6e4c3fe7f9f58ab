package pregen

import (
	"fmt"
	"testing"

	"bfppc/pkg/core"
)

// runMacro declares the whole pregen table, declares a byte res/tmp pair,
// invokes the given macro on them, and returns the emitted target text
// together with res's known value after running it against a tape
// interpreter would add an actual execution dependency pkg/pregen
// shouldn't have — instead this test checks the symbolic result directly,
// since the abstract interpreter is required to track it exactly.
func runMacro(t *testing.T, macro string) (text string, resVal byte, known bool) {
	t.Helper()
	s := core.NewAbstractState(nil)
	Install(s)

	decl := core.NewLocDec(core.NilSpan,
		[]core.LocDecl{{Name: "a", TypeName: "byte"}, {Name: "b", TypeName: "byte"}},
		nil, core.NewPath(core.NilSpan, "a"))
	// "a" starts with no known value (a fresh declaration, not a fresh
	// tape): force it to known-zero the same way any `[-]` does, via a
	// stable loop's trailing SetTo(0), before invoking an addN/decN that
	// only adds to whatever res already holds.
	zeroA := core.NewSequence(core.NilSpan,
		core.NewGoto(core.NilSpan, core.NewPath(core.NilSpan, "a")),
		core.NewLoop(core.NilSpan, true, core.NewPrimitiveToken(core.NilSpan, core.Dec)),
	)
	inv := core.NewInvokeMacro(core.NilSpan, macro, core.NewPath(core.NilSpan, "a"), core.NewPath(core.NilSpan, "b"))

	seq := core.NewSequence(core.NilSpan, decl, zeroA, inv)
	text = seq.Emit(s)
	if s.ErrorCount != 0 {
		t.Fatalf("macro %s: %d errors reported", macro, s.ErrorCount)
	}
	aOff, _, ok := s.ResolveName("a")
	if !ok {
		t.Fatalf("macro %s: %q no longer resolvable after call", macro, "a")
	}
	resVal, known = s.CellKnown(aOff)
	return text, resVal, known
}

func TestAddNKnownValue(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 100, 171, 200, 255} {
		_, val, known := runMacro(t, fmt.Sprintf("add%d", n))
		if !known {
			t.Errorf("add%d: result not known constant", n)
			continue
		}
		if int(val) != n {
			t.Errorf("add%d: res = %d, want %d", n, val, n)
		}
	}
}

func TestSetNKnownValue(t *testing.T) {
	for _, n := range []int{0, 1, 42, 255} {
		_, val, known := runMacro(t, fmt.Sprintf("set%d", n))
		if !known || int(val) != n {
			t.Errorf("set%d: res = %d (known=%v), want %d", n, val, known, n)
		}
	}
}

func TestDecNAliasesAddComplement(t *testing.T) {
	// dec5 subtracts 5, i.e. adds 251 to a byte starting at zero.
	_, val, known := runMacro(t, "dec5")
	if !known || val != 251 {
		t.Errorf("dec5: res = %d (known=%v), want 251", val, known)
	}
}

func TestModInverseIsActualInverse(t *testing.T) {
	for _, z := range []int{1, 3, 5, 7, 9, 255} {
		inv := modInverse(z)
		if (z*inv)%256 != 1 {
			t.Errorf("modInverse(%d) = %d, but %d*%d mod 256 = %d, want 1", z, inv, z, inv, (z*inv)%256)
		}
	}
}

func TestInstallRegisters768Macros(t *testing.T) {
	s := core.NewAbstractState(nil)
	Install(s)
	for _, prefix := range []string{"add", "dec", "set"} {
		for _, n := range []int{0, 1, 255} {
			name := fmt.Sprintf("%s%d", prefix, n)
			if _, ok := s.Macros[name]; !ok {
				t.Errorf("expected macro %q to be registered", name)
			}
		}
	}
}
