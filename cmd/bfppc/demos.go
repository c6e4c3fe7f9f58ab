package main

import (
	"bfppc/pkg/core"
	"bfppc/pkg/span"
)

// demo bundles a hand-built construct tree with the literal source text
// it represents, so diagnostics can render a real ascii-art excerpt via
// pkg/span even though this CLI has no parser of its own (spec.md §1
// treats parsing as an external collaborator; these trees stand in for
// its output). Each demo corresponds to one of spec.md §8's end-to-end
// scenarios or invariants.
type demo struct {
	name string
	src  string
	tree core.Construct
}

func demos() []demo {
	return []demo{
		basicIncrement(),
		declareAndGoto(),
		deadLoop(),
		loopZerosCell(),
		unstableLoopInvalidates(),
		macroReentry(),
		addNViaPregen(),
	}
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos() {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

// sp carves a Span out of src covering [start, end).
func sp(f *span.File, start, end int) core.Span {
	return span.NewSpan(f, start, end)
}

func basicIncrement() demo {
	src := "+++"
	f := span.NewFile("basic.bfpp", src)
	return demo{"basic", src, core.NewSequence(sp(f, 0, 3),
		core.NewPrimitiveToken(sp(f, 0, 1), core.Inc),
		core.NewPrimitiveToken(sp(f, 1, 2), core.Inc),
		core.NewPrimitiveToken(sp(f, 2, 3), core.Inc),
	)}
}

// declareAndGoto is spec.md §8 scenario 2: two adjacent byte locations,
// goto the second, increment it.
func declareAndGoto() demo {
	src := "declare (a, b) at a\nto b\n+"
	f := span.NewFile("declare.bfpp", src)
	decl := core.NewLocDec(sp(f, 0, 20),
		[]core.LocDecl{{Name: "a", TypeName: "byte"}, {Name: "b", TypeName: "byte"}},
		nil, core.NewPath(sp(f, 0, 20), "a"))
	goT := core.NewGoto(sp(f, 21, 26), core.NewPath(sp(f, 21, 26), "b"))
	inc := core.NewPrimitiveToken(sp(f, 27, 28), core.Inc)
	return demo{"declare", src, core.NewSequence(sp(f, 0, 28), decl, goT, inc)}
}

// deadLoop is spec.md §8 scenario 3: `[+]` with cell 0 known zero at
// entry must emit nothing and raise IneffectiveLoop.
func deadLoop() demo {
	src := "[-]\n[+]"
	f := span.NewFile("deadloop.bfpp", src)
	clear := core.NewLoop(sp(f, 0, 3), true, core.NewPrimitiveToken(sp(f, 1, 2), core.Dec))
	dead := core.NewLoop(sp(f, 4, 7), true, core.NewPrimitiveToken(sp(f, 5, 6), core.Inc))
	return demo{"deadloop", src, core.NewSequence(sp(f, 0, 7), clear, dead)}
}

// loopZerosCell is spec.md §8 scenario 4: `+ [-]`, cell 0 known 0 after.
func loopZerosCell() demo {
	src := "+\n[-]"
	f := span.NewFile("zeros.bfpp", src)
	inc := core.NewPrimitiveToken(sp(f, 0, 1), core.Inc)
	loop := core.NewLoop(sp(f, 2, 5), true, core.NewPrimitiveToken(sp(f, 3, 4), core.Dec))
	return demo{"zeros", src, core.NewSequence(sp(f, 0, 5), inc, loop)}
}

// unstableLoopInvalidates is spec.md §8 scenario 5: an unstable loop
// bumps the pointer generation, so a later `to a` on a name declared
// before the loop must raise MemNotFound.
func unstableLoopInvalidates() demo {
	src := "declare (a, b) at a\nunstable [ > ]\nto a"
	f := span.NewFile("unstable.bfpp", src)
	decl := core.NewLocDec(sp(f, 0, 20),
		[]core.LocDecl{{Name: "a", TypeName: "byte"}, {Name: "b", TypeName: "byte"}},
		nil, core.NewPath(sp(f, 0, 20), "a"))
	loop := core.NewLoop(sp(f, 21, 32), false, core.NewPrimitiveToken(sp(f, 31, 32), core.Right))
	goT := core.NewGoto(sp(f, 33, 38), core.NewPath(sp(f, 33, 38), "a"))
	return demo{"unstable", src, core.NewSequence(sp(f, 0, 38), decl, loop, goT)}
}

// macroReentry is spec.md §8 scenario 6: a one-parameter macro invoked
// twice against the same declared location, `++`.
func macroReentry() demo {
	src := "def m(x: Byte) at x { + }\ndeclare (a) at a\nrun m(a)\nrun m(a)"
	f := span.NewFile("macro.bfpp", src)
	body := core.NewPrimitiveToken(sp(f, 23, 24), core.Inc)
	declMacro := core.NewDeclareMacro(sp(f, 0, 25), "m", []core.Field{{Name: "x", TypeName: "byte"}}, core.NewPath(sp(f, 10, 11), "x"), body)
	declLoc := core.NewLocDec(sp(f, 26, 43), []core.LocDecl{{Name: "a", TypeName: "byte"}}, nil, core.NewPath(sp(f, 26, 43), "a"))
	call1 := core.NewInvokeMacro(sp(f, 44, 52), "m", core.NewPath(sp(f, 44, 52), "a"))
	call2 := core.NewInvokeMacro(sp(f, 53, 61), "m", core.NewPath(sp(f, 53, 61), "a"))
	return demo{"macro", src, core.NewSequence(sp(f, 0, 61), declMacro, declLoc, call1, call2)}
}

// addNViaPregen declares a byte, zeroes it, and calls the pre-generated
// add200 macro on it — spec.md §6's pre-generated macro table exercised
// end to end.
func addNViaPregen() demo {
	src := "declare (res, tmp) at tmp\nzero res\nrun add200(res, tmp)"
	f := span.NewFile("addn.bfpp", src)
	decl := core.NewLocDec(sp(f, 0, 26),
		[]core.LocDecl{{Name: "res", TypeName: "byte"}, {Name: "tmp", TypeName: "byte"}},
		nil, core.NewPath(sp(f, 0, 26), "tmp"))
	// Flattened directly into the outer Sequence's child list rather
	// than wrapped in a nested Sequence.
	gotoRes := core.NewGoto(sp(f, 27, 35), core.NewPath(sp(f, 27, 35), "res"))
	clearRes := core.NewLoop(sp(f, 27, 35), true, core.NewPrimitiveToken(sp(f, 27, 35), core.Dec))
	call := core.NewInvokeMacro(sp(f, 36, 56), "add200", core.NewPath(sp(f, 36, 56), "res"), core.NewPath(sp(f, 36, 56), "tmp"))
	return demo{"addn", src, core.NewSequence(sp(f, 0, 56), decl, gotoRes, clearRes, call)}
}
