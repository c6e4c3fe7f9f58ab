package core

import (
	"fmt"
	"sort"
	"strings"
)

// StateDelta is the effect a piece of target code has on the whole abstract
// state: a set of per-cell actions keyed by offset relative to the pointer
// position before the delta, a net pointer movement, and a "generation"
// bump that invalidates prior positional knowledge (used by unstable
// loops).
//
// Grounded on context.py's StateDelta, with composition corrected against
// spec.md §3's formal rule rather than ported from with_appended (which
// does not thread forward cells untouched by the second operand).
type StateDelta struct {
	Cells    map[int]CellAction
	PtrDelta int
	GenDelta int
}

// Identity is the StateDelta that changes nothing.
func Identity() StateDelta {
	return StateDelta{Cells: map[int]CellAction{}}
}

// IsStable reports whether this delta leaves the pointer and generation
// exactly where they were — the precondition for a loop to be safely
// closed into a repeated-application summary.
func (d StateDelta) IsStable() bool {
	return d.PtrDelta == 0 && d.GenDelta == 0
}

// Clone returns a deep-enough copy (the Cells map is copied; CellAction
// values are immutable so they're shared).
func (d StateDelta) Clone() StateDelta {
	cells := make(map[int]CellAction, len(d.Cells))
	for k, v := range d.Cells {
		cells[k] = v
	}
	return StateDelta{Cells: cells, PtrDelta: d.PtrDelta, GenDelta: d.GenDelta}
}

// Compose returns the delta equivalent to performing a, then b — a ∘ b in
// spec.md's notation, a happening first. If b invalidates the generation,
// whatever a described is moot: the result is just b.
func Compose(a, b StateDelta) StateDelta {
	if b.GenDelta > 0 {
		return b.Clone()
	}

	result := a.Clone()
	result.PtrDelta = a.PtrDelta + b.PtrDelta
	result.GenDelta = a.GenDelta

	for off, act := range b.Cells {
		rebased := off + a.PtrDelta
		if existing, ok := result.Cells[rebased]; ok {
			result.Cells[rebased] = act.After(existing)
		} else {
			result.Cells[rebased] = act
		}
	}
	return result
}

// Then is sugar for Compose(d, other): d happened first, other happened
// after.
func (d StateDelta) Then(other StateDelta) StateDelta {
	return Compose(d, other)
}

// Repeated returns the delta equivalent to this delta happening an
// indeterminate, possibly-zero, number of times — the closure a stable
// loop body gets folded into before its text is emitted.
//
// An unstable delta can't be closed at all: the net pointer movement per
// iteration is unknown, so nothing about any cell's position survives;
// the generation is bumped instead, invalidating every named location
// that depended on the old generation.
func (d StateDelta) Repeated() StateDelta {
	if !d.IsStable() {
		return StateDelta{Cells: map[int]CellAction{}, GenDelta: d.GenDelta + 1}
	}
	cells := make(map[int]CellAction, len(d.Cells))
	for off, act := range d.Cells {
		cells[off] = act.Repeated()
	}
	return StateDelta{Cells: cells}
}

// WithCell returns d with action act folded in (via After) at the given
// offset, used when building up a delta one action at a time.
func (d StateDelta) WithCell(offset int, act CellAction) StateDelta {
	result := d.Clone()
	if existing, ok := result.Cells[offset]; ok {
		result.Cells[offset] = act.After(existing)
	} else {
		result.Cells[offset] = act
	}
	return result
}

func (d StateDelta) String() string {
	offsets := make([]int, 0, len(d.Cells))
	for off := range d.Cells {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)

	var parts []string
	for _, off := range offsets {
		parts = append(parts, fmt.Sprintf("%d:%s", off, d.Cells[off]))
	}
	return fmt.Sprintf("StateDelta(ptr=%+d, gen=%+d, cells={%s})",
		d.PtrDelta, d.GenDelta, strings.Join(parts, ", "))
}
