// Package tapeview supplies the colour mapping and grid layout
// cmd/tapeview's ebiten GUI draws every frame: a tape cell's byte value
// turned into an RGBA swatch, laid out across the window via pkg/grid.
// Adapted from the teacher's pkg/cpu/video.go (its rgb565ToRGBA bit
// expansion, repurposed to an 8-bit-value-to-colour ramp instead of a
// packed-pixel framebuffer format, since a tape cell's byte value has no
// RGB565 structure of its own to decode) and cmd/desktop/main.go (the
// Update/Draw loop shape carried over into cmd/tapeview).
package tapeview

import (
	"image/color"

	"bfppc/pkg/grid"
	"bfppc/pkg/tape"
)

// CellColor maps a tape cell's byte value to an RGBA colour: 0 renders
// as a dark background tone (a cleared cell and a never-written one look
// the same), 1 gets its own green tone, and every other value runs
// through a blue-to-amber ramp over the full 0-255 range —
// the same "expand a small value into a full 8-bit channel" idea as
// rgb565ToRGBA, just against one channel instead of three packed ones.
func CellColor(v byte) color.RGBA {
	switch v {
	case 0:
		return color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xFF}
	case 1:
		return color.RGBA{R: 0x30, G: 0x60, B: 0x40, A: 0xFF}
	default:
		r := v
		g := byte(0x40 + v/2)
		b := byte(0xFF - v)
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}
}

// Layout describes where, on screen, each visible tape cell should be
// drawn: a fixed-size grid of cols columns, CellSize pixels square, with
// the interpreter's current pointer highlighted separately by the
// caller (the pointer isn't part of a cell's own colour).
type Layout struct {
	Cols     int
	CellSize int
}

// NewLayout returns the default layout cmd/tapeview starts with: 64
// columns (matching pkg/grid/grid_test.go's "Standard" resolution case) at 12
// pixels per cell.
func NewLayout() Layout {
	return Layout{Cols: 64, CellSize: 12}
}

// CellRect returns the top-left pixel position of the index'th visible
// cell under this layout.
func (l Layout) CellRect(index int) (x, y int) {
	gx, gy := grid.GetGridCoords(index, l.Cols)
	return gx * l.CellSize, gy * l.CellSize
}

// WindowSize returns the pixel dimensions needed to show visibleCells
// cells under this layout.
func (l Layout) WindowSize(visibleCells int) (w, h int) {
	rows := (visibleCells + l.Cols - 1) / l.Cols
	if rows == 0 {
		rows = 1
	}
	return l.Cols * l.CellSize, rows * l.CellSize
}

// Snapshot is the read-only view of an Interpreter's tape that a frame
// needs to draw: the range of absolute cell indices currently worth
// rendering, and an accessor into their values. Kept separate from
// *tape.Interpreter itself so tapeview doesn't need the interpreter's
// mutating methods.
type Snapshot struct {
	Low, High int // inclusive range of absolute indices to render
	in        *tape.Interpreter
}

// NewSnapshot centers a Snapshot of `width` cells around the
// interpreter's current pointer.
func NewSnapshot(in *tape.Interpreter, width int) Snapshot {
	low := in.Ptr() - width/2
	return Snapshot{Low: low, High: low + width - 1, in: in}
}

// Value returns the byte at absolute cell idx.
func (s Snapshot) Value(idx int) byte { return s.in.Cell(idx) }

// PointerIndex returns the absolute cell the interpreter's pointer
// currently rests on.
func (s Snapshot) PointerIndex() int { return s.in.Ptr() }
