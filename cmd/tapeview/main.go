// Command tapeview is the standalone interactive tape debugger spec.md
// §1 lists as an external collaborator: it loads a compiled target
// program, steps a pkg/tape.Interpreter, and renders the live cell array
// as a coloured grid. Adapted from the teacher's cmd/desktop (the
// ebiten Game Update/Draw loop shape) and pkg/cpu/video.go (byte-to-
// colour mapping, generalized in pkg/tapeview); the one-pixel-per-cell
// image is scaled up with golang.org/x/image/draw.ApproxBiLinear exactly
// as pkg/peripherals/camera.go scales a captured frame into its
// destination buffer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/draw"

	"bfppc/pkg/peripherals"
	"bfppc/pkg/tape"
	"bfppc/pkg/tapeview"
)

// game implements ebiten.Game, stepping the interpreter a configurable
// number of times per frame so a long-running program is watchable
// instead of finishing in a single frame.
type game struct {
	in           *tape.Interpreter
	layout       tapeview.Layout
	stepsPerTick int
	paused       bool

	cellImg *image.RGBA // one pixel per tape cell, rebuilt every frame
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused || g.in.Halted {
		return nil
	}
	for i := 0; i < g.stepsPerTick && !g.in.Halted; i++ {
		if err := g.in.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF})

	rows := 16
	cols := g.layout.Cols
	snap := tapeview.NewSnapshot(g.in, cols*rows)

	for i := 0; i < cols*rows; i++ {
		idx := snap.Low + i
		x, y := i%cols, i/cols
		g.cellImg.Set(x, y, tapeview.CellColor(snap.Value(idx)))
	}
	if idx := snap.PointerIndex() - snap.Low; idx >= 0 && idx < cols*rows {
		g.cellImg.Set(idx%cols, idx/cols, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	}

	dstW, dstH := g.layout.WindowSize(cols * rows)
	scaled := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), g.cellImg, g.cellImg.Bounds(), draw.Src, nil)

	screen.DrawImage(ebiten.NewImageFromImage(scaled), &ebiten.DrawImageOptions{})

	status := fmt.Sprintf("ptr=%d steps=%d halted=%v (space: pause)", g.in.Ptr(), g.in.Steps, g.in.Halted)
	ebitenutil.DebugPrintAt(screen, status, 4, dstH+4)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout.WindowSize(g.layout.Cols * 16)
	return w, h + 24
}

func main() {
	codeFile := flag.String("code", "", "path to compiled target code (required)")
	input := flag.String("input", "", "path to a file fed to the program's `,` instructions")
	stepsPerTick := flag.Int("speed", 64, "interpreter steps executed per rendered frame")
	flag.Parse()

	if *codeFile == "" {
		fmt.Fprintln(os.Stderr, "usage: tapeview --code=program.bf [--input=in.txt] [--speed=N]")
		os.Exit(2)
	}

	code, err := os.ReadFile(*codeFile)
	if err != nil {
		log.Fatal(err)
	}

	var in []byte
	if *input != "" {
		in, err = os.ReadFile(*input)
		if err != nil {
			log.Fatal(err)
		}
	}
	io := peripherals.NewBuffer(in)

	interp, err := tape.New(string(code), io)
	if err != nil {
		log.Fatal(err)
	}

	layout := tapeview.NewLayout()
	g := &game{
		in: interp, layout: layout, stepsPerTick: *stepsPerTick,
		cellImg: image.NewRGBA(image.Rect(0, 0, layout.Cols, 16)),
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tapeview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
