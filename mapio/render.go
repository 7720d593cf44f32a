package mapio

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridnav/grid"
)

// RenderOptions tunes Render.
type RenderOptions struct {
	// Scale is the edge length of one cell in pixels.
	Scale int
	// Distances, if set, shades Free cells from dark (near the goal) to
	// light; cells absent from the map stay white.
	Distances map[grid.Cell]uint8
	// Path is drawn as a polyline through cell centres.
	Path []grid.Cell
	// Start and Goal are marked when ShowEndpoints is true.
	Start, Goal   grid.Cell
	ShowEndpoints bool
}

// DefaultRenderOptions returns 8 px cells and no overlays.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Scale: 8}
}

var (
	blockedColor = color.Black
	freeColor    = color.White
	pathColor    = color.RGBA{R: 220, G: 20, B: 20, A: 255}
	startColor   = color.RGBA{G: 160, A: 255}
	goalColor    = color.RGBA{B: 200, A: 255}
)

// Draw paints g and the overlays of opts into a new gg context.
func Draw(g *grid.Grid, opts RenderOptions) *gg.Context {
	s := opts.Scale
	if s <= 0 {
		s = DefaultRenderOptions().Scale
	}
	dc := gg.NewContext(g.Width*s, g.Height*s)
	dc.SetColor(freeColor)
	dc.Clear()

	fs := float64(s)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			if !g.IsFree(c) {
				dc.SetColor(blockedColor)
			} else if v, ok := opts.Distances[c]; ok {
				// keep the shading off pure black so it never reads as an obstacle
				level := 40 + uint8(uint16(v)*215/255)
				dc.SetColor(color.Gray{Y: level})
			} else {
				continue
			}
			dc.DrawRectangle(float64(x)*fs, float64(y)*fs, fs, fs)
			dc.Fill()
		}
	}

	center := func(c grid.Cell) (float64, float64) {
		return float64(c.X)*fs + fs/2, float64(c.Y)*fs + fs/2
	}
	if len(opts.Path) > 1 {
		dc.SetColor(pathColor)
		dc.SetLineWidth(fs / 3)
		dc.MoveTo(center(opts.Path[0]))
		for _, c := range opts.Path[1:] {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}
	if opts.ShowEndpoints {
		for _, m := range []struct {
			c   grid.Cell
			col color.Color
		}{{opts.Start, startColor}, {opts.Goal, goalColor}} {
			x, y := center(m.c)
			dc.SetColor(m.col)
			dc.DrawCircle(x, y, fs/2)
			dc.Fill()
		}
	}

	return dc
}

// Render draws g with Draw and writes it to w as PNG.
func Render(w io.Writer, g *grid.Grid, opts RenderOptions) error {
	return Draw(g, opts).EncodePNG(w)
}
