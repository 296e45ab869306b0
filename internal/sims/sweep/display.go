package sweep

import "image/color"

// Display cell values produced by Cells. The scanner overlay is
// written after the grid so the cursor stays visible over live cells.
const (
	CellEmpty   = 0
	CellLive    = 1
	CellScanner = 2
)

var (
	playingPalette = []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
	}
	pausedPalette = []color.RGBA{
		{R: 30, G: 30, B: 30, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
	}
)

// Palette returns the render palette for the current run state. The
// background tint is the pause indicator: near-black while playing,
// dark gray while paused.
func (c *Context) Palette() []color.RGBA {
	if c.state == Paused {
		return pausedPalette
	}
	return playingPalette
}

// Cells composes the display buffer: grid values overlaid with the
// scanner window. Scanner points outside the grid are not drawn.
func (c *Context) Cells() []uint8 {
	copy(c.display, c.grid.Cells())
	for _, pt := range c.scanner {
		if c.grid.Contains(pt.X, pt.Y) {
			c.display[c.grid.Index(pt.X, pt.Y)] = CellScanner
		}
	}
	return c.display
}
