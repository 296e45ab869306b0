package core

// Grid stores two-state cells in a flat row-major buffer. Coordinates
// are (x, y) with 0 <= x < W and 0 <= y < H; callers are expected to
// stay inside those bounds. Accessors do not validate — an
// out-of-range coordinate panics on the slice index.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a cleared grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing buffer in row-major order.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear buffer index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At reports whether the cell at (x, y) is set.
func (g *Grid) At(x, y int) bool { return g.data[g.Index(x, y)] != 0 }

// Set writes the cell at (x, y).
func (g *Grid) Set(x, y int, v bool) {
	if v {
		g.data[g.Index(x, y)] = 1
		return
	}
	g.data[g.Index(x, y)] = 0
}

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clear resets every cell to unset.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
