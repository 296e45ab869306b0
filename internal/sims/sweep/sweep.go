// Package sweep implements a two-state one-dimensional cellular
// automaton computed by a sweeping scanner cursor. A 3-cell read
// window slides left to right across one generation row, and each tick
// writes one cell of the next generation directly below the window's
// middle position. The update rule is p XOR (q OR r) over the scanned
// cells, elementary rule 30 applied one cell per tick.
package sweep

import (
	"strconv"

	"sweep-ca/internal/core"
)

// Default grid dimensions, in cells.
const (
	DefaultWidth  = 101
	DefaultHeight = 100
)

// RunState is the automaton's run/pause state.
type RunState uint8

const (
	// Paused suspends ticks; the background tint signals it.
	Paused RunState = iota
	// Playing advances the scanner on every tick.
	Playing
)

// Config holds construction parameters for the automaton.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the stock 101x100 configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Context owns the cell grid, the scanner and the run state. It is the
// whole simulation: one instance, mutated in place, single-threaded.
type Context struct {
	grid    *core.Grid
	scanner [3]core.Point
	state   RunState

	display []uint8
}

// New creates a paused automaton with a single seed cell just right of
// the horizontal center of row 1 and the scanner parked at the row's
// left edge.
func New(w, h int) *Context {
	grid := core.NewGrid(w, h)
	c := &Context{
		grid:    grid,
		display: make([]uint8, grid.W*grid.H),
	}
	c.seed()
	return c
}

func (c *Context) seed() {
	c.grid.Clear()
	c.grid.Set((c.grid.W+1)/2, 1, true)
	c.scanner = [3]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	c.state = Paused
}

// Name returns the simulation identifier.
func (c *Context) Name() string { return "sweep" }

// Size returns the grid dimensions.
func (c *Context) Size() core.Size { return core.Size{W: c.grid.W, H: c.grid.H} }

// Reset restores the initial seed state. The automaton is
// deterministic, so the seed argument is ignored.
func (c *Context) Reset(seed int64) { c.seed() }

// State returns the current run state.
func (c *Context) State() RunState { return c.state }

// Paused reports whether ticks are suspended.
func (c *Context) Paused() bool { return c.state == Paused }

// TogglePause flips between Playing and Paused. It is the only state
// transition and has no other effect.
func (c *Context) TogglePause() {
	switch c.state {
	case Playing:
		c.state = Paused
	case Paused:
		c.state = Playing
	}
}

// Step advances the automaton by one tick: move the scanner, then
// compute and write one cell of the next generation. A paused
// automaton does not move.
func (c *Context) Step() {
	if c.state == Paused {
		return
	}
	c.moveScanner()
	c.calculateState()
}

// moveScanner slides the 3-cell window one step right along its row,
// wrapping to the start of the next row when the head sits on the
// right edge. The oldest element is dropped and the new head inserted
// at the front: order is [newest, middle, oldest], so once the sweep
// settles, scanner[0] is the leading (rightmost) point and scanner[2]
// the trailing one. The ascending seed order makes the first two ticks
// transitional before the window settles.
//
// There is no lower bound: the scan runs off the final row and the
// following write lands outside the grid.
// TODO: decide whether the sweep should halt at the bottom row instead
// of panicking on the first write past it.
func (c *Context) moveScanner() {
	head := c.scanner[0]
	next := head.Add(core.Point{X: 1})
	if head.X == c.grid.W-1 {
		next = core.Point{X: 0, Y: head.Y + 1}
	}
	c.scanner[2] = c.scanner[1]
	c.scanner[1] = c.scanner[0]
	c.scanner[0] = next
}

// calculateState reads the three scanned cells and writes the rule
// result directly below the window's middle cell. Indexing is
// unchecked on both the reads and the write.
func (c *Context) calculateState() {
	p := c.ValueAt(c.scanner[2])
	q := c.ValueAt(c.scanner[1])
	r := c.ValueAt(c.scanner[0])

	mid := c.scanner[1]
	c.grid.Set(mid.X, mid.Y+1, Rule(p, q, r))
}

// Rule is the automaton's update function: p XOR (q OR r). With p as
// the trailing (left) cell it matches elementary rule 30 on all eight
// neighborhoods.
func Rule(p, q, r bool) bool {
	return p != (q || r)
}

// ValueAt returns the grid cell under pt. The lookup is not validated;
// out-of-range points panic.
func (c *Context) ValueAt(pt core.Point) bool {
	return c.grid.At(pt.X, pt.Y)
}

// Scanner returns the current window positions, head first.
func (c *Context) Scanner() [3]core.Point { return c.scanner }

// Grid exposes the underlying cell grid.
func (c *Context) Grid() *core.Grid { return c.grid }

// Population counts the live cells in the grid.
func (c *Context) Population() int {
	n := 0
	for _, v := range c.grid.Cells() {
		if v != 0 {
			n++
		}
	}
	return n
}
