package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the frontends need from a
// simulation: identity, dimensions, lifecycle and a render buffer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Pausable is implemented by simulations that own their own run/pause
// state. Frontends discover it by type assertion.
type Pausable interface {
	TogglePause()
	Paused() bool
}

// PaletteProvider exposes the palette a simulation wants its cell
// values rendered with. The palette may change between frames.
type PaletteProvider interface {
	Palette() []color.RGBA
}
