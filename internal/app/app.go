//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"sweep-ca/internal/config"
	"sweep-ca/internal/core"
	"sweep-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var defaultPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Game adapts a core simulation to the ebiten.Game interface. The sim
// owns its own pause state; the game only forwards key presses and
// gates how often a frame becomes a tick.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter

	pausable core.Pausable
	palettes core.PaletteProvider

	scale     int
	tickEvery int
	frames    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tickEvery int) *Game {
	if tickEvery <= 0 {
		tickEvery = 1
	}
	size := sim.Size()
	g := &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		scale:     scale,
		tickEvery: tickEvery,
	}
	if p, ok := sim.(core.Pausable); ok {
		g.pausable = p
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		g.palettes = p
	}
	return g
}

// Update handles per-frame input and advances the simulation on every
// tick-every-th frame. Space and Escape both toggle pause; Q quits; R
// restarts from the seed state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.pausable != nil {
			g.pausable.TogglePause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(0)
	}

	g.frames++
	if g.frames%g.tickEvery == 0 {
		g.sim.Step()
		g.frames = 0
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := defaultPalette
	if g.palettes != nil {
		palette = g.palettes.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the window and drives the game loop until a quit event.
// Initialization and per-frame failures abort the loop and are
// returned to the caller; a termination request is a clean exit.
func Run(sim core.Sim, cfg *config.Config) error {
	size := sim.Size()

	ebiten.SetWindowTitle("sweep-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	game := New(sim, cfg.Scale, cfg.TickEvery)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
