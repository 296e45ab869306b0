// Package tui renders the sweep automaton in the terminal with a
// bubbletea frame loop. Two grid rows are packed into one character
// row using half blocks, and a population graph trails the grid.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"sweep-ca/internal/config"
	"sweep-ca/internal/core"
	"sweep-ca/internal/sims/sweep"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const historyCap = 200

type model struct {
	sim    *sweep.Context
	ticker *core.FrameTicker

	history []float64
	ticks   int

	width  int
	height int
}

type tickMsg struct{}

func newModel(sim *sweep.Context, cfg *config.Config) model {
	return model{
		sim:     sim,
		ticker:  core.NewFrameTicker(cfg.TPS, cfg.TickEvery),
		history: make([]float64, 0, historyCap),
		width:   80,
		height:  24,
	}
}

func (m model) frame() tea.Cmd {
	return tea.Tick(m.ticker.FrameInterval(), func(time.Time) tea.Msg { return tickMsg{} })
}

func (m model) Init() tea.Cmd { return m.frame() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "esc":
			m.sim.TogglePause()
		case "r":
			m.sim.Reset(0)
			m.history = m.history[:0]
			m.ticks = 0
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.ticker.Advance() && !m.sim.Paused() {
			m.sim.Step()
			m.ticks++
			m.history = append(m.history, float64(m.sim.Population()))
			if len(m.history) > historyCap {
				m.history = m.history[1:]
			}
		}
		return m, m.frame()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.sim.Paused() {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	size := m.sim.Size()
	b.WriteString(fmt.Sprintf("\n %s %s  %s  %s\n\n",
		statusIcon, cyan.Render(m.sim.Name()), statusText,
		dim.Render(fmt.Sprintf("%dx%d  tick %d", size.W, size.H, m.ticks))))

	m.viewGrid(&b)

	if len(m.history) > 1 {
		graphWidth := m.width - 10
		if graphWidth > 64 {
			graphWidth = 64
		}
		if graphWidth >= 16 {
			graph := asciigraph.Plot(m.history,
				asciigraph.Height(5),
				asciigraph.Width(graphWidth),
				asciigraph.Caption("live cells over ticks"),
			)
			b.WriteString("\n" + dim.Render(graph) + "\n")
		}
	}

	b.WriteString("\n " + dim.Render("space/esc pause · r reset · q quit") + "\n")
	return b.String()
}

// viewGrid draws the cell grid two rows per text line. The visible
// band follows the scanner when the grid is taller than the terminal.
func (m model) viewGrid(b *strings.Builder) {
	cells := m.sim.Cells()
	size := m.sim.Size()
	charRows := (size.H + 1) / 2

	visible := m.height - 14
	if visible < 8 {
		visible = 8
	}
	first := 0
	if charRows > visible {
		first = m.sim.Scanner()[1].Y/2 - visible/2
		if first < 0 {
			first = 0
		}
		if first > charRows-visible {
			first = charRows - visible
		}
	}
	last := first + visible
	if last > charRows {
		last = charRows
	}

	for row := first; row < last; row++ {
		b.WriteString(" ")
		for x := 0; x < size.W; x++ {
			top := cells[(row*2)*size.W+x]
			bottom := uint8(0)
			if row*2+1 < size.H {
				bottom = cells[(row*2+1)*size.W+x]
			}
			b.WriteString(halfBlock(top, bottom))
		}
		b.WriteString("\n")
	}
}

func halfBlock(top, bottom uint8) string {
	style := white
	if top == sweep.CellScanner || bottom == sweep.CellScanner {
		style = yellow
	}
	switch {
	case top != 0 && bottom != 0:
		return style.Render("█")
	case top != 0:
		return style.Render("▀")
	case bottom != 0:
		return style.Render("▄")
	default:
		return " "
	}
}

// Run drives the terminal frontend until the user quits.
func Run(sim *sweep.Context, cfg *config.Config) error {
	p := tea.NewProgram(newModel(sim, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
