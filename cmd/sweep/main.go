package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"sweep-ca/internal/app"
	"sweep-ca/internal/config"
	"sweep-ca/internal/sims/sweep"
	"sweep-ca/internal/tui"
)

var (
	cfg        = config.Default()
	configFile string
	traceTicks int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sweep",
		Short: "scanner-sweep cellular automaton visualizer",
		Long: "sweep runs a two-state cellular automaton computed by a 3-cell\n" +
			"scanner sweeping the grid row by row (rule: p XOR (q OR r)).\n" +
			"Without a subcommand it opens the GUI window.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Run(newSim(c), c)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml config file")
	cfg.Bind(rootCmd.PersistentFlags())

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal instead of a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(newSim(c), c)
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and print the resulting grid",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 1000, "number of sim ticks to run")

	rootCmd.AddCommand(tuiCmd, traceCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective settings: flag values, replaced
// wholesale by the config file when one is given.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSim(c *config.Config) *sweep.Context {
	w, h := c.Width, c.Height
	if w == 0 {
		w = sweep.DefaultWidth
	}
	if h == 0 {
		h = sweep.DefaultHeight
	}
	return sweep.New(w, h)
}

func runTrace(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if traceTicks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", traceTicks)
	}

	sim := newSim(c)
	sim.TogglePause()

	history := make([]float64, 0, traceTicks)
	for i := 0; i < traceTicks; i++ {
		sim.Step()
		history = append(history, float64(sim.Population()))
	}

	size := sim.Size()
	grid := sim.Grid()
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if grid.At(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())

	if len(history) > 1 {
		graph := asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("live cells over ticks"),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}
