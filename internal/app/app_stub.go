//go:build !ebiten

package app

import (
	"fmt"

	"sweep-ca/internal/config"
	"sweep-ca/internal/core"
)

// Run reports that this binary was built without GUI support.
func Run(sim core.Sim, cfg *config.Config) error {
	return fmt.Errorf("the GUI requires building with the 'ebiten' tag; use `go build -tags ebiten` or run the tui subcommand")
}
