package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

The window size is the playfield from game.yaml scaled by app.yaml's
scale. One tick runs per frame at a rate derived from the configured delay.

Controls:
  Up/Down, Enter  - Pick a menu entry
  Left/Right      - Move the paddle (keys configurable in game.yaml)
  Esc             - Abandon the round / back to the menu

Closing the window quits without saving.

Examples:
  pingpong desktop
  pingpong desktop --player ann --store sqlite`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

func runDesktop(_ *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	return desktop.Run(desktop.Options{
		Docs:   a.docs,
		Ledger: a.ledger,
		Logger: a.logger,
		Player: flagPlayer,
		Seed:   flagSeed,
	})
}
