package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the terminal front-end with the main menu.

Controls:
  Up/Down, Enter  - Pick a menu entry
  Left/Right      - Move the paddle (keys configurable in game.yaml)
  Esc             - Abandon the round / back to the menu
  Ctrl+C          - Quit without saving

Scores are saved when you choose Exit from the main menu.

Examples:
  pingpong play
  pingpong play --player ann
  pingpong play --config ./pingpong-config --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	// Terminal size for the first frame, before Bubble Tea reports it
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(tui.Options{
		Docs:   a.docs,
		Ledger: a.ledger,
		Logger: a.logger,
		Player: flagPlayer,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
	})
}
