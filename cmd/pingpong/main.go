// pingpong is a single-player paddle-and-ball arcade game.
//
// Usage:
//
//	pingpong                      - Play in the terminal (same as "play")
//	pingpong play                 - Play in the terminal
//	pingpong desktop              - Play in a desktop window
//	pingpong scores               - Show the high-score table
//	pingpong config dump <dir>    - Write the default configuration documents
//
// Global flags:
//
//	--config <dir>     - Configuration directory (default: embedded documents)
//	--scores <path>    - Score file (default: ~/.pingpong/scores.yaml or scores.db)
//	--store <kind>     - Score backend: yaml or sqlite
//	--seed <value>     - RNG seed for reproducible rounds
//	--log-file <path>  - Log file (default: ~/.pingpong/pingpong.log)
//	--log-level <lvl>  - debug, info, warn or error
//	--player <name>    - Player name
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagScores   string
	flagStore    string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Ping-pong - keep the ball in play with your paddle",
	Long: `Ping-pong is a single-player arcade game. Move the paddle left and
right to bounce the ball back up; every return scores a point and the round
ends when the ball drops past the bottom of the playfield.

Available commands:
  play     - Play in the terminal (default)
  desktop  - Play in a desktop window
  scores   - View the high-score table
  config   - Manage configuration documents

Examples:
  pingpong
  pingpong --player ann --seed 42
  pingpong desktop --scores ./scores.yaml
  pingpong scores --store sqlite
  pingpong config dump ./pingpong-config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Configuration directory (empty = embedded defaults)")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "", "Path to the score file (default depends on --store)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeYAML, "Score backend: yaml or sqlite")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.pingpong/pingpong.log", "Path to the log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name (default from app.yaml)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
