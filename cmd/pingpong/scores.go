package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/ledger"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var flagTop int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the best results from the score ledger, highest first.
Rows default to the info screen's table size from info_menu.yaml.

Examples:
  pingpong scores
  pingpong scores --top 3
  pingpong scores --store sqlite --scores ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 0, "Number of rows (0 = info_menu.yaml table rows)")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	rows := flagTop
	if rows <= 0 {
		rows = a.docs.InfoMenu.Table.Rows
	}

	// Rank a copy: this command never persists, so the ledger stays as loaded
	printScores(os.Stdout, a.docs.App.Title, ledger.Rank(a.ledger.Entries(), rows))

	if a.store != nil {
		stats, err := a.store.GetStats()
		if err != nil {
			return err
		}
		printStats(os.Stdout, stats)
	}
	return nil
}

func printScores(w io.Writer, title string, results []ledger.Result) {
	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No results recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'pingpong' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-20s  %s\n", "Rank", "Name", "Result")
	fmt.Fprintf(w, "  %-4s  %-20s  %s\n", "----", "----", "------")
	for i, r := range results {
		fmt.Fprintf(w, "  %-4d  %-20s  %d\n", i+1, r.Name, r.Result)
	}
}

func printStats(w io.Writer, s *storage.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rounds: %d  Players: %d  Best: %d  Average: %.1f\n",
		s.Rounds, s.Players, s.HighScore, s.AvgScore)
}
