package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration documents",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump <dir>",
	Short: "Write the default configuration documents to a directory",
	Long: `Write the embedded default documents (app.yaml, game.yaml, styles.yaml,
...) into <dir> so they can be edited and passed back with --config.
Existing files are kept unless --force is given.

Examples:
  pingpong config dump ./pingpong-config
  pingpong --config ./pingpong-config`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite existing files")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	dir := config.ExpandHome(args[0])

	written, err := config.Dump(dir, flagForce)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(written) == 0 {
		fmt.Fprintf(out, "All documents already exist in %s (use --force to overwrite)\n", dir)
		return nil
	}
	for _, path := range written {
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	return nil
}
