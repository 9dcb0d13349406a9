// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/speechlab/slidegen/internal/snippet"
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets <text-dir>",
	Short: "List the snippets a directory would contribute to a deck",
	Long: `Snippets collects <text-dir> the same way build does and prints one
line per entry: the frame identifier and the trimmed content size. Entries
appear in deck order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnippets,
}

func runSnippets(cmd *cobra.Command, args []string) error {
	col, err := snippet.Collect(args[0])
	if err != nil {
		return err
	}

	for _, e := range col.Entries() {
		fmt.Fprintf(os.Stdout, "%-30s %6d bytes\n", e.ID, len(e.Content))
	}
	fmt.Fprintf(os.Stdout, "\n%d snippets\n", col.Len())
	return nil
}

func init() {
	rootCmd.AddCommand(snippetsCmd)
}
