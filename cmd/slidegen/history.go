// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/speechlab/slidegen/internal/history"
	"github.com/speechlab/slidegen/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent deck builds",
	Long: `History lists past builds recorded in the local SQLite database,
newest first: when the build ran, its input directory, output path, snippet
count, and outcome.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("history.db_path")
	}

	store, err := history.Open(types.HistoryConfig{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer store.Close()

	builds, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(builds) == 0 {
		fmt.Println("No builds recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-20s  %-30s  %8s  %-7s  %s\n",
		"Started", "Input", "Output", "Snippets", "Outcome", "Duration")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, b := range builds {
		outcome := "ok"
		if !b.Succeeded {
			outcome = "failed"
		}
		input := b.TextDir
		if len(input) > 20 {
			input = input[:17] + "..."
		}
		output := b.OutputPath
		if len(output) > 30 {
			output = output[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-20s  %-30s  %8d  %-7s  %s\n",
			b.StartedAt.Local().Format("2006-01-02 15:04:05"),
			input, output, len(b.Snippets), outcome,
			b.Duration.Round(time.Millisecond))
	}

	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of builds to list")
	historyCmd.Flags().String("db", "", "history database path (default from config)")

	rootCmd.AddCommand(historyCmd)
}
