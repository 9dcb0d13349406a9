// Copyright Speech Synthesis Lab, 2026. All rights reserved.

// Package main is the entry point for the slidegen CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/speechlab/slidegen/internal/build"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidegen CLI.
var rootCmd = &cobra.Command{
	Use:   "slidegen",
	Short: "Build PDF slide decks from directories of text snippets",
	Long: `slidegen turns a directory of plain-text snippet files into a compiled
PDF slide deck. Each recognized text file becomes one beamer frame titled
with the file's base name; the frames are substituted into a LaTeX template
and compiled with pdflatex (twice, to settle cross-references).

Use build for the full pipeline, render to produce the .tex document without
compiling, snippets to inspect what a directory would contribute, and
history to list past builds.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidegen.yaml or ~/.config/slidegen/config.yaml)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase output verbosity")
	rootCmd.PersistentFlags().StringP("log-file", "l", "", "also write progress output to this file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidegen"))
		}
	}

	viper.SetDefault("compile.compiler", "pdflatex")
	viper.SetDefault("compile.work_dir", "tmp")
	viper.SetDefault("history.db_path", filepath.Join(".slidegen", "history.db"))

	viper.SetEnvPrefix("SLIDEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newProgress builds the progress sink from the persistent flags: stderr,
// optionally teed into --log-file. The returned closer flushes the log file
// and is safe to call unconditionally.
func newProgress(cmd *cobra.Command) (*build.Progress, func(), error) {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	var w io.Writer = os.Stderr
	closer := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", logFile, err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closer = func() { f.Close() }
	}

	return build.NewProgress(w, verbosity), closer, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
