// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/speechlab/slidegen/internal/build"
	"github.com/speechlab/slidegen/internal/history"
	"github.com/speechlab/slidegen/internal/latex"
	"github.com/speechlab/slidegen/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build <text-dir> <output.pdf>",
	Short: "Compile a snippet directory into a PDF slide deck",
	Long: `Build collects the text snippets in <text-dir>, renders them into the
deck template, and compiles the result to <output.pdf>. The intermediate
.tex file is staged in a scoped working directory that is removed after
the run, success or failure.

The compiler runs twice; the first pass may fail (forward references), the
second pass must succeed.`,
	Args: cobra.ExactArgs(2),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfigFromFlags(cmd, args)

	progress, closeLog, err := newProgress(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	comp := latex.New(cfg.Compile.Compiler)
	if !comp.Available() {
		return fmt.Errorf("compiler %s not found on PATH", comp.Name())
	}

	rec, buildErr := build.Run(cfg, comp, progress)
	if rec == nil {
		return buildErr
	}

	if cfg.ReportPath != "" {
		if err := build.WriteReport(cfg.ReportPath, rec); err != nil {
			progress.Warnf("%v", err)
		}
	}

	// History is best-effort: never fail a build over it.
	if !cfg.History.Disabled {
		if store, err := history.Open(cfg.History); err != nil {
			progress.Warnf("history unavailable: %v", err)
		} else {
			if err := store.Record(rec); err != nil {
				progress.Warnf("%v", err)
			}
			store.Close()
		}
	}

	return buildErr
}

// buildConfigFromFlags assembles the build configuration from positional
// arguments, flags, and viper-backed defaults.
func buildConfigFromFlags(cmd *cobra.Command, args []string) types.BuildConfig {
	template, _ := cmd.Flags().GetString("template")
	workDir, _ := cmd.Flags().GetString("work-dir")
	compiler, _ := cmd.Flags().GetString("compiler")
	report, _ := cmd.Flags().GetString("report")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	verbosity, _ := cmd.Flags().GetCount("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	if template == "" {
		template = viper.GetString("render.template_path")
	}
	if workDir == "" {
		workDir = viper.GetString("compile.work_dir")
	}
	if compiler == "" {
		compiler = viper.GetString("compile.compiler")
	}

	return types.BuildConfig{
		Progress: types.ProgressConfig{Verbosity: verbosity, LogFile: logFile},
		Collect:  types.CollectConfig{TextDir: args[0]},
		Render:   types.RenderConfig{TemplatePath: template},
		Compile:  types.CompileConfig{Compiler: compiler, WorkDir: workDir},
		History: types.HistoryConfig{
			DBPath:   viper.GetString("history.db_path"),
			Disabled: noHistory,
		},
		OutputPath: args[1],
		ReportPath: report,
	}
}

func init() {
	buildCmd.Flags().StringP("template", "t", "", "deck template file (default: bundled beamer template)")
	buildCmd.Flags().String("work-dir", "", "scoped working directory for compilation (default \"tmp\")")
	buildCmd.Flags().String("compiler", "", "LaTeX compiler binary (default \"pdflatex\")")
	buildCmd.Flags().String("report", "", "write a YAML build report to this path")
	buildCmd.Flags().Bool("no-history", false, "skip recording the build in history")

	rootCmd.AddCommand(buildCmd)
}
