// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/speechlab/slidegen/internal/render"
	"github.com/speechlab/slidegen/internal/snippet"
)

var renderCmd = &cobra.Command{
	Use:   "render <text-dir> <output.tex>",
	Short: "Render the deck document without compiling it",
	Long: `Render collects the text snippets in <text-dir>, substitutes them into
the deck template, and writes the resulting LaTeX document to <output.tex>.
No compiler is invoked; use this to debug templates or inspect the document
that build would stage.`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	templatePath, _ := cmd.Flags().GetString("template")
	if templatePath == "" {
		templatePath = viper.GetString("render.template_path")
	}

	col, err := snippet.Collect(args[0])
	if err != nil {
		return err
	}

	template, err := render.LoadTemplate(templatePath)
	if err != nil {
		return err
	}
	doc, err := render.Deck(template, col)
	if err != nil {
		return err
	}

	return os.WriteFile(args[1], []byte(doc), 0o644)
}

func init() {
	renderCmd.Flags().StringP("template", "t", "", "deck template file (default: bundled beamer template)")

	rootCmd.AddCommand(renderCmd)
}
