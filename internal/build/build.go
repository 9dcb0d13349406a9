// Copyright Speech Synthesis Lab, 2026. All rights reserved.

// Package build orchestrates a deck build: collect snippets, render the
// document, stage it in a scoped working directory, run the compiler twice,
// and move the artifact to the requested output path. The working directory
// is removed on every exit path.
package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/speechlab/slidegen/internal/latex"
	"github.com/speechlab/slidegen/internal/render"
	"github.com/speechlab/slidegen/internal/snippet"
	"github.com/speechlab/slidegen/pkg/types"
)

// texExt is the document-source extension for the staged intermediate file.
const texExt = ".tex"

// compilerPasses is how many times the compiler runs. The second pass settles
// forward references the first pass could not.
const compilerPasses = 2

// Run executes one deck build and returns its record. The returned record is
// non-nil whenever collection succeeded, including on later failures, so
// callers can report and persist partial outcomes.
func Run(cfg types.BuildConfig, comp latex.Compiler, progress *Progress) (*types.BuildRecord, error) {
	cfg.Defaults()
	started := time.Now()

	col, err := snippet.Collect(cfg.Collect.TextDir)
	if err != nil {
		return nil, err
	}
	progress.Infof("collected %d snippets from %s", col.Len(), cfg.Collect.TextDir)
	for _, id := range col.IDs() {
		progress.Debugf("  snippet %s", id)
	}

	rec := &types.BuildRecord{
		TextDir:    cfg.Collect.TextDir,
		OutputPath: cfg.OutputPath,
		Snippets:   col.IDs(),
		StartedAt:  started,
	}
	finish := func(err error) (*types.BuildRecord, error) {
		rec.Duration = time.Since(started)
		rec.Succeeded = err == nil
		return rec, err
	}

	// Render before touching the working directory or the compiler, so
	// template problems surface without side effects.
	template, err := render.LoadTemplate(cfg.Render.TemplatePath)
	if err != nil {
		return finish(err)
	}
	doc, err := render.Deck(template, col)
	if err != nil {
		return finish(err)
	}

	workDir := cfg.Compile.WorkDir
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return finish(fmt.Errorf("creating working directory %s: %w", workDir, err))
	}
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			progress.Warnf("could not remove working directory %s: %v", workDir, rmErr)
		}
	}()

	stem := strings.TrimSuffix(filepath.Base(cfg.OutputPath), filepath.Ext(cfg.OutputPath))
	texFile := stem + texExt
	if err := os.WriteFile(filepath.Join(workDir, texFile), []byte(doc), 0o644); err != nil {
		return finish(fmt.Errorf("writing %s: %w", texFile, err))
	}
	progress.Debugf("staged %s in %s", texFile, workDir)

	for pass := 1; pass <= compilerPasses; pass++ {
		progress.Infof("%s pass %d/%d", comp.Name(), pass, compilerPasses)
		passErr := comp.Compile(workDir, texFile, progress.CompilerOutput())
		pr := types.PassResult{Pass: pass}
		if passErr != nil {
			pr.ExitError = passErr.Error()
		}
		rec.Passes = append(rec.Passes, pr)

		if passErr == nil {
			continue
		}
		if pass < compilerPasses {
			// A first-pass failure can be a forward-reference symptom; the
			// final pass decides.
			progress.Warnf("pass %d failed, retrying for cross-references: %v", pass, passErr)
			continue
		}
		return finish(fmt.Errorf("compiling %s: %w", texFile, passErr))
	}

	artifact := filepath.Join(workDir, filepath.Base(cfg.OutputPath))
	if err := moveFile(artifact, cfg.OutputPath); err != nil {
		return finish(fmt.Errorf("collecting artifact: %w", err))
	}
	progress.Infof("wrote %s", cfg.OutputPath)

	return finish(nil)
}

// moveFile relocates src to dst, falling back to copy-and-remove when a
// rename crosses filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	} else if os.IsNotExist(err) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
