// Copyright Speech Synthesis Lab, 2026. All rights reserved.

// Package latex runs the external LaTeX compiler against a staged document.
// The compiler is an opaque collaborator: it is handed the document source
// file name with the working directory as its execution root, and is expected
// to leave an artifact named after the input stem in that directory.
package latex

import (
	"fmt"
	"io"
	"os/exec"
)

// DefaultBinary is the compiler used when none is configured.
const DefaultBinary = "pdflatex"

// Compiler runs one compilation pass over a staged .tex file.
type Compiler interface {
	// Name returns the compiler binary name.
	Name() string

	// Available reports whether the compiler binary exists on PATH.
	Available() bool

	// Compile runs one pass on texFile with workDir as the process working
	// directory, streaming compiler output to output. The returned error
	// reflects the process exit status.
	Compile(workDir, texFile string, output io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunInDir(dir string, output io.Writer, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunInDir(dir string, output io.Writer, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = output
	cmd.Stderr = output
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// compiler implements Compiler for a named binary.
type compiler struct {
	bin  string
	exec executor
}

// New returns a Compiler for the given binary name. An empty name selects
// DefaultBinary.
func New(bin string) Compiler {
	return newCompiler(bin, defaultExec)
}

func newCompiler(bin string, exec executor) *compiler {
	if bin == "" {
		bin = DefaultBinary
	}
	return &compiler{bin: bin, exec: exec}
}

func (c *compiler) Name() string { return c.bin }

func (c *compiler) Available() bool {
	_, err := c.exec.LookPath(c.bin)
	return err == nil
}

func (c *compiler) Compile(workDir, texFile string, output io.Writer) error {
	if output == nil {
		output = io.Discard
	}
	if err := c.exec.RunInDir(workDir, output, c.bin, texFile); err != nil {
		return fmt.Errorf("running %s %s in %s: %w", c.bin, texFile, workDir, err)
	}
	return nil
}
