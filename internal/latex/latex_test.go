// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package latex

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockExecutor records invocations and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool
	runFunc       func(dir string, output io.Writer, name string, args ...string) error
	calls         []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunInDir(dir string, output io.Writer, name string, args ...string) error {
	m.calls = append(m.calls, dir+": "+name+" "+strings.Join(args, " "))
	if m.runFunc != nil {
		return m.runFunc(dir, output, name, args...)
	}
	return nil
}

func TestNewDefaultBinary(t *testing.T) {
	c := newCompiler("", &mockExecutor{})
	if c.Name() != "pdflatex" {
		t.Errorf("default binary = %q, want pdflatex", c.Name())
	}
	c = newCompiler("lualatex", &mockExecutor{})
	if c.Name() != "lualatex" {
		t.Errorf("binary = %q, want lualatex", c.Name())
	}
}

func TestAvailable(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"pdflatex": true}}
	if !newCompiler("pdflatex", exec).Available() {
		t.Error("pdflatex should be available")
	}
	if newCompiler("xelatex", exec).Available() {
		t.Error("xelatex should not be available")
	}
}

func TestCompile(t *testing.T) {
	t.Run("runs binary in working directory", func(t *testing.T) {
		exec := &mockExecutor{}
		c := newCompiler("pdflatex", exec)

		if err := c.Compile("/work", "deck.tex", io.Discard); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(exec.calls) != 1 || exec.calls[0] != "/work: pdflatex deck.tex" {
			t.Errorf("unexpected invocation: %v", exec.calls)
		}
	})

	t.Run("streams compiler output", func(t *testing.T) {
		exec := &mockExecutor{
			runFunc: func(dir string, output io.Writer, name string, args ...string) error {
				_, _ = output.Write([]byte("This is pdfTeX"))
				return nil
			},
		}
		var out bytes.Buffer
		if err := newCompiler("pdflatex", exec).Compile("/work", "deck.tex", &out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "This is pdfTeX" {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("wraps non-zero exit", func(t *testing.T) {
		exec := &mockExecutor{
			runFunc: func(string, io.Writer, string, ...string) error {
				return errors.New("exit status 1")
			},
		}
		err := newCompiler("pdflatex", exec).Compile("/work", "deck.tex", nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "pdflatex deck.tex") {
			t.Errorf("error should name the invocation, got: %v", err)
		}
	})

	t.Run("nil output is tolerated", func(t *testing.T) {
		exec := &mockExecutor{
			runFunc: func(dir string, output io.Writer, name string, args ...string) error {
				if output == nil {
					return errors.New("output writer is nil")
				}
				return nil
			},
		}
		if err := newCompiler("pdflatex", exec).Compile("/work", "deck.tex", nil); err != nil {
			t.Fatal(err)
		}
	})
}
