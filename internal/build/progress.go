// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package build

import (
	"fmt"
	"io"
)

// Verbosity levels. Warnings always print; info and debug are gated.
const (
	LevelWarn = iota
	LevelInfo
	LevelDebug
)

// Progress writes leveled progress lines to a sink. It replaces ambient
// logger state: the sink and level are explicit values handed to the build.
type Progress struct {
	w         io.Writer
	verbosity int
}

// NewProgress returns a Progress writing to w at the given verbosity. A nil
// writer discards everything.
func NewProgress(w io.Writer, verbosity int) *Progress {
	if w == nil {
		w = io.Discard
	}
	if verbosity > LevelDebug {
		verbosity = LevelDebug
	}
	return &Progress{w: w, verbosity: verbosity}
}

func (p *Progress) Warnf(format string, args ...any) {
	p.printf(LevelWarn, "warning: "+format, args...)
}

func (p *Progress) Infof(format string, args ...any) {
	p.printf(LevelInfo, format, args...)
}

func (p *Progress) Debugf(format string, args ...any) {
	p.printf(LevelDebug, format, args...)
}

// CompilerOutput returns the sink for raw compiler output: the progress
// writer at debug verbosity, discarded otherwise.
func (p *Progress) CompilerOutput() io.Writer {
	if p == nil || p.verbosity < LevelDebug {
		return io.Discard
	}
	return p.w
}

func (p *Progress) printf(level int, format string, args ...any) {
	if p == nil || level > p.verbosity {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}
