// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package types

import "time"

// PassResult records the outcome of one compiler invocation.
type PassResult struct {
	// Pass is the 1-based invocation number.
	Pass int `json:"pass" yaml:"pass"`

	// ExitError holds the compiler error string, empty on success.
	ExitError string `json:"exit_error,omitempty" yaml:"exit_error,omitempty"`
}

// BuildRecord summarizes one completed deck build. It is written as the YAML
// build report and persisted to the history store.
type BuildRecord struct {
	// TextDir is the snippet input directory.
	TextDir string `json:"text_dir" yaml:"text_dir"`

	// OutputPath is where the compiled deck was placed.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Snippets lists the collected snippet identifiers in deck order.
	Snippets []string `json:"snippets" yaml:"snippets"`

	// Passes records each compiler invocation.
	Passes []PassResult `json:"passes" yaml:"passes"`

	// Succeeded reports whether the artifact reached OutputPath.
	Succeeded bool `json:"succeeded" yaml:"succeeded"`

	// StartedAt and Duration time the run.
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}
