// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package types

// ProgressConfig holds the output settings shared by stages that report
// progress. Verbosity is a count (0 warnings only, 1 info, 2 debug);
// LogFile optionally tees the progress stream to a file.
type ProgressConfig struct {
	// Verbosity is the progress detail level (0-2).
	Verbosity int `json:"verbosity" yaml:"verbosity"`

	// LogFile is an optional path that receives a copy of the progress stream.
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// CollectConfig holds settings for the snippet collection stage.
type CollectConfig struct {
	// TextDir is the directory containing the snippet text files. The base
	// name of each file (extension removed) becomes the snippet identifier.
	TextDir string `json:"text_dir" yaml:"text_dir"`
}

// RenderConfig holds settings for template rendering.
type RenderConfig struct {
	// TemplatePath overrides the bundled deck template. Empty means use the
	// embedded default.
	TemplatePath string `json:"template_path,omitempty" yaml:"template_path,omitempty"`
}

// CompileConfig holds settings for the LaTeX compilation stage.
type CompileConfig struct {
	// Compiler is the LaTeX compiler binary name (default "pdflatex").
	Compiler string `json:"compiler" yaml:"compiler"`

	// WorkDir is the scoped staging directory for the intermediate .tex file
	// and compiler byproducts (default "tmp"). It is removed after every run.
	WorkDir string `json:"work_dir" yaml:"work_dir"`
}

// HistoryConfig holds settings for the build history store.
type HistoryConfig struct {
	// DBPath is the location of the history SQLite database
	// (default ".slidegen/history.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// Disabled skips history recording entirely.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// BuildConfig groups the stage configurations for one deck build.
type BuildConfig struct {
	Progress ProgressConfig `json:"progress" yaml:"progress"`
	Collect  CollectConfig  `json:"collect" yaml:"collect"`
	Render   RenderConfig   `json:"render" yaml:"render"`
	Compile  CompileConfig  `json:"compile" yaml:"compile"`
	History  HistoryConfig  `json:"history" yaml:"history"`

	// OutputPath is the destination for the compiled deck. Its base name
	// (minus extension) is the stem for the intermediate .tex file and the
	// expected compiler output.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ReportPath, when set, receives a YAML build report after the run.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// Defaults fills unset fields with their default values.
func (c *BuildConfig) Defaults() {
	if c.Compile.Compiler == "" {
		c.Compile.Compiler = "pdflatex"
	}
	if c.Compile.WorkDir == "" {
		c.Compile.WorkDir = "tmp"
	}
	if c.History.DBPath == "" {
		c.History.DBPath = ".slidegen/history.db"
	}
}
