// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package render

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed assets/default.tex
var defaultTemplate string

// LoadTemplate returns the template text. A non-empty path loads from disk;
// an empty path falls back to the bundled beamer template. The returned text
// is not yet validated; Document reports placeholder errors.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}
