// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package build

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/speechlab/slidegen/pkg/types"
)

// WriteReport saves a build record as a YAML file.
func WriteReport(path string, rec *types.BuildRecord) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling build report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing build report: %w", err)
	}
	return nil
}

// ReadReport loads a previously written build report.
func ReadReport(path string) (*types.BuildRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading build report: %w", err)
	}
	var rec types.BuildRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing build report: %w", err)
	}
	return &rec, nil
}
