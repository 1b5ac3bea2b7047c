// Package manifest writes a YAML summary next to the run's report.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordmill/pkg/storage"
)

// Generate marshals the manifest and saves it via the storage layer.
// Returns the path it was written to.
func Generate(m *RunManifest, s *storage.Storage, path string) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("failed to save run manifest: %w", err)
	}

	return path, nil
}
