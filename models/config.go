// Package models defines configuration structures shared by the CLI
// commands.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the settings of one counting run. Values come from CLI
// arguments and flags, or from a YAML config file via LoadConfig.
type RunConfig struct {
	// InputPath is the source corpus file.
	InputPath string `yaml:"input_path"`

	// SegmentCount is the number of concurrent counting workers. Must be
	// positive; validated before any work is dispatched.
	SegmentCount int `yaml:"segment_count"`

	// OutputPath is where the ranked report is written.
	OutputPath string `yaml:"output_path"`

	// HTMLInput extracts readable text from an HTML source before
	// tokenizing.
	HTMLInput bool `yaml:"html_input"`

	// TopN prints the top N filtered keywords to stdout after the run.
	// Zero disables the display.
	TopN int `yaml:"top_n"`
}

// DefaultOutputPath matches the original tool's fixed report location.
const DefaultOutputPath = "output.txt"

// LoadConfig reads a RunConfig from a YAML file.
func LoadConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	return &cfg, nil
}
