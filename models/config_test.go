package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `input_path: corpus.txt
segment_count: 4
output_path: report.txt
html_input: true
top_n: 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.InputPath != "corpus.txt" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.SegmentCount != 4 {
		t.Errorf("SegmentCount = %d, want 4", cfg.SegmentCount)
	}
	if cfg.OutputPath != "report.txt" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if !cfg.HTMLInput {
		t.Error("HTMLInput = false, want true")
	}
	if cfg.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.TopN)
	}
}

func TestLoadConfigDefaultOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := "input_path: corpus.txt\nsegment_count: 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputPath != DefaultOutputPath {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, DefaultOutputPath)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadConfig() succeeded on missing file")
	}
}
