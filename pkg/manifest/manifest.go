package manifest

// RunManifest is a lightweight YAML overview of a completed run: inputs,
// segment layout, totals, and top keywords, without requiring readers to
// parse the full report.
type RunManifest struct {
	RunID        string   `yaml:"run_id"`
	GeneratedAt  string   `yaml:"generated_at"`
	InputPath    string   `yaml:"input_path"`
	OutputPath   string   `yaml:"output_path,omitempty"`
	SegmentCount int      `yaml:"segment_count"`
	SegmentSizes []int    `yaml:"segment_sizes"`
	TotalTokens  int      `yaml:"total_tokens"`
	UniqueTokens int      `yaml:"unique_tokens"`
	DurationMS   int64    `yaml:"duration_ms"`
	Language     string   `yaml:"language,omitempty"`
	TopKeywords  []string `yaml:"top_keywords,omitempty"`
}
