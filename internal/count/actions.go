// Package count implements the `wordmill count` command: it wires the
// source reader, the counting pipeline, the progress observer, and the
// report/manifest/database sinks together.
package count

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordmill/models"
	"github.com/dtnitsch/wordmill/pkg/analytics"
	dbpkg "github.com/dtnitsch/wordmill/pkg/db"
	"github.com/dtnitsch/wordmill/pkg/extract"
	"github.com/dtnitsch/wordmill/pkg/manifest"
	"github.com/dtnitsch/wordmill/pkg/mapreduce"
	"github.com/dtnitsch/wordmill/pkg/pipeline"
	"github.com/dtnitsch/wordmill/pkg/report"
	"github.com/dtnitsch/wordmill/pkg/storage"
)

const (
	// progressInterval bounds how often the observer polls the tracker.
	// The poll is cosmetic: workers never wait on it and completion is
	// detected by the coordinator's join, so latency here is harmless.
	progressInterval = 100 * time.Millisecond

	// keywordLimit caps the keyword view stored with each run.
	keywordLimit = 25

	// languageSampleBytes bounds the text fed to the language detector.
	languageSampleBytes = 4096
)

func CountAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// All argument validation happens here, before any work is dispatched.
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	s := &storage.Storage{}
	data, err := s.ReadFile(cfg.InputPath)
	if err != nil {
		// Unreadable source is fatal: nothing is emitted.
		return err
	}

	text := string(data)
	if cfg.HTMLInput {
		logger.Info("extracting plain text from HTML input", "input", cfg.InputPath)
		text, err = extract.Text(text)
		if err != nil {
			return err
		}
	}

	runID := uuid.New().String()
	logger.Info("starting run",
		"run_id", runID, "input", cfg.InputPath, "segments", cfg.SegmentCount)

	p := pipeline.New(pipeline.WithLogger(logger))

	// The observer polls the tracker while workers are in flight. It is
	// purely informational; the pipeline's own join decides completion.
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		observeProgress(logger, p, done)
	}()

	result, runErr := p.Run(text, cfg.SegmentCount)
	close(done)
	<-stopped

	if runErr != nil {
		logger.Error("run failed, no output written", "run_id", runID, "error", runErr)
		return runErr
	}

	if err := report.Write(s, cfg.OutputPath, result.Ranked); err != nil {
		return err
	}
	logger.Info("report written",
		"run_id", runID,
		"output", cfg.OutputPath,
		"total_tokens", result.TokenCount,
		"unique_tokens", len(result.Merged),
		"duration_ms", result.Elapsed.Milliseconds(),
	)

	if cfg.TopN > 0 {
		fmt.Printf("Top %d keywords:\n", cfg.TopN)
		mapreduce.PrintTopKeywords(result.Merged, cfg.TopN)
	}

	language := ""
	if !c.Bool("no-detect") {
		language = analytics.DetectLanguage(analytics.LanguageSample(text, languageSampleBytes))
		logger.Info("corpus language detected", "run_id", runID, "language", language)
	}

	topKeywords := mapreduce.TopKeywords(result.Merged, keywordLimit)

	if c.Bool("manifest") {
		manifestPath := cfg.OutputPath + ".manifest.yaml"
		m := &manifest.RunManifest{
			RunID:        runID,
			GeneratedAt:  time.Now().Format(time.RFC3339),
			InputPath:    cfg.InputPath,
			OutputPath:   cfg.OutputPath,
			SegmentCount: cfg.SegmentCount,
			SegmentSizes: result.SegmentSizes,
			TotalTokens:  result.TokenCount,
			UniqueTokens: len(result.Merged),
			DurationMS:   result.Elapsed.Milliseconds(),
			Language:     language,
			TopKeywords:  topKeywords,
		}
		written, err := manifest.Generate(m, s, manifestPath)
		if err != nil {
			logger.Warn("failed to write run manifest", "error", err)
		} else {
			logger.Info("run manifest written", "path", written)
		}
	}

	if !c.Bool("no-db") {
		if err := recordRun(runID, cfg, result, language, topKeywords); err != nil {
			// Run history is best-effort; the report already exists.
			logger.Warn("failed to record run in database", "error", err)
		}
	}

	fmt.Printf("Final result saved to %s\n", cfg.OutputPath)
	return nil
}

// resolveConfig builds the run configuration from a YAML config file or
// from the positional <input> <segments> arguments, with flags layered on
// top. Invalid arguments are usage errors reported before any dispatch.
func resolveConfig(c *cli.Context) (*models.RunConfig, error) {
	var cfg *models.RunConfig

	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		if c.Args().Len() != 2 {
			return nil, fmt.Errorf("usage: wordmill count <input> <segments>")
		}

		segments, err := strconv.Atoi(c.Args().Get(1))
		if err != nil {
			return nil, fmt.Errorf("segment count must be an integer, got %q", c.Args().Get(1))
		}

		cfg = &models.RunConfig{
			InputPath:    c.Args().Get(0),
			SegmentCount: segments,
			OutputPath:   models.DefaultOutputPath,
		}
	}

	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.Bool("html") {
		cfg.HTMLInput = true
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}

	if cfg.InputPath == "" {
		return nil, fmt.Errorf("no input file provided")
	}
	if cfg.SegmentCount <= 0 {
		return nil, fmt.Errorf("segment count must be a positive integer, got %d", cfg.SegmentCount)
	}

	return cfg, nil
}

// observeProgress polls the tracker at a bounded interval and logs each
// change until the run signals done.
func observeProgress(logger *slog.Logger, p *pipeline.Pipeline, done <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	last := -1
	emit := func() {
		tr := p.Tracker()
		if tr == nil {
			return
		}
		if n := tr.Snapshot(); n != last {
			last = n
			logger.Info("processing segments", "completed", n, "total", tr.Total())
		}
	}

	for {
		select {
		case <-done:
			emit()
			return
		case <-ticker.C:
			emit()
		}
	}
}

// recordRun stores the run summary and per-segment statistics.
func recordRun(runID string, cfg *models.RunConfig, result *pipeline.Result, language string, topKeywords []string) error {
	database, err := dbpkg.Open()
	if err != nil {
		return err
	}
	defer database.Close()

	keywordsJSON, err := json.Marshal(topKeywords)
	if err != nil {
		keywordsJSON = nil
	}

	rowID, err := database.InsertRun(&dbpkg.Run{
		RunUUID:      runID,
		InputPath:    cfg.InputPath,
		SegmentCount: cfg.SegmentCount,
		TotalTokens:  result.TokenCount,
		UniqueTokens: len(result.Merged),
		DurationMS:   result.Elapsed.Milliseconds(),
		Language:     language,
		OutputPath:   cfg.OutputPath,
		TopKeywords:  string(keywordsJSON),
	})
	if err != nil {
		return err
	}

	segments := make([]dbpkg.RunSegment, len(result.Partials))
	for i, partial := range result.Partials {
		segments[i] = dbpkg.RunSegment{
			SegmentIndex: i,
			TokenCount:   result.SegmentSizes[i],
			UniqueTokens: len(partial),
		}
	}

	return database.InsertRunSegments(rowID, segments)
}
