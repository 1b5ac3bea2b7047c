package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded pipeline run.
type Run struct {
	RunID        int64
	RunUUID      string
	CreatedAt    time.Time
	InputPath    string
	SegmentCount int
	TotalTokens  int
	UniqueTokens int
	DurationMS   int64
	Language     string
	OutputPath   string
	TopKeywords  string
}

// RunSegment holds the recorded statistics of one segment within a run.
type RunSegment struct {
	SegmentIndex int
	TokenCount   int
	UniqueTokens int
}

// InsertRun records a completed run and returns its row ID.
func (db *DB) InsertRun(run *Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (run_uuid, input_path, segment_count, total_tokens,
			unique_tokens, duration_ms, language, output_path, top_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunUUID,
		run.InputPath,
		run.SegmentCount,
		run.TotalTokens,
		run.UniqueTokens,
		run.DurationMS,
		nullString(run.Language),
		nullString(run.OutputPath),
		nullString(run.TopKeywords),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return result.LastInsertId()
}

// InsertRunSegments records per-segment statistics for a run.
func (db *DB) InsertRunSegments(runID int64, segments []RunSegment) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO run_segments (run_id, segment_index, token_count, unique_tokens)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, seg := range segments {
		if _, err := stmt.Exec(runID, seg.SegmentIndex, seg.TokenCount, seg.UniqueTokens); err != nil {
			return fmt.Errorf("failed to insert segment %d: %w", seg.SegmentIndex, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, run_uuid, created_at, input_path, segment_count,
			total_tokens, unique_tokens, duration_ms, language, output_path, top_keywords
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// GetRunByID returns a single run by row ID.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, run_uuid, created_at, input_path, segment_count,
			total_tokens, unique_tokens, duration_ms, language, output_path, top_keywords
		FROM runs
		WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	return run, err
}

// GetRunSegments returns the per-segment statistics of a run in segment
// order.
func (db *DB) GetRunSegments(runID int64) ([]RunSegment, error) {
	rows, err := db.Query(`
		SELECT segment_index, token_count, unique_tokens
		FROM run_segments
		WHERE run_id = ?
		ORDER BY segment_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run segments: %w", err)
	}
	defer rows.Close()

	var segments []RunSegment
	for rows.Next() {
		var seg RunSegment
		if err := rows.Scan(&seg.SegmentIndex, &seg.TokenCount, &seg.UniqueTokens); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, seg)
	}

	return segments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var language, outputPath, topKeywords sql.NullString

	err := row.Scan(
		&run.RunID,
		&run.RunUUID,
		&run.CreatedAt,
		&run.InputPath,
		&run.SegmentCount,
		&run.TotalTokens,
		&run.UniqueTokens,
		&run.DurationMS,
		&language,
		&outputPath,
		&topKeywords,
	)
	if err != nil {
		return nil, err
	}

	run.Language = language.String
	run.OutputPath = outputPath.String
	run.TopKeywords = topKeywords.String
	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
