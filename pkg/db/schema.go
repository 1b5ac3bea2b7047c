package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per completed counting run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    input_path TEXT NOT NULL,
    segment_count INTEGER NOT NULL,
    total_tokens INTEGER NOT NULL,
    unique_tokens INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,

    -- Detected corpus language (e.g. "English"), if detection ran
    language TEXT,

    -- Where the ranked report was written
    output_path TEXT,

    -- Top keywords as a JSON array: ["word1:count1", "word2:count2", ...]
    top_keywords TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input_path);

-- Run segments: per-segment statistics for a run
CREATE TABLE IF NOT EXISTS run_segments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    segment_index INTEGER NOT NULL,
    token_count INTEGER NOT NULL,
    unique_tokens INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, segment_index)
);

CREATE INDEX IF NOT EXISTS idx_run_segments_run ON run_segments(run_id);
`
