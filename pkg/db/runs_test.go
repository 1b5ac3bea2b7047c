package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run := &Run{
		RunUUID:      "11111111-2222-3333-4444-555555555555",
		InputPath:    "corpus.txt",
		SegmentCount: 4,
		TotalTokens:  1000,
		UniqueTokens: 250,
		DurationMS:   42,
		Language:     "English",
		OutputPath:   "output.txt",
		TopKeywords:  `["pipeline:12","segment:7"]`,
	}

	runID, err := db.InsertRun(run)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("InsertRun() returned 0 run ID")
	}

	got, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}

	if got.RunUUID != run.RunUUID {
		t.Errorf("RunUUID = %q, want %q", got.RunUUID, run.RunUUID)
	}
	if got.InputPath != run.InputPath {
		t.Errorf("InputPath = %q, want %q", got.InputPath, run.InputPath)
	}
	if got.SegmentCount != run.SegmentCount {
		t.Errorf("SegmentCount = %d, want %d", got.SegmentCount, run.SegmentCount)
	}
	if got.TotalTokens != run.TotalTokens {
		t.Errorf("TotalTokens = %d, want %d", got.TotalTokens, run.TotalTokens)
	}
	if got.Language != run.Language {
		t.Errorf("Language = %q, want %q", got.Language, run.Language)
	}
	if got.TopKeywords != run.TopKeywords {
		t.Errorf("TopKeywords = %q, want %q", got.TopKeywords, run.TopKeywords)
	}
}

func TestInsertRunOptionalFieldsEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(&Run{
		RunUUID:      "aaaa",
		InputPath:    "in.txt",
		SegmentCount: 1,
		TotalTokens:  3,
		UniqueTokens: 3,
		DurationMS:   1,
	})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	got, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if got.Language != "" || got.OutputPath != "" || got.TopKeywords != "" {
		t.Errorf("optional fields not empty: %+v", got)
	}
}

func TestGetRunByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(999); err == nil {
		t.Fatal("GetRunByID(999) succeeded, want error")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		_, err := db.InsertRun(&Run{
			RunUUID:      string(rune('a' + i)),
			InputPath:    "in.txt",
			SegmentCount: i + 1,
			TotalTokens:  10,
			UniqueTokens: 5,
			DurationMS:   1,
		})
		if err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns(3) returned %d runs", len(runs))
	}

	// Newest first
	if runs[0].SegmentCount != 5 || runs[2].SegmentCount != 3 {
		t.Errorf("unexpected ordering: %+v", runs)
	}
}

func TestRunSegmentsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(&Run{
		RunUUID:      "seg-test",
		InputPath:    "in.txt",
		SegmentCount: 3,
		TotalTokens:  5,
		UniqueTokens: 4,
		DurationMS:   2,
	})
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	segments := []RunSegment{
		{SegmentIndex: 0, TokenCount: 1, UniqueTokens: 1},
		{SegmentIndex: 1, TokenCount: 1, UniqueTokens: 1},
		{SegmentIndex: 2, TokenCount: 3, UniqueTokens: 2},
	}
	if err := db.InsertRunSegments(runID, segments); err != nil {
		t.Fatalf("InsertRunSegments() error = %v", err)
	}

	got, err := db.GetRunSegments(runID)
	if err != nil {
		t.Fatalf("GetRunSegments() error = %v", err)
	}
	if len(got) != len(segments) {
		t.Fatalf("got %d segments, want %d", len(got), len(segments))
	}
	for i := range segments {
		if got[i] != segments[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], segments[i])
		}
	}
}
