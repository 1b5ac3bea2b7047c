// Package runs implements the run-history commands backed by the SQLite
// database.
package runs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/wordmill/pkg/db"
)

// ListAction prints the most recent runs as a table.
func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-30s %-9s %-10s %-10s %-10s\n",
		"ID", "Created", "Input", "Segments", "Tokens", "Unique", "Duration")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-30s %-9d %-10d %-10d %-10s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(r.InputPath, 30),
			r.SegmentCount,
			r.TotalTokens,
			r.UniqueTokens,
			fmt.Sprintf("%dms", r.DurationMS),
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'wordmill run <id>' to see segment details\n")

	return nil
}

// ShowAction prints one run with its per-segment statistics.
func ShowAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: wordmill run <id>")
	}

	runID, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
	if err != nil {
		return fmt.Errorf("run ID must be an integer, got %q", c.Args().Get(0))
	}

	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d (%s)\n", run.RunID, run.RunUUID)
	fmt.Printf("  Created:       %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Input:         %s\n", run.InputPath)
	fmt.Printf("  Output:        %s\n", run.OutputPath)
	fmt.Printf("  Segments:      %d\n", run.SegmentCount)
	fmt.Printf("  Total tokens:  %d\n", run.TotalTokens)
	fmt.Printf("  Unique tokens: %d\n", run.UniqueTokens)
	fmt.Printf("  Duration:      %dms\n", run.DurationMS)
	if run.Language != "" {
		fmt.Printf("  Language:      %s\n", run.Language)
	}
	if run.TopKeywords != "" {
		fmt.Printf("  Top keywords:  %s\n", run.TopKeywords)
	}

	segments, err := database.GetRunSegments(runID)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return nil
	}

	fmt.Printf("\n%-9s %-10s %-10s\n", "Segment", "Tokens", "Unique")
	fmt.Println(strings.Repeat("-", 31))
	for _, seg := range segments {
		fmt.Printf("%-9d %-10d %-10d\n", seg.SegmentIndex, seg.TokenCount, seg.UniqueTokens)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
