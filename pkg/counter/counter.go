// Package counter builds a frequency table for a single segment.
package counter

import "github.com/dtnitsch/wordmill/pkg/tokenizer"

// Count returns the exact occurrence count of each distinct token within
// the segment. Equality is exact string match. The returned table is owned
// by the caller; Count shares no state between invocations, so it can run
// concurrently for different segments.
//
// An empty segment yields an empty, non-nil table.
func Count(segment tokenizer.Segment) map[string]int {
	freq := make(map[string]int, len(segment))
	for _, tok := range segment {
		freq[tok]++
	}
	return freq
}
