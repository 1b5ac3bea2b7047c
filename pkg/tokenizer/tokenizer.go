// Package tokenizer splits raw text into whitespace-delimited tokens and
// partitions the token sequence into contiguous segments for parallel
// counting.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSegmentCount is returned when a partition is requested with a
// non-positive segment count.
var ErrInvalidSegmentCount = errors.New("tokenizer: segment count must be positive")

// Segment is an ordered sequence of tokens. A segment is owned exclusively
// by the worker counting it and must not be mutated after partitioning.
type Segment []string

// Tokenize splits text on whitespace, preserving input order. No
// normalization or case folding is applied; token equality downstream is
// exact string match.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Partition divides tokens into n contiguous segments. Each segment holds
// len(tokens)/n tokens except the last, which absorbs the remainder of the
// integer division so that the segments cover the input exactly once.
//
// If n exceeds the token count the trailing segments are empty. That is
// valid input for the counter, not an error.
func Partition(tokens []string, n int) ([]Segment, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegmentCount, n)
	}

	base := len(tokens) / n
	segments := make([]Segment, n)
	for i := range segments {
		start := i * base
		end := start + base
		if i == n-1 {
			end = len(tokens)
		}
		segments[i] = Segment(tokens[start:end])
	}

	return segments, nil
}
