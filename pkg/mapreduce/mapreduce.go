// Package mapreduce merges per-segment frequency tables and produces the
// deterministic ranking of the final counts.
package mapreduce

import "sort"

// Entry is a single ranked (token, count) pair.
type Entry struct {
	Token string
	Count int
}

// Reduce aggregates partial frequency tables into a single table. Counting
// is commutative and associative, so the order of the inputs never affects
// the result.
func Reduce(tables []map[string]int) map[string]int {
	final := make(map[string]int)

	for _, counts := range tables {
		for token, count := range counts {
			final[token] += count
		}
	}

	return final
}

// Rank orders merged counts by descending count, ties broken by ascending
// lexicographic token order. The key (-count, token) is a strict total
// order, so repeated runs over the same input yield byte-identical output
// regardless of worker completion order.
func Rank(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for token, count := range counts {
		entries = append(entries, Entry{Token: token, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})

	return entries
}
