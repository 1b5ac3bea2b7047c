package mapreduce

import (
	"fmt"

	"github.com/dtnitsch/wordmill/pkg/analytics"
)

// TopKeywords returns the top n ranked tokens as "token:count" strings,
// with stopwords filtered out. This is an informational view for run
// summaries and the database; the core report stays exact and unfiltered.
func TopKeywords(counts map[string]int, n int) []string {
	filtered := make(map[string]int, len(counts))
	for token, count := range counts {
		if analytics.IsStopword(token) {
			continue
		}
		filtered[token] = count
	}

	ranked := Rank(filtered)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	keywords := make([]string, len(ranked))
	for i, e := range ranked {
		keywords[i] = fmt.Sprintf("%s:%d", e.Token, e.Count)
	}

	return keywords
}

// PrintTopKeywords prints the top n keywords as a numbered list.
func PrintTopKeywords(counts map[string]int, n int) {
	for i, kw := range TopKeywords(counts, n) {
		fmt.Printf("%d. %s\n", i+1, kw)
	}
}
