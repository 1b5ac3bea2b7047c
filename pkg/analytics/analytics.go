// Package analytics provides auxiliary corpus analysis: stopword
// filtering for keyword views and language detection for run summaries.
// Nothing here participates in the core counting pipeline, which reports
// exact, unfiltered counts.
package analytics

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// commonWords is a set of frequent function words excluded from keyword
// views. The list can be extended as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "down": {}, "during": {},

	"each": {}, "even": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "he": {}, "her": {}, "here": {},
	"him": {}, "his": {}, "how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},

	"just": {},

	"like": {},

	"may": {}, "me": {}, "more": {}, "most": {}, "much": {}, "must": {},
	"my": {},

	"no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "own": {},

	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {},

	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "why": {}, "will": {}, "with": {},
	"would": {},

	"yet": {}, "you": {}, "your": {},
}

// IsStopword checks if a word is a common stopword that should be filtered
// out of keyword views.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// candidateLanguages bounds the detector's model set; loading every
// language lingua knows is slow and memory-heavy.
var candidateLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectLanguage guesses the language of the corpus text. It returns the
// language name (e.g. "English") or "Unknown" when no candidate language
// is a confident match.
func DetectLanguage(text string) string {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			Build()
	})

	if lang, ok := detector.DetectLanguageOf(text); ok {
		return lang.String()
	}
	return "Unknown"
}

// LanguageSample returns a prefix of text at most maxBytes long, cut back
// to the last whitespace so no token is split. Detection quality plateaus
// quickly, so callers sample instead of feeding the whole corpus to the
// detector.
func LanguageSample(text string, maxBytes int) string {
	if len(text) <= maxBytes {
		return text
	}
	sample := text[:maxBytes]
	if i := strings.LastIndexAny(sample, " \t\n\r"); i > 0 {
		sample = sample[:i]
	}
	return sample
}
