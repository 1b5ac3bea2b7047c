// Package extract converts HTML sources into plain text so HTML corpora
// can be tokenized like flat text files.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Text extracts readable plain text from raw HTML. It lets go-readability
// distill article-like pages first and falls back to stripping markup with
// goquery when readability finds no usable content (short fragments,
// non-article pages).
func Text(html string) (string, error) {
	// readability needs a base URL for resolving relative links; the
	// content itself is local, so a placeholder is fine.
	baseURL, _ := url.Parse("http://localhost/")

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), baseURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("extract: failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	return doc.Text(), nil
}
