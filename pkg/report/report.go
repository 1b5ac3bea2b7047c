// Package report renders the final ranked frequency table in the fixed
// line format consumed by output collaborators.
package report

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/wordmill/pkg/mapreduce"
	"github.com/dtnitsch/wordmill/pkg/storage"
)

// Header is the fixed first line of every report.
const Header = "Final consolidated word frequency:"

// Render produces the byte-exact report: the header line followed by one
// "<token>: <count>" line per entry, newline-terminated, in strict rank
// order.
func Render(entries []mapreduce.Entry) []byte {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteByte('\n')
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s: %d\n", e.Token, e.Count)
	}
	return []byte(sb.String())
}

// Write renders entries and saves the report to path.
func Write(s *storage.Storage, path string, entries []mapreduce.Entry) error {
	return s.SaveFile(path, Render(entries))
}
