package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/wordmill/pkg/mapreduce"
	"github.com/dtnitsch/wordmill/pkg/storage"
)

func TestRenderExactBytes(t *testing.T) {
	entries := []mapreduce.Entry{
		{Token: "a", Count: 3},
		{Token: "b", Count: 2},
		{Token: "c", Count: 1},
	}

	got := string(Render(entries))
	want := "Final consolidated word frequency:\na: 3\nb: 2\nc: 1\n"

	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := string(Render(nil))
	want := "Final consolidated word frequency:\n"

	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	entries := []mapreduce.Entry{{Token: "word", Count: 7}}

	if err := Write(&storage.Storage{}, path, entries); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	want := "Final consolidated word frequency:\nword: 7\n"
	if string(data) != want {
		t.Fatalf("report contents = %q, want %q", string(data), want)
	}
}
