package analytics

import "testing"

func TestIsStopword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"The", true},
		{"AND", true},
		{"frequency", false},
		{"pipeline", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsStopword(tt.word); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDetectLanguageEnglish(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and then runs " +
		"across the wide field before the sun sets behind the hills"

	if got := DetectLanguage(text); got != "English" {
		t.Errorf("DetectLanguage() = %q, want English", got)
	}
}

func TestLanguageSample(t *testing.T) {
	text := "alpha beta gamma"

	if got := LanguageSample(text, 100); got != text {
		t.Errorf("LanguageSample(short text) = %q, want %q", got, text)
	}

	got := LanguageSample(text, 12)
	if got != "alpha beta" {
		t.Errorf("LanguageSample(maxBytes=12) = %q, want %q", got, "alpha beta")
	}
}
