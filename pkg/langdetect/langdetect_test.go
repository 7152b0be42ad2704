package langdetect

import (
	"strings"
	"testing"

	"github.com/pemistahl/lingua-go"
)

func TestDetect(t *testing.T) {
	d := New(lingua.English, lingua.German, lingua.French)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "The weather is lovely today and everyone went to the park to enjoy the sunshine.", "en"},
		{"german", "Das Wetter ist heute wunderschön und alle sind in den Park gegangen.", "de"},
		{"french", "Il fait très beau aujourd'hui et tout le monde est allé au parc.", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.text)
			if !ok {
				t.Fatalf("Detect(%q) could not decide", tt.text)
			}
			if got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectTokensSamples(t *testing.T) {
	d := New(lingua.English, lingua.German)

	sentence := strings.Fields("the children were reading their favourite books in the quiet library")
	tokens := make([]string, 0, sampleTokens*2)
	for len(tokens) < sampleTokens*2 {
		tokens = append(tokens, sentence...)
	}

	got, ok := d.DetectTokens(tokens)
	if !ok || got != "en" {
		t.Errorf("DetectTokens() = %q, %v, want en, true", got, ok)
	}
}

func TestNewFallsBackToDefaults(t *testing.T) {
	d := New(lingua.English)
	if d.detector == nil {
		t.Fatal("New() built no detector")
	}
}
