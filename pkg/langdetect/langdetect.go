// Package langdetect tags a corpus with its most likely natural language.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// sampleTokens caps how much of the corpus is handed to the detector.
const sampleTokens = 2000

// DefaultLanguages are the languages the detector distinguishes unless told otherwise.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// Detector wraps a lingua detector. It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

func New(languages ...lingua.Language) *Detector {
	if len(languages) < 2 {
		languages = DefaultLanguages
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithMinimumRelativeDistance(0.1).
			Build(),
	}
}

// Detect returns the lowercase ISO 639-1 code of text's language, or false
// when the detector cannot decide.
func (d *Detector) Detect(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// DetectTokens samples the leading tokens of a sequence and detects their language.
func (d *Detector) DetectTokens(tokens []string) (string, bool) {
	if len(tokens) > sampleTokens {
		tokens = tokens[:sampleTokens]
	}
	return d.Detect(strings.Join(tokens, " "))
}
