// Package tokenizer turns an input document into the ordered token sequence
// consumed by the counter.
package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"
)

// wordPattern matches one or more characters that are not whitespace or , ; : . -
var wordPattern = regexp.MustCompile(`[^[:space:],;:.\-]+`)

// maxLineBytes bounds a single line; longer lines fail the scan.
const maxLineBytes = 16 * 1024 * 1024

type Options struct {
	// SkipStopwords drops common English words before counting.
	SkipStopwords bool
}

// Tokens is an immutable token sequence plus facts the reporter needs.
type Tokens struct {
	Words []string
	// MaxLen is the longest token in runes, used to size report columns.
	MaxLen int
	// Skipped counts tokens dropped as stopwords.
	Skipped int
}

// Tokenize splits r into tokens line by line. Empty lines are skipped.
func Tokenize(r io.Reader, opts Options) (*Tokens, error) {
	out := &Tokens{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		for _, word := range wordPattern.FindAllString(line, -1) {
			if opts.SkipStopwords && IsStopword(word) {
				out.Skipped++
				continue
			}
			out.Words = append(out.Words, word)
			if n := utf8.RuneCountInString(word); n > out.MaxLen {
				out.MaxLen = n
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}

	return out, nil
}
