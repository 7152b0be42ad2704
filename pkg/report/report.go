// Package report turns a finished count into per-word frequencies and renders
// them for the console or as structured output.
package report

import (
	"sort"

	"github.com/dtnitsch/word-frequency-analyzer/models"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/counter"
)

// columnPadding is added to the longest word to size the word column.
const columnPadding = 4

// Meta carries facts about the input that the counter does not know.
type Meta struct {
	File          string
	FileSizeBytes int64
	Language      string
	Skipped       int
	MaxWordLen    int
	Top           int
}

// Build computes frequencies (count / total words) for every word, in
// lexical order, and carries over the coordinator's checksum verdict.
func Build(res *counter.Result, meta Meta) *models.Report {
	total := float64(res.Tokens)

	words := make([]models.WordFrequency, 0, len(res.Counts))
	for word, count := range res.Counts {
		words = append(words, models.WordFrequency{
			Word:      word,
			Count:     count,
			Frequency: float64(count) / total,
		})
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].Word < words[j].Word
	})

	width := meta.MaxWordLen
	for _, w := range words {
		if n := len([]rune(w.Word)); n > width {
			width = n
		}
	}

	rep := &models.Report{
		File:           meta.File,
		FileSizeBytes:  meta.FileSizeBytes,
		Language:       meta.Language,
		CaseSensitive:  res.CaseSensitive,
		Scheme:         res.Scheme.String(),
		TotalWords:     res.Tokens,
		UniqueWords:    len(words),
		SkippedWords:   meta.Skipped,
		Workers:        res.Workers,
		SpawnedWorkers: res.Spawned,
		Elapsed:        res.Elapsed,
		Checksum: models.Checksum{
			Counted:  res.Counted,
			Expected: res.Tokens,
			Valid:    res.Valid,
		},
		Words:     words,
		WordWidth: width + columnPadding,
	}
	if meta.Top > 0 {
		rep.TopWords = TopN(res.Counts, res.Tokens, meta.Top)
	}

	return rep
}
