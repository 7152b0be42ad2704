package report

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/word-frequency-analyzer/models"
)

// TopN returns the n most frequent words, ties broken alphabetically.
// total is the token count used for the frequency column.
func TopN(counts map[string]int, total int, n int) []models.WordFrequency {
	ss := make([]models.WordFrequency, 0, len(counts))
	for k, v := range counts {
		freq := 0.0
		if total > 0 {
			freq = float64(v) / float64(total)
		}
		ss = append(ss, models.WordFrequency{Word: k, Count: v, Frequency: freq})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	return ss[:limit]
}

// TopKeywords formats the n most frequent words as "word:count" strings.
func TopKeywords(counts map[string]int, n int) []string {
	top := TopN(counts, 0, n)
	keywords := make([]string, len(top))
	for i, wf := range top {
		keywords[i] = fmt.Sprintf("%s:%d", wf.Word, wf.Count)
	}
	return keywords
}
