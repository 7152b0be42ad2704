package models

import "time"

// WordFrequency is one row of a report.
type WordFrequency struct {
	Word      string  `json:"word" yaml:"word"`
	Count     int     `json:"count" yaml:"count"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

// Checksum records whether every parsed word was counted exactly once.
type Checksum struct {
	Counted  int  `json:"counted" yaml:"counted"`
	Expected int  `json:"expected" yaml:"expected"`
	Valid    bool `json:"valid" yaml:"valid"`
}

// Report is the final output of an analysis run.
type Report struct {
	RunID          int64           `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	File           string          `json:"file" yaml:"file"`
	FileSizeBytes  int64           `json:"file_size_bytes" yaml:"file_size_bytes"`
	Language       string          `json:"language,omitempty" yaml:"language,omitempty"`
	CaseSensitive  bool            `json:"case_sensitive" yaml:"case_sensitive"`
	Scheme         string          `json:"scheme" yaml:"scheme"`
	TotalWords     int             `json:"total_words" yaml:"total_words"`
	UniqueWords    int             `json:"unique_words" yaml:"unique_words"`
	SkippedWords   int             `json:"skipped_words,omitempty" yaml:"skipped_words,omitempty"`
	Workers        int             `json:"workers" yaml:"workers"`
	SpawnedWorkers int             `json:"spawned_workers" yaml:"spawned_workers"`
	Elapsed        time.Duration   `json:"elapsed_ns" yaml:"elapsed"`
	Checksum       Checksum        `json:"checksum" yaml:"checksum"`
	TopWords       []WordFrequency `json:"top_words,omitempty" yaml:"top_words,omitempty"`
	Words          []WordFrequency `json:"words" yaml:"words"`

	// WordWidth is the display width for the word column in text output.
	WordWidth int `json:"-" yaml:"-"`
}
