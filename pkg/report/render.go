package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/word-frequency-analyzer/models"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

const (
	validNote   = "[valid frequency analysis: total words analyzed reflects total words parsed from file]"
	invalidNote = "[invalid frequency analysis: total words analyzed does not reflect total words parsed from file]"
)

// Write renders rep to w in the given format (text, json or yaml).
func Write(w io.Writer, rep *models.Report, format string) error {
	switch format {
	case models.FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case models.FormatYAML:
		data, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case models.FormatText, "":
		return writeText(w, rep)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func writeText(w io.Writer, rep *models.Report) error {
	width := rep.WordWidth
	if width < len("WORD COUNT: ") {
		width = len("WORD COUNT: ")
	}

	var sb strings.Builder
	sb.WriteString("RESULTS OF THE ANALYSIS:\n")
	if rep.File != "" {
		fmt.Fprintf(&sb, "File: %s (%s)\n", rep.File, humanize.Bytes(uint64(max(rep.FileSizeBytes, 0))))
	}
	if rep.Language != "" {
		fmt.Fprintf(&sb, "Detected language: %s\n", rep.Language)
	}
	fmt.Fprintf(&sb, "Words parsed: %s (%s unique", humanize.Comma(int64(rep.TotalWords)), humanize.Comma(int64(rep.UniqueWords)))
	if rep.SkippedWords > 0 {
		fmt.Fprintf(&sb, ", %s stopwords skipped", humanize.Comma(int64(rep.SkippedWords)))
	}
	sb.WriteString(")\n")
	fmt.Fprintf(&sb, "Additional workers launched by the coordinator: %d\n", rep.SpawnedWorkers)

	if len(rep.TopWords) > 0 {
		fmt.Fprintf(&sb, "\nTop %d words:\n", len(rep.TopWords))
		for i, wf := range rep.TopWords {
			fmt.Fprintf(&sb, "%d. %s: %d\n", i+1, wf.Word, wf.Count)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(pad("--Word: ", width))
	sb.WriteString("--Frequency of Occurrence:\n")
	for _, wf := range rep.Words {
		fmt.Fprintf(&sb, "%s%.14e\n", pad(wf.Word, width), wf.Frequency)
	}

	note := validNote
	if !rep.Checksum.Valid {
		note = invalidNote
	}
	fmt.Fprintf(&sb, "\n%s%-8d%s\n", pad("WORD COUNT: ", width), rep.Checksum.Counted, note)

	_, err := io.WriteString(w, sb.String())
	return err
}
