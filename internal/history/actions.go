package history

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	dbpkg "github.com/dtnitsch/word-frequency-analyzer/pkg/db"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return PrintRuns(os.Stdout, database, c.Int("limit"))
}

// PrintRuns writes a table of the most recent runs.
func PrintRuns(w io.Writer, database *dbpkg.DB, limit int) error {
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-10s %-10s %-8s %-8s %-6s %-40s\n",
		"ID", "Created", "Words", "Unique", "Workers", "Valid", "Case", "File")
	fmt.Fprintln(w, strings.Repeat("-", 116))

	for _, r := range runs {
		fmt.Fprintf(w, "%-6d %-20s %-10s %-10s %-8d %-8t %-6s %-40s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			humanize.Comma(int64(r.TotalWords)),
			humanize.Comma(int64(r.UniqueWords)),
			r.Workers,
			r.ChecksumValid,
			caseLabel(r.CaseSensitive),
			r.FilePath,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'wfa run <id>' to see details\n")

	return nil
}

// RunAction shows one run, or the latest when no ID is given.
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := runIDOrLatest(c.Args().First(), database)
	if err != nil {
		return err
	}

	return PrintRun(os.Stdout, database, runID, c.Int("top"))
}

func runIDOrLatest(arg string, database *dbpkg.DB) (int64, error) {
	if arg == "" {
		runs, err := database.ListRuns(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest run: %w", err)
		}
		if len(runs) == 0 {
			return 0, fmt.Errorf("no runs found. Run 'wfa analyze <file>' first")
		}
		return runs[0].RunID, nil
	}

	runID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID %q: %w", arg, err)
	}
	return runID, nil
}

// PrintRun writes the details of a run followed by its top words.
func PrintRun(w io.Writer, database *dbpkg.DB, runID int64, top int) error {
	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}

	words, err := database.GetRunWords(runID, top)
	if err != nil {
		return fmt.Errorf("failed to get run words: %w", err)
	}

	language := run.Language
	if language == "" {
		language = "(unknown)"
	}

	fmt.Fprintf(w, "Run %d\n", run.RunID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Created:     %s (%s)\n", run.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(run.CreatedAt))
	fmt.Fprintf(w, "File:        %s (%s)\n", run.FilePath, humanize.Bytes(uint64(run.FileSizeBytes)))
	fmt.Fprintf(w, "Hash:        %s\n", run.ContentHash)
	fmt.Fprintf(w, "Words:       %s total, %s counted, %s unique\n",
		humanize.Comma(int64(run.TotalWords)), humanize.Comma(int64(run.CountedWords)), humanize.Comma(int64(run.UniqueWords)))
	fmt.Fprintf(w, "Checksum:    %s\n", validLabel(run.ChecksumValid))
	fmt.Fprintf(w, "Case:        %s\n", caseLabel(run.CaseSensitive))
	fmt.Fprintf(w, "Stopwords:   %s\n", stopwordLabel(run.SkipStopwords))
	fmt.Fprintf(w, "Workers:     %d (%d spawned, scheme %s)\n", run.Workers, run.SpawnedWorkers, run.Scheme)
	fmt.Fprintf(w, "Language:    %s\n", language)
	fmt.Fprintf(w, "Elapsed:     %s\n", run.Elapsed)

	if len(words) > 0 {
		fmt.Fprintf(w, "\nWords (%d):\n", len(words))
		fmt.Fprintln(w, strings.Repeat("-", 60))
		for i, wc := range words {
			fmt.Fprintf(w, "%4d. %-30s %s\n", i+1, wc.Word, humanize.Comma(int64(wc.Count)))
		}
	}

	return nil
}

// DeleteRunAction removes a run and its stored words.
func DeleteRunAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing run ID. Usage: wfa run delete <id>")
	}

	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := runIDOrLatest(c.Args().First(), database)
	if err != nil {
		return err
	}

	return DeleteRun(os.Stdout, database, runID)
}

// DeleteRun deletes one run and reports it on w.
func DeleteRun(w io.Writer, database *dbpkg.DB, runID int64) error {
	if err := database.DeleteRun(runID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted run %d\n", runID)
	return nil
}

func caseLabel(sensitive bool) string {
	if sensitive {
		return "exact"
	}
	return "folded"
}

func validLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "INVALID"
}

func stopwordLabel(skipped bool) string {
	if skipped {
		return "skipped"
	}
	return "kept"
}
