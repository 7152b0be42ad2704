package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/word-frequency-analyzer/internal/analyze"
	"github.com/dtnitsch/word-frequency-analyzer/internal/history"
	"github.com/dtnitsch/word-frequency-analyzer/models"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/counter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(analyze.ExitFailure)
	}
}

func newApp() *cli.App {
	dbFlag := &cli.StringFlag{
		Name:    "db",
		Usage:   "path to the run history database (default: next to the binary)",
		EnvVars: []string{"WFA_DB"},
	}

	return &cli.App{
		Name:  "wfa",
		Usage: "concurrent word frequency analysis of text and HTML files",
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "count word frequencies in a file using parallel workers",
				ArgsUsage: "<inputFile>",
				Action:    analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "input file (alternative to the positional argument)"},
					&cli.BoolFlag{Name: "case-sensitive", Usage: "count words exactly as written instead of folding case"},
					&cli.BoolFlag{Name: "no-prompt", Usage: "never ask about case sensitivity; fold case unless --case-sensitive"},
					&cli.IntFlag{Name: "min-per-thread", Value: counter.DefaultMinPerThread, Usage: "minimum words per worker before another worker is added"},
					&cli.IntFlag{Name: "max-workers", Aliases: []string{"w"}, Usage: "cap on workers (0 = hardware parallelism)"},
					&cli.StringFlag{Name: "scheme", Value: "remainder-last", Usage: "partition scheme: remainder-last or skewed"},
					&cli.StringFlag{Name: "format", Value: models.FormatText, Usage: "report format: text, json or yaml"},
					&cli.IntFlag{Name: "top", Usage: "also list the N most frequent words"},
					&cli.BoolFlag{Name: "skip-stopwords", Usage: "drop common English stopwords before counting"},
					&cli.BoolFlag{Name: "html", Usage: "treat the input as HTML regardless of extension"},
					&cli.BoolFlag{Name: "article", Usage: "count only the main article of HTML input (go-readability)"},
					&cli.BoolFlag{Name: "detect-language", Usage: "detect the language of the text"},
					&cli.BoolFlag{Name: "no-history", Usage: "do not record the run in the history database"},
					dbFlag,
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "also save the report to this path"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
				},
			},
			{
				Name:   "runs",
				Usage:  "list recorded runs",
				Action: history.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to list (0 = all)"},
					dbFlag,
				},
			},
			{
				Name:      "run",
				Usage:     "show a recorded run (latest when no ID is given)",
				ArgsUsage: "[runID]",
				Action:    history.RunAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "top", Value: 25, Usage: "number of words to show (0 = all)"},
					dbFlag,
				},
				Subcommands: []*cli.Command{
					{
						Name:      "delete",
						Usage:     "delete a recorded run and its words",
						ArgsUsage: "<runID>",
						Action:    history.DeleteRunAction,
						Flags:     []cli.Flag{dbFlag},
					},
				},
			},
		},
	}
}
