package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/dtnitsch/word-frequency-analyzer/internal/common"
	"github.com/dtnitsch/word-frequency-analyzer/models"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/counter"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/db"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/langdetect"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/report"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/storage"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/tokenizer"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/validator"
	"github.com/urfave/cli/v2"
)

// Exit codes for the distinct terminal outcomes of a run.
const (
	ExitFailure          = 1
	ExitInputError       = 2
	ExitConcurrencyError = 3
	ExitChecksumError    = 4
)

// historyKeywords is how many top words are stored with each run.
const historyKeywords = 25

// ErrInput marks failures detected before any counting worker starts.
var ErrInput = errors.New("input error")

const casePrompt = "Shall the program perform a case insensitive parse on the text file?"

// Settings is everything a single analysis needs.
type Settings struct {
	Path          string
	Config        *models.AnalyzeConfig
	CaseSensitive bool
	// Parallelism overrides the hardware parallelism probe when set.
	Parallelism func() int
}

func inputError(err error) error {
	return fmt.Errorf("%w: %w", ErrInput, err)
}

// ExitCode maps an analysis error onto the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, validator.ErrChecksumMismatch):
		return ExitChecksumError
	case errors.Is(err, counter.ErrWorkerFailed):
		return ExitConcurrencyError
	case errors.Is(err, ErrInput):
		return ExitInputError
	default:
		return ExitFailure
	}
}

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	path := c.Args().First()
	if path == "" {
		path = c.String("file")
	}
	if path == "" {
		return cli.Exit("no input file provided; usage: wfa analyze [flags] <inputFile>", ExitInputError)
	}

	cfg, err := configFromContext(c)
	if err != nil {
		return cli.Exit(err.Error(), ExitInputError)
	}

	caseSensitive, err := resolveCaseSensitivity(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), ExitInputError)
	}

	err = Run(Settings{Path: path, Config: cfg, CaseSensitive: caseSensitive}, logger, os.Stdout)
	if err != nil {
		logger.Error("Analysis failed", "file", path, "error", err)
		return cli.Exit(err.Error(), ExitCode(err))
	}
	return nil
}

// configFromContext loads --config when given and applies explicitly set flags on top.
func configFromContext(c *cli.Context) (*models.AnalyzeConfig, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("case-sensitive") {
		v := c.Bool("case-sensitive")
		cfg.CaseSensitive = &v
	}
	if c.IsSet("min-per-thread") {
		cfg.MinPerThread = c.Int("min-per-thread")
	}
	if c.IsSet("max-workers") {
		cfg.MaxWorkers = c.Int("max-workers")
	}
	if c.IsSet("scheme") {
		cfg.Scheme = c.String("scheme")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("top") {
		cfg.Top = c.Int("top")
	}
	if c.IsSet("skip-stopwords") {
		cfg.SkipStopwords = c.Bool("skip-stopwords")
	}
	if c.IsSet("html") {
		cfg.HTML = c.Bool("html")
	}
	if c.IsSet("article") {
		cfg.HTMLArticle = c.Bool("article")
	}
	if c.IsSet("detect-language") {
		cfg.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("no-history") {
		cfg.History = !c.Bool("no-history")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveCaseSensitivity prefers the flag, then the config file, then asks on
// an interactive terminal. Non-interactive runs default to case-insensitive.
func resolveCaseSensitivity(c *cli.Context, cfg *models.AnalyzeConfig) (bool, error) {
	if cfg.CaseSensitive != nil {
		return *cfg.CaseSensitive, nil
	}
	if c.Bool("no-prompt") || !common.IsInteractive() {
		return false, nil
	}
	insensitive, err := common.AskYesNo(os.Stdin, os.Stderr, casePrompt)
	if err != nil {
		return false, err
	}
	return !insensitive, nil
}

// loadText reads the input file and, for HTML documents, extracts readable text.
func loadText(path string, cfg *models.AnalyzeConfig, s *storage.Storage) (string, *storage.FileStats, error) {
	data, stats, err := s.ReadInput(path)
	if err != nil {
		return "", nil, inputError(err)
	}

	if cfg.HTML || tokenizer.IsHTMLPath(path) {
		text, err := tokenizer.FromHTML(data, tokenizer.FileURL(path), cfg.HTMLArticle)
		if err != nil {
			return "", nil, inputError(fmt.Errorf("unable to extract text from %s: %w", path, err))
		}
		return text, stats, nil
	}

	return string(data), stats, nil
}

// Run analyzes one file and writes the report to out. A checksum failure still
// writes the report, marked invalid, before returning the error.
func Run(settings Settings, logger *slog.Logger, out io.Writer) error {
	cfg := settings.Config
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	s := &storage.Storage{}

	text, stats, err := loadText(settings.Path, cfg, s)
	if err != nil {
		return err
	}

	tokens, err := tokenizer.Tokenize(strings.NewReader(text), tokenizer.Options{SkipStopwords: cfg.SkipStopwords})
	if err != nil {
		return inputError(fmt.Errorf("unable to read file %s: %w", settings.Path, err))
	}
	if len(tokens.Words) == 0 {
		return inputError(fmt.Errorf("%w %q", counter.ErrEmptyInput, settings.Path))
	}
	logger.Info("Parsed input file",
		"file", settings.Path,
		"words", len(tokens.Words),
		"skipped_stopwords", tokens.Skipped,
		"size_bytes", stats.SizeBytes)

	var language string
	if cfg.DetectLanguage {
		if lang, ok := langdetect.New().DetectTokens(tokens.Words); ok {
			language = lang
		}
		logger.Info("Detected corpus language", "language", language)
	}

	parallelism := settings.Parallelism
	if parallelism == nil {
		parallelism = runtime.NumCPU
	}
	coordinator := counter.New(counter.Options{
		MinPerThread:  cfg.MinPerThread,
		Parallelism:   parallelism,
		MaxWorkers:    cfg.MaxWorkers,
		Scheme:        cfg.PartitionScheme(),
		CaseSensitive: settings.CaseSensitive,
		Logger:        logger,
	})

	res, runErr := coordinator.Run(tokens.Words)
	if res == nil {
		if errors.Is(runErr, counter.ErrEmptyInput) || errors.Is(runErr, counter.ErrTooManyTokens) {
			return inputError(runErr)
		}
		return runErr
	}

	rep := report.Build(res, report.Meta{
		File:          settings.Path,
		FileSizeBytes: stats.SizeBytes,
		Language:      language,
		Skipped:       tokens.Skipped,
		MaxWordLen:    tokens.MaxLen,
		Top:           cfg.Top,
	})

	if cfg.History {
		hash := common.ContentHash([]byte(text))
		runID, err := recordRun(logger, cfg, settings, hash, res, rep)
		if err != nil {
			logger.Warn("Failed to record run history", "error", err)
		} else {
			rep.RunID = runID
		}
	}

	if err := report.Write(out, rep, cfg.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.Output != "" {
		var buf bytes.Buffer
		if err := report.Write(&buf, rep, cfg.Format); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		if err := s.SaveFile(cfg.Output, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		logger.Info("Report saved", "path", cfg.Output, "format", cfg.Format)
	}

	return runErr
}

// recordRun stores the run in the history database and logs how it compares
// with earlier runs over the same content and settings.
func recordRun(logger *slog.Logger, cfg *models.AnalyzeConfig, settings Settings, hash string, res *counter.Result, rep *models.Report) (int64, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	previous, err := database.FindRunsByHash(hash)
	if err != nil {
		logger.Warn("Failed to look up previous runs", "error", err)
	}
	for _, p := range previous {
		if p.CaseSensitive != settings.CaseSensitive || p.SkipStopwords != cfg.SkipStopwords {
			continue
		}
		if p.UniqueWords != rep.UniqueWords || p.CountedWords != rep.Checksum.Counted {
			logger.Warn("Counts differ from an earlier run over identical content",
				"previous_run_id", p.RunID,
				"previous_unique", p.UniqueWords,
				"previous_counted", p.CountedWords,
				"unique", rep.UniqueWords,
				"counted", rep.Checksum.Counted)
		}
		break
	}

	runID, err := database.InsertRun(db.Run{
		FilePath:       settings.Path,
		ContentHash:    hash,
		FileSizeBytes:  rep.FileSizeBytes,
		CaseSensitive:  settings.CaseSensitive,
		SkipStopwords:  cfg.SkipStopwords,
		Scheme:         rep.Scheme,
		Workers:        res.Workers,
		SpawnedWorkers: res.Spawned,
		TotalWords:     res.Tokens,
		CountedWords:   rep.Checksum.Counted,
		UniqueWords:    rep.UniqueWords,
		ChecksumValid:  rep.Checksum.Valid,
		Language:       rep.Language,
		Elapsed:        res.Elapsed,
		TopKeywords:    report.TopKeywords(res.Counts, historyKeywords),
	}, res.Counts)
	if err != nil {
		return 0, err
	}

	logger.Info("Recorded run", "run_id", runID, "db", database.Path())
	return runID, nil
}
