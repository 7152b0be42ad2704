package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded analysis.
type Run struct {
	RunID          int64
	FilePath       string
	ContentHash    string
	FileSizeBytes  int64
	CreatedAt      time.Time
	CaseSensitive  bool
	SkipStopwords  bool
	Scheme         string
	Workers        int
	SpawnedWorkers int
	TotalWords     int
	CountedWords   int
	UniqueWords    int
	ChecksumValid  bool
	Language       string
	Elapsed        time.Duration
	TopKeywords    []string
}

// WordCount is one stored row of a run's frequency table.
type WordCount struct {
	Word  string
	Count int
}

// InsertRun stores a run and its full frequency table in one transaction.
func (db *DB) InsertRun(run Run, counts map[string]int) (int64, error) {
	topJSON, err := json.Marshal(run.TopKeywords)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal top keywords: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // No-op after Commit
	}()

	result, err := tx.Exec(`
		INSERT INTO runs (
			file_path, content_hash, file_size_bytes,
			case_sensitive, skip_stopwords, scheme, workers, spawned_workers,
			total_words, counted_words, unique_words, checksum_valid, language, elapsed_ms,
			top_keywords
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.FilePath, run.ContentHash, run.FileSizeBytes,
		run.CaseSensitive, run.SkipStopwords, run.Scheme, run.Workers, run.SpawnedWorkers,
		run.TotalWords, run.CountedWords, run.UniqueWords, run.ChecksumValid, NewNullString(run.Language), run.Elapsed.Milliseconds(),
		string(topJSON))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_words (run_id, word, count) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare word insert: %w", err)
	}
	defer stmt.Close()

	for word, count := range counts {
		if _, err := stmt.Exec(runID, word, count); err != nil {
			return 0, fmt.Errorf("failed to insert word %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

const runColumns = `
	run_id, file_path, content_hash, file_size_bytes, created_at,
	case_sensitive, skip_stopwords, scheme, workers, spawned_workers,
	total_words, counted_words, unique_words, checksum_valid, language, elapsed_ms,
	top_keywords`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	var language, topJSON sql.NullString
	var elapsedMS int64
	err := row.Scan(
		&r.RunID, &r.FilePath, &r.ContentHash, &r.FileSizeBytes, &r.CreatedAt,
		&r.CaseSensitive, &r.SkipStopwords, &r.Scheme, &r.Workers, &r.SpawnedWorkers,
		&r.TotalWords, &r.CountedWords, &r.UniqueWords, &r.ChecksumValid, &language, &elapsedMS,
		&topJSON,
	)
	if err != nil {
		return nil, err
	}

	r.Language = language.String
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	if topJSON.Valid && topJSON.String != "" {
		if err := json.Unmarshal([]byte(topJSON.String), &r.TopKeywords); err != nil {
			return nil, fmt.Errorf("failed to parse top keywords for run %d: %w", r.RunID, err)
		}
	}

	return &r, nil
}

// GetRun returns a single run by ID.
func (db *DB) GetRun(runID int64) (*Run, error) {
	row := db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

func (db *DB) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// ListRuns returns the most recent runs first. limit <= 0 returns all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	return db.queryRuns("SELECT "+runColumns+" FROM runs ORDER BY run_id DESC LIMIT ?", limit)
}

// FindRunsByHash returns earlier runs over identical content, newest first.
func (db *DB) FindRunsByHash(contentHash string) ([]Run, error) {
	return db.queryRuns("SELECT "+runColumns+" FROM runs WHERE content_hash = ? ORDER BY run_id DESC", contentHash)
}

// GetRunWords returns a run's words by descending count. limit <= 0 returns all.
func (db *DB) GetRunWords(runID int64, limit int) ([]WordCount, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.Query(`
		SELECT word, count FROM run_words
		WHERE run_id = ?
		ORDER BY count DESC, word ASC
		LIMIT ?
	`, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run words: %w", err)
	}
	defer rows.Close()

	var words []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan run word: %w", err)
		}
		words = append(words, wc)
	}
	return words, rows.Err()
}

// DeleteRun removes a run and, through the foreign key, its words.
func (db *DB) DeleteRun(runID int64) error {
	result, err := db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	return nil
}

// NewNullString creates a sql.NullString from a string value.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
