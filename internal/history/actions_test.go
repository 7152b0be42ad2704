package history

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	dbpkg "github.com/dtnitsch/word-frequency-analyzer/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *dbpkg.DB {
	t.Helper()
	database, err := dbpkg.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func insertRun(t *testing.T, database *dbpkg.DB, file string, valid bool) int64 {
	t.Helper()
	id, err := database.InsertRun(dbpkg.Run{
		FilePath:       file,
		ContentHash:    "hash-" + file,
		FileSizeBytes:  2048,
		Scheme:         "remainder-last",
		Workers:        3,
		SpawnedWorkers: 2,
		TotalWords:     12345,
		CountedWords:   12345,
		UniqueWords:    678,
		ChecksumValid:  valid,
		Elapsed:        20 * time.Millisecond,
	}, map[string]int{"the": 10, "fox": 4, "dog": 4})
	require.NoError(t, err)
	return id
}

func TestPrintRunsEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintRuns(&out, openTestDB(t), 10))
	assert.Equal(t, "No runs found\n", out.String())
}

func TestPrintRuns(t *testing.T) {
	database := openTestDB(t)
	insertRun(t, database, "first.txt", true)
	insertRun(t, database, "second.txt", false)

	var out bytes.Buffer
	require.NoError(t, PrintRuns(&out, database, 10))

	text := out.String()
	assert.Contains(t, text, "first.txt")
	assert.Contains(t, text, "second.txt")
	assert.Contains(t, text, "12,345")
	assert.Contains(t, text, "Total: 2 runs")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("second.txt")), bytes.Index(out.Bytes(), []byte("first.txt")),
		"newest run is listed first")
}

func TestPrintRun(t *testing.T) {
	database := openTestDB(t)
	id := insertRun(t, database, "book.txt", false)

	var out bytes.Buffer
	require.NoError(t, PrintRun(&out, database, id, 2))

	text := out.String()
	assert.Contains(t, text, "book.txt (2.0 kB)")
	assert.Contains(t, text, "Checksum:    INVALID")
	assert.Contains(t, text, "Language:    (unknown)")
	assert.Contains(t, text, "Words (2):")
	assert.Contains(t, text, "   1. the")
	assert.Contains(t, text, "   2. dog")
	assert.NotContains(t, text, "fox")
}

func TestPrintRunNotFound(t *testing.T) {
	var out bytes.Buffer
	err := PrintRun(&out, openTestDB(t), 99, 0)
	assert.ErrorIs(t, err, dbpkg.ErrRunNotFound)
}

func TestRunIDOrLatest(t *testing.T) {
	database := openTestDB(t)

	_, err := runIDOrLatest("", database)
	assert.Error(t, err)

	insertRun(t, database, "a.txt", true)
	latest := insertRun(t, database, "b.txt", true)

	id, err := runIDOrLatest("", database)
	require.NoError(t, err)
	assert.Equal(t, latest, id)

	id, err = runIDOrLatest("7", database)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = runIDOrLatest("seven", database)
	assert.Error(t, err)
}

func TestDeleteRun(t *testing.T) {
	database := openTestDB(t)
	kept := insertRun(t, database, "kept.txt", true)
	gone := insertRun(t, database, "gone.txt", true)

	var out bytes.Buffer
	require.NoError(t, DeleteRun(&out, database, gone))
	assert.Equal(t, fmt.Sprintf("Deleted run %d\n", gone), out.String())

	_, err := database.GetRun(gone)
	assert.ErrorIs(t, err, dbpkg.ErrRunNotFound)
	words, err := database.GetRunWords(gone, 0)
	require.NoError(t, err)
	assert.Empty(t, words)

	_, err = database.GetRun(kept)
	assert.NoError(t, err)

	err = DeleteRun(&out, database, gone)
	assert.ErrorIs(t, err, dbpkg.ErrRunNotFound)
}
