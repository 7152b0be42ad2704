package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per analyze invocation that reached the checksum
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_path TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    file_size_bytes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Counting parameters
    case_sensitive BOOLEAN NOT NULL DEFAULT 0,
    skip_stopwords BOOLEAN NOT NULL DEFAULT 0,
    scheme TEXT NOT NULL,
    workers INTEGER NOT NULL,
    spawned_workers INTEGER NOT NULL,

    -- Outcome
    total_words INTEGER NOT NULL,
    counted_words INTEGER NOT NULL,
    unique_words INTEGER NOT NULL,
    checksum_valid BOOLEAN NOT NULL,
    language TEXT,
    elapsed_ms INTEGER NOT NULL DEFAULT 0,

    -- Top keywords as JSON array: ["word1:count1", "word2:count2", ...]
    top_keywords TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_content_hash ON runs(content_hash);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Per-word counts for each run
CREATE TABLE IF NOT EXISTS run_words (
    run_id INTEGER NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (run_id, word),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_words_count ON run_words(run_id, count DESC);
`
