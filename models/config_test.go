package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/word-frequency-analyzer/pkg/partition"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
case_sensitive: true
min_per_thread: 50
max_workers: 4
scheme: skewed
format: yaml
top: 10
skip_stopwords: true
history: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.CaseSensitive == nil || !*cfg.CaseSensitive {
		t.Errorf("CaseSensitive = %v, want true", cfg.CaseSensitive)
	}
	if cfg.MinPerThread != 50 {
		t.Errorf("MinPerThread = %d, want 50", cfg.MinPerThread)
	}
	if cfg.MaxWorkers != 4 {
		t.Errorf("MaxWorkers = %d, want 4", cfg.MaxWorkers)
	}
	if cfg.PartitionScheme() != partition.Skewed {
		t.Errorf("PartitionScheme() = %v, want skewed", cfg.PartitionScheme())
	}
	if cfg.Format != FormatYAML || cfg.Top != 10 || !cfg.SkipStopwords || cfg.History {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "top: 5\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.CaseSensitive != nil {
		t.Errorf("CaseSensitive = %v, want nil when unset", *cfg.CaseSensitive)
	}
	if cfg.MinPerThread != 30 {
		t.Errorf("MinPerThread = %d, want default 30", cfg.MinPerThread)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if !cfg.History {
		t.Error("History = false, want default true")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "min_per_thread: [1, 2"},
		{"zero threshold", "min_per_thread: 0"},
		{"negative workers", "max_workers: -1"},
		{"unknown scheme", "scheme: round-robin"},
		{"unknown format", "format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadConfig() error = nil, want error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() on missing file error = nil, want error")
	}
}
