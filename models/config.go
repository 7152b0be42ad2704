// Package models defines data structures for configuration and reporting.
package models

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dtnitsch/word-frequency-analyzer/pkg/partition"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the analyze command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// AnalyzeConfig holds runtime configuration for one analysis run.
// Values come from an optional YAML file and are overridden by CLI flags.
type AnalyzeConfig struct {
	// CaseSensitive is nil until the file, a flag or the user prompt decides it.
	CaseSensitive  *bool  `yaml:"case_sensitive,omitempty"`
	MinPerThread   int    `yaml:"min_per_thread"`
	MaxWorkers     int    `yaml:"max_workers"`
	Scheme         string `yaml:"scheme"`
	Format         string `yaml:"format"`
	Top            int    `yaml:"top"`
	SkipStopwords  bool   `yaml:"skip_stopwords"`
	HTML           bool   `yaml:"html"`
	HTMLArticle    bool   `yaml:"html_article"`
	DetectLanguage bool   `yaml:"detect_language"`
	History        bool   `yaml:"history"`
	DBPath         string `yaml:"db_path"`
	Output         string `yaml:"output"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *AnalyzeConfig {
	return &AnalyzeConfig{
		MinPerThread: 30,
		Scheme:       partition.RemainderLast.String(),
		Format:       FormatText,
		History:      true,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*AnalyzeConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *AnalyzeConfig) Validate() error {
	if c.MinPerThread < 1 {
		return fmt.Errorf("min_per_thread must be at least 1, got %d", c.MinPerThread)
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("max_workers must not be negative, got %d", c.MaxWorkers)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	if _, err := partition.ParseScheme(c.Scheme); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", c.Format)
	}
	return nil
}

// PartitionScheme returns the parsed scheme. Validate must have succeeded.
func (c *AnalyzeConfig) PartitionScheme() partition.Scheme {
	s, _ := partition.ParseScheme(c.Scheme)
	return s
}
