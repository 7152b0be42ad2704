package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrEmptyFile is returned by ReadInput for a zero-byte file.
var ErrEmptyFile = errors.New("file is empty")

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
	IsDir     bool
}

// SaveFile writes content to filePath, creating parent directories as needed.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", filePath, err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// ReadInput reads a document to analyze and rejects directories and empty files.
func (s *Storage) ReadInput(filePath string) ([]byte, *FileStats, error) {
	stats, err := s.GetFileStats(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open file %s: %w", filePath, err)
	}
	if stats.IsDir {
		return nil, nil, fmt.Errorf("unable to open file %s: is a directory", filePath)
	}
	if stats.SizeBytes == 0 {
		return nil, nil, fmt.Errorf("unable to perform frequency analysis on %q: %w", filePath, ErrEmptyFile)
	}

	data, err := s.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read file %s: %w", filePath, err)
	}
	return data, stats, nil
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
		IsDir:     info.IsDir(),
	}, nil
}
