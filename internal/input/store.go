// Package input locates and reads puzzle input files.
//
// Inputs live in a single directory and are named <YY>-<DD>.txt, where YY is
// the last two digits of the year and DD the zero-padded day:
//
//	data
//	├── 23-01.txt
//	├── 23-02.txt
//	└── 24-01.txt
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aoc/internal/config"
)

// Day bounds shared by every puzzle year.
const (
	MinDay = 1
	MaxDay = 24
)

var (
	// ErrInputNotFound is returned when the input file for a puzzle does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrOutOfRange is returned for a year or day outside the supported range.
	ErrOutOfRange = errors.New("out of range")
)

// Store resolves puzzle input files under Dir.
type Store struct {
	Dir   string
	Years config.YearRange
}

// NewStore returns a Store for the configured data directory and year range.
func NewStore(cfg config.Config) *Store {
	return &Store{Dir: cfg.DataDir, Years: cfg.Years}
}

// FileName returns the conventional file name for a puzzle, e.g. "23-05.txt".
func FileName(year, day int) string {
	return fmt.Sprintf("%02d-%02d.txt", year%100, day)
}

// Path returns the absolute path of the input file for year and day.
// It does not check that the file exists.
func (s *Store) Path(year, day int) (string, error) {
	if !s.Years.Contains(year) {
		return "", fmt.Errorf("%w: year %d must be in range [%d, %d]", ErrOutOfRange, year, s.Years.Min, s.Years.Max)
	}
	if day < MinDay || day > MaxDay {
		return "", fmt.Errorf("%w: day %d must be in range [%d, %d]", ErrOutOfRange, day, MinDay, MaxDay)
	}

	path, err := filepath.Abs(filepath.Join(s.Dir, FileName(year, day)))
	if err != nil {
		return "", fmt.Errorf("failed to resolve input path: %w", err)
	}
	return path, nil
}

// Exists reports whether the input file for year and day is present.
func (s *Store) Exists(year, day int) (bool, error) {
	path, err := s.Path(year, day)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// Lines reads the input file for year and day and returns its lines without
// line terminators. A single trailing empty line is dropped.
func (s *Store) Lines(year, day int) ([]string, error) {
	path, err := s.Path(year, day)
	if err != nil {
		return nil, err
	}
	return ReadLines(path)
}

// ReadLines reads path line by line.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
