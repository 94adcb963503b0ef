package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return &Store{
		Dir:   t.TempDir(),
		Years: config.YearRange{Min: 2015, Max: 2024, Default: 2023},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "23-05.txt", FileName(2023, 5))
	assert.Equal(t, "24-24.txt", FileName(2024, 24))
	assert.Equal(t, "15-01.txt", FileName(2015, 1))
}

func TestStore_Path(t *testing.T) {
	s := newTestStore(t)

	path, err := s.Path(2023, 3)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, filepath.Join(s.Dir, "23-03.txt"), path)
}

func TestStore_PathOutOfRange(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name      string
		year, day int
	}{
		{"day zero", 2023, 0},
		{"day 25", 2023, 25},
		{"year too early", 2014, 1},
		{"year too late", 2025, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Path(tt.year, tt.day)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestStore_Lines(t *testing.T) {
	s := newTestStore(t)
	content := "Time:      7  15   30\r\nDistance:  9  40  200\n\n"
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "23-06.txt"), []byte(content), 0644))

	lines, err := s.Lines(2023, 6)
	require.NoError(t, err)

	want := []string{"Time:      7  15   30", "Distance:  9  40  200"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_LinesMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Lines(2023, 9)
	require.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "23-09.txt")
}

func TestStore_Exists(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "24-01.txt"), []byte("3   4\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir, "24-02.txt"), 0755))

	ok, err := s.Exists(2024, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(2024, 2)
	require.NoError(t, err)
	assert.False(t, ok, "a directory is not an input file")

	ok, err = s.Exists(2024, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Exists(2024, 30)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewStore(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewStore(cfg)
	assert.Equal(t, "data", s.Dir)
	assert.Equal(t, cfg.Years, s.Years)
}
