package solver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aoc/internal/config"
	"aoc/internal/input"
)

func noop(context.Context, *Puzzle) error { return nil }

func unit(year, day int) *Unit {
	return &Unit{Key: Key{Year: year, Day: day}, Title: "test", Solver: SolverFunc(noop)}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if reg.Count() != 0 {
		t.Errorf("new registry should be empty, got %d units", reg.Count())
	}
}

func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(unit(2023, 5)))

	got, ok := reg.Lookup(Key{Year: 2023, Day: 5})
	require.True(t, ok)
	assert.Equal(t, Key{Year: 2023, Day: 5}, got.Key)

	_, ok = reg.Lookup(Key{Year: 2023, Day: 9})
	assert.False(t, ok)
}

func TestGet_NotFound(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get(Key{Year: 2023, Day: 9})
	require.ErrorIs(t, err, ErrSolverNotFound)
	assert.Contains(t, err.Error(), "2023/09")
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(unit(2023, 1)))

	err := reg.Register(unit(2023, 1))
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, 1, reg.Count())
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		unit    *Unit
		wantErr error
	}{
		{name: "nil solver", unit: &Unit{Key: Key{Year: 2023, Day: 1}}, wantErr: ErrSolverNil},
		{name: "day zero", unit: unit(2023, 0), wantErr: ErrInvalidKey},
		{name: "day 25", unit: unit(2023, 25), wantErr: ErrInvalidKey},
		{name: "year zero", unit: unit(0, 1), wantErr: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(tt.unit)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, reg.Count())
		})
	}
}

func TestRegisterLogsToRegistryCategory(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := NewRegistry()
	reg.SetLogger(zap.New(core))

	require.NoError(t, reg.Register(unit(2024, 1)))
	require.Error(t, reg.Register(unit(2024, 1)))

	entries := logs.FilterMessage("solver registered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "registry", entries[0].LoggerName)
	assert.Equal(t, "2024/01", entries[0].ContextMap()["key"])
}

func TestOrdering(t *testing.T) {
	reg := NewRegistry()
	for _, k := range []Key{{2024, 1}, {2023, 7}, {2023, 1}, {2023, 3}} {
		require.NoError(t, reg.Register(unit(k.Year, k.Day)))
	}

	var keys []Key
	for _, u := range reg.Units() {
		keys = append(keys, u.Key)
	}
	assert.Equal(t, []Key{{2023, 1}, {2023, 3}, {2023, 7}, {2024, 1}}, keys)

	var days []int
	for _, u := range reg.ByYear(2023) {
		days = append(days, u.Key.Day)
	}
	assert.Equal(t, []int{1, 3, 7}, days)
	assert.Empty(t, reg.ByYear(2019))

	assert.Equal(t, []int{2023, 2024}, reg.Years())
}

func TestConcurrentRegister(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for day := 1; day <= 24; day++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			_ = reg.Register(unit(2022, day))
			_, _ = reg.Lookup(Key{Year: 2022, Day: day})
		}(day)
	}
	wg.Wait()

	assert.Equal(t, 24, reg.Count())
}

func TestGlobal(t *testing.T) {
	assert.Same(t, Global(), Global())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "2023/03", Key{Year: 2023, Day: 3}.String())
	assert.Equal(t, "2024/24", Key{Year: 2024, Day: 24}.String())
}

func TestPuzzle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "23-02.txt"), []byte("a\nb\n"), 0644))

	var out bytes.Buffer
	p := &Puzzle{
		Key:   Key{Year: 2023, Day: 2},
		Out:   &out,
		Input: &input.Store{Dir: dir, Years: config.DefaultConfig().Years},
	}

	lines, err := p.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	p.Printf("Result: %d\n", 42)
	p.Println("done")
	assert.Equal(t, "Result: 42\ndone\n", out.String())
}

func TestSolverFunc(t *testing.T) {
	boom := errors.New("boom")
	var called int
	s := SolverFunc(func(ctx context.Context, p *Puzzle) error {
		called++
		return boom
	})

	assert.ErrorIs(t, s.Solve(context.Background(), &Puzzle{}), boom)
	assert.Equal(t, 1, called)
}
