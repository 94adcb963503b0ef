package year2023

import (
	"testing"

	"aoc/internal/solver"
)

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := solver.NewRegistry()
	if err := RegisterAll(registry); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}

	for day := 1; day <= 7; day++ {
		key := solver.Key{Year: 2023, Day: day}
		u, ok := registry.Lookup(key)
		if !ok {
			t.Errorf("expected %s to be registered", key)
			continue
		}
		if u.Title == "" {
			t.Errorf("%s has no title", key)
		}
	}
	if n := registry.Count(); n != 7 {
		t.Errorf("expected 7 units, got %d", n)
	}
}
