package solver

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"aoc/internal/logging"
)

// Registry holds all registered puzzle units and provides lookup by key.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units map[Key]*Unit

	// byYear provides fast lookup by year.
	byYear map[int][]*Unit

	log *zap.Logger
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		units:  make(map[Key]*Unit),
		byYear: make(map[int][]*Unit),
		log:    zap.NewNop(),
	}
}

// SetLogger sets the logger registrations are reported to.
func (r *Registry) SetLogger(logger *zap.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = logging.Named(logger, logging.CategoryRegistry)
}

// Register adds a unit to the registry.
// Returns an error if a unit with the same key already exists.
func (r *Registry) Register(unit *Unit) error {
	if err := unit.Validate(); err != nil {
		return fmt.Errorf("invalid unit: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.units[unit.Key]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, unit.Key)
	}

	r.units[unit.Key] = unit
	r.byYear[unit.Key.Year] = append(r.byYear[unit.Key.Year], unit)
	r.log.Debug("solver registered", zap.Stringer("key", unit.Key), zap.String("title", unit.Title))
	return nil
}

// Lookup returns the unit registered for key.
func (r *Registry) Lookup(key Key) (*Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.units[key]
	return u, ok
}

// Get returns the unit for key or ErrSolverNotFound.
func (r *Registry) Get(key Key) (*Unit, error) {
	u, ok := r.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSolverNotFound, key)
	}
	return u, nil
}

// ByYear returns the units for one year, sorted by day.
func (r *Registry) ByYear(year int) []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]*Unit, len(r.byYear[year]))
	copy(units, r.byYear[year])
	sort.Slice(units, func(i, j int) bool {
		return units[i].Key.Day < units[j].Key.Day
	})
	return units
}

// Units returns all registered units sorted by year, then day.
func (r *Registry) Units() []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]*Unit, 0, len(r.units))
	for _, u := range r.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].Key.Less(units[j].Key)
	})
	return units
}

// Years returns every year with at least one unit, ascending.
func (r *Registry) Years() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	years := make([]int, 0, len(r.byYear))
	for y := range r.byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Count returns the number of registered units.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}

// Global registry instance for convenience.
var globalRegistry = NewRegistry()

// Global returns the process-wide registry the CLI populates at start-up.
func Global() *Registry {
	return globalRegistry
}
