// Package store provides the session-scoped cycle lists the presentation
// layer edits before handing strategies to the simulation engine. The store
// is explicit mutable state passed in by its owner; the engine itself never
// touches it.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lsdca/strategy-simulator/internal/domain"
)

// ErrNotFound is returned when a cycle ID does not exist in a scenario list.
var ErrNotFound = fmt.Errorf("cycle not found")

// Entry is a stored cycle with its session identifier.
type Entry struct {
	ID    string
	Cycle domain.Cycle
}

// ScenarioStore holds per-scenario ordered cycle lists for one session.
// All cycles enter through the domain factory, so the derived monthly
// repayment is always consistent with the loan fields, including after an
// update.
type ScenarioStore struct {
	mu     sync.RWMutex
	cycles map[string][]Entry
}

// NewScenarioStore creates an empty store.
func NewScenarioStore() *ScenarioStore {
	return &ScenarioStore{cycles: make(map[string][]Entry)}
}

// Add appends a cycle to a scenario's list and returns its entry.
func (s *ScenarioStore) Add(scenario string, cycle domain.Cycle) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{ID: uuid.NewString(), Cycle: cycle}
	s.cycles[scenario] = append(s.cycles[scenario], entry)
	return entry
}

// Get returns the entry stored under id.
func (s *ScenarioStore) Get(scenario, id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.cycles[scenario] {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("scenario %q: %w", scenario, ErrNotFound)
}

// Update replaces the cycle stored under id. The caller rebuilds the cycle
// through domain.NewCycle, which recomputes the derived repayment.
func (s *ScenarioStore) Update(scenario, id string, cycle domain.Cycle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.cycles[scenario] {
		if entry.ID == id {
			s.cycles[scenario][i].Cycle = cycle
			return nil
		}
	}
	return fmt.Errorf("scenario %q: %w", scenario, ErrNotFound)
}

// Remove deletes the cycle stored under id, preserving list order.
func (s *ScenarioStore) Remove(scenario, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cycles[scenario]
	for i, entry := range entries {
		if entry.ID == id {
			s.cycles[scenario] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("scenario %q: %w", scenario, ErrNotFound)
}

// List returns a copy of a scenario's entries in insertion order.
func (s *ScenarioStore) List(scenario string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Entry(nil), s.cycles[scenario]...)
}

// Strategy returns the scenario's cycles as an ordered Strategy ready for
// the simulation engine.
func (s *ScenarioStore) Strategy(scenario string) domain.Strategy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	strategy := make(domain.Strategy, 0, len(s.cycles[scenario]))
	for _, entry := range s.cycles[scenario] {
		strategy = append(strategy, entry.Cycle)
	}
	return strategy
}

// Clear drops a scenario's cycle list (used when a scenario is regenerated,
// e.g. re-deriving the DCA mirror).
func (s *ScenarioStore) Clear(scenario string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cycles, scenario)
}
