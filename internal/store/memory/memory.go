// Package memory provides a volatile, in-process slot store. It backs the
// "memory" backend and the test suites.
package memory

import (
	"context"
	"sync"

	"outlay/internal/core"
	"outlay/internal/store"
)

type Store struct {
	mu      sync.Mutex
	records []core.Record
	present bool
	saves   int
	failSav error
}

func New() *Store {
	return &Store{}
}

// Seed pre-populates the slot, as if a previous session had saved.
func Seed(records []core.Record) *Store {
	s := New()
	s.records = append([]core.Record(nil), records...)
	s.present = true
	return s
}

func (s *Store) Load(_ context.Context) ([]core.Record, store.LoadOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return nil, store.LoadEmpty
	}
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out, store.LoadOK
}

func (s *Store) Save(_ context.Context, records []core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.failSav != nil {
		return s.failSav
	}
	s.records = make([]core.Record, len(records))
	copy(s.records, records)
	s.present = true
	return nil
}

// FailSaves makes every subsequent Save return err (nil restores normal
// behaviour). Used to exercise the non-fatal save-failure policy.
func (s *Store) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSav = err
}

// SaveCount reports how many Save calls were made, including failed ones.
func (s *Store) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
