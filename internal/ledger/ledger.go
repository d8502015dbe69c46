// Package ledger owns the in-memory record collection, the single source
// of truth for a session. The persistent store is a durable mirror: save
// failures are logged and the session continues in memory.
package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"outlay/internal/core"
	"outlay/internal/store"
)

// Ledger is constructed once at startup via Open and passed by reference
// to whatever needs it; there is no ambient global.
//
// The mutex serializes mutation: user actions are logically serial, but
// the HTTP shell dispatches them from concurrent goroutines.
type Ledger struct {
	mu      sync.Mutex
	store   store.Store
	records []core.Record
	outcome store.LoadOutcome
	now     func() time.Time
}

// Open loads the ledger from the store. It never fails: corrupt or
// unreadable data degrades to an empty ledger with the outcome recorded.
func Open(ctx context.Context, s store.Store) *Ledger {
	records, outcome := s.Load(ctx)
	switch outcome {
	case store.LoadOK:
		slog.InfoContext(ctx, "Ledger loaded", "records", len(records))
	case store.LoadEmpty:
		slog.InfoContext(ctx, "No saved ledger, starting empty")
	default:
		slog.WarnContext(ctx, "Ledger load degraded, starting empty", "outcome", outcome.String())
	}
	return &Ledger{
		store:   s,
		records: records,
		outcome: outcome,
		now:     time.Now,
	}
}

// Add validates and normalizes the input, creates the record and
// persists the new sequence. Malformed input - an invalid date, an empty
// category or description after trimming, a non-positive amount - is
// rejected before any record exists.
func (l *Ledger) Add(ctx context.Context, date core.Date, category, description string, amount core.Money) (core.Record, error) {
	r := core.Record{
		ID:          uuid.NewString(),
		Date:        date,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		CreatedAt:   l.now(),
	}
	if err := r.Validate(); err != nil {
		return core.Record{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
	l.save(ctx)

	slog.InfoContext(ctx, "Expense recorded",
		"id", r.ID,
		"date", r.Date.String(),
		"category", r.Category,
		"amount_cents", r.Amount.Cents)
	return r, nil
}

// Remove deletes the record with the given id. A missing id is a no-op,
// not an error, which makes the operation idempotent.
func (l *Ledger) Remove(ctx context.Context, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.records[:0]
	removed := false
	for _, r := range l.records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	l.records = kept
	l.save(ctx)

	if removed {
		slog.InfoContext(ctx, "Expense removed", "id", id)
	} else {
		slog.DebugContext(ctx, "Remove for unknown id ignored", "id", id)
	}
}

// Clear empties the ledger. One save per call.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
	l.save(ctx)
	slog.InfoContext(ctx, "Ledger cleared")
}

// Snapshot returns a copy of the current collection for read-only use.
func (l *Ledger) Snapshot() []core.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Record, len(l.records))
	copy(out, l.records)
	return out
}

// LoadOutcome reports how the initial load from the store went.
func (l *Ledger) LoadOutcome() store.LoadOutcome {
	return l.outcome
}

// save mirrors the collection to the store. Failures are logged and
// swallowed: no retry, no queueing, the in-memory state stays
// authoritative for the session. Callers must hold the mutex.
func (l *Ledger) save(ctx context.Context) {
	if err := l.store.Save(ctx, l.records); err != nil {
		slog.ErrorContext(ctx, "Ledger save failed, continuing in memory",
			"records", len(l.records), "error", err)
	}
}
