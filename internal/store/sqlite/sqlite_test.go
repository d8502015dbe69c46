package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"outlay/internal/core"
	"outlay/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "outlay.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmptyDatabase(t *testing.T) {
	s := newTestStore(t)
	records, outcome := s.Load(context.Background())
	if outcome != store.LoadEmpty || len(records) != 0 {
		t.Fatalf("expected empty load, got %v (%d records)", outcome, len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := []core.Record{
		{
			ID:          "r1",
			Date:        core.NewDate(2024, 1, 5),
			Category:    "Food",
			Description: "lunch",
			Amount:      core.Money{Cents: 1000},
			CreatedAt:   time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "r2",
			Date:        core.NewDate(2024, 1, 10),
			Category:    "Transport",
			Description: "train",
			Amount:      core.Money{Cents: 250},
			CreatedAt:   time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		},
	}
	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, outcome := s.Load(context.Background())
	if outcome != store.LoadOK {
		t.Fatalf("expected ok load, got %v", outcome)
	}
	if len(out) != 2 || out[0].ID != "r1" || out[1].Amount.Cents != 250 {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	first := []core.Record{{ID: "a", Date: core.NewDate(2024, 1, 1), Category: "c", Description: "d", Amount: core.Money{Cents: 100}}}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	out, outcome := s.Load(ctx)
	if outcome != store.LoadOK || len(out) != 0 {
		t.Fatalf("expected empty sequence after overwrite, got %v (%d)", outcome, len(out))
	}
}

func TestCorruptSlotRecovers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)`, store.SlotKey, `{"not":"an array`)
	if err != nil {
		t.Fatalf("plant corrupt slot: %v", err)
	}

	records, outcome := s.Load(ctx)
	if outcome != store.LoadRecovered {
		t.Fatalf("expected recovered outcome, got %v", outcome)
	}
	if len(records) != 0 {
		t.Fatalf("corrupt data must be discarded, got %d records", len(records))
	}
}
