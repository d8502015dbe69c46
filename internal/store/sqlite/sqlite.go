// Package sqlite implements the durable slot store on a local SQLite
// database. The whole record sequence lives in one row, written
// wholesale, mirroring the single-slot persistence contract.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"outlay/internal/core"
	"outlay/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the record sequence from the slot. Absent slot, corrupt
// contents and driver errors all degrade to an empty ledger; the outcome
// tells the caller which case it was.
func (s *Store) Load(ctx context.Context) ([]core.Record, store.LoadOutcome) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, store.SlotKey).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, store.LoadEmpty
	case err != nil:
		slog.ErrorContext(ctx, "Slot read failed, starting empty",
			"key", store.SlotKey, "error", err)
		return nil, store.LoadFailed
	}

	records, err := store.Unmarshal([]byte(value))
	if err != nil {
		slog.WarnContext(ctx, "Slot contents unreadable, discarding",
			"key", store.SlotKey, "error", err)
		return nil, store.LoadRecovered
	}
	return records, store.LoadOK
}

// Save overwrites the slot with the full record sequence.
func (s *Store) Save(ctx context.Context, records []core.Record) error {
	value, err := store.Marshal(records)
	if err != nil {
		return fmt.Errorf("serialize records: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		store.SlotKey, string(value))
	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}
