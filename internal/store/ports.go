// Package store defines the persistence port for the ledger and the
// outcome taxonomy for loads.
//
// The persistent store is a single named slot holding the serialized
// record sequence, read and written wholesale. It is a durable mirror of
// the in-memory ledger, never an independent source of truth.
package store

import (
	"context"

	"outlay/internal/core"
)

// LoadOutcome classifies how a Load went. Every outcome still yields a
// usable (possibly empty) record slice; no load result is fatal.
type LoadOutcome int

const (
	// LoadOK: the slot existed and parsed cleanly.
	LoadOK LoadOutcome = iota
	// LoadEmpty: no data had ever been saved.
	LoadEmpty
	// LoadRecovered: the slot existed but did not parse as a record
	// sequence; the corrupt data was discarded and an empty ledger is
	// returned. Deliberate lenient-recovery policy, never an error.
	LoadRecovered
	// LoadFailed: the underlying service errored; treated as "no data".
	LoadFailed
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadOK:
		return "ok"
	case LoadEmpty:
		return "empty"
	case LoadRecovered:
		return "recovered"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Store is the outbound persistence port.
type Store interface {
	// Load reads the full record sequence from the slot.
	Load(ctx context.Context) ([]core.Record, LoadOutcome)

	// Save overwrites the slot with the full record sequence. A save
	// error is reported but callers treat it as non-fatal: the
	// in-memory ledger stays authoritative for the session.
	Save(ctx context.Context, records []core.Record) error
}
