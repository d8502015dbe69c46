package store

import (
	"encoding/json"
	"fmt"
	"time"

	"outlay/internal/core"
)

// SlotKey is the fixed name of the slot holding the record sequence.
const SlotKey = "expenses_v1"

// recordDTO is the wire shape of one record inside the slot. Dates are
// ISO calendar dates, amounts are decimal currency units.
type recordDTO struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Marshal serializes the full record sequence for the slot.
func Marshal(records []core.Record) ([]byte, error) {
	dtos := make([]recordDTO, len(records))
	for i, r := range records {
		dtos[i] = recordDTO{
			ID:          r.ID,
			Date:        r.Date.String(),
			Category:    r.Category,
			Description: r.Description,
			Amount:      json.Number(r.Amount.Format()),
			CreatedAt:   r.CreatedAt,
		}
	}
	return json.Marshal(dtos)
}

// Unmarshal parses slot contents back into records. Any shape mismatch,
// whether the value is not an array or an element does not convert back
// to a valid record, makes the whole slot unusable; callers treat that
// as corrupt data and recover with an empty ledger.
func Unmarshal(data []byte) ([]core.Record, error) {
	var dtos []recordDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("parse slot: %w", err)
	}
	records := make([]core.Record, len(dtos))
	for i, d := range dtos {
		date, err := core.ParseDate(d.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		cents, err := core.ParseDecimalToCents(d.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = core.Record{
			ID:          d.ID,
			Date:        date,
			Category:    d.Category,
			Description: d.Description,
			Amount:      core.Money{Cents: cents},
			CreatedAt:   d.CreatedAt,
		}
	}
	return records, nil
}
