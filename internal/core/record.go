package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar date at day precision, normalized to UTC.
	// Time-of-day is always zero.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Record is a single expense transaction. Records are immutable after
	// creation: there is no edit operation, only add and remove.
	Record struct {
		ID          string
		Date        Date
		Category    string
		Description string
		Amount      Money
		CreatedAt   time.Time // audit metadata, never displayed or aggregated
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyDescription = errors.New("empty description")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (yyyy-mm-dd). Anything that does not
// normalize to a well-formed date is rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t.UTC()}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String renders the ISO form used for display, filtering and export.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (r Record) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	return r.Amount.Validate()
}
