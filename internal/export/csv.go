// Package export encodes record subsequences as downloadable CSV documents.
package export

import (
	"errors"
	"strings"
	"time"

	"outlay/internal/core"
)

// ErrNothingToExport signals the expected "nothing to do" condition for an
// empty subsequence. It is not a failure: callers surface it to the user
// instead of producing a zero-row document.
var ErrNothingToExport = errors.New("nothing to export")

var header = []string{"Date", "Category", "Description", "Amount"}

// Encode produces a CSV document for the given records, in their given
// order. Every field is quote-wrapped and interior quotes are doubled;
// amounts carry exactly two decimal places.
//
// The encoder never sorts: callers pass either the full ledger or an
// already-filtered, already-ordered subsequence.
func Encode(records []core.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNothingToExport
	}

	var b strings.Builder
	writeRow(&b, header)
	for _, r := range records {
		writeRow(&b, []string{
			r.Date.String(),
			r.Category,
			r.Description,
			r.Amount.Format(),
		})
	}
	return b.String(), nil
}

// Filename returns the download name for an export taken at the given
// time, e.g. "expenses_2024-01-15.csv".
func Filename(now time.Time) string {
	return "expenses_" + now.Format("2006-01-02") + ".csv"
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
