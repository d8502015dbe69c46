package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"outlay/internal/core"
)

// parseCriteria builds filter criteria from query or form values. Absent
// fields mean "no constraint"; unparseable date or numeric bounds are
// treated as absent rather than as errors, matching the lenient filter
// contract.
func parseCriteria(values url.Values) core.Criteria {
	var c core.Criteria
	if v := strings.TrimSpace(values.Get("from")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			c.From = d
		}
	}
	if v := strings.TrimSpace(values.Get("to")); v != "" {
		if d, err := core.ParseDate(v); err == nil {
			c.To = d
		}
	}
	c.Category = sanitizeInput(values.Get("category"))
	c.MinCents = parseAmountBound(values.Get("min"))
	c.MaxCents = parseAmountBound(values.Get("max"))
	c.Search = sanitizeInput(values.Get("search"))
	return c
}

// parseAmountBound converts a decimal bound in currency units to cents.
// Unlike record amounts, bounds may be zero; anything unparseable is
// absent (nil), never an error.
func parseAmountBound(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || v < 0 {
		return nil
	}
	cents := int64(v*100 + 0.5)
	return &cents
}

// criteriaKey fingerprints criteria for the derived-view cache.
func criteriaKey(c core.Criteria) string {
	var b strings.Builder
	if !c.From.IsZero() {
		b.WriteString(c.From.String())
	}
	b.WriteByte('|')
	if !c.To.IsZero() {
		b.WriteString(c.To.String())
	}
	b.WriteByte('|')
	b.WriteString(c.Category)
	b.WriteByte('|')
	if c.MinCents != nil {
		b.WriteString(strconv.FormatInt(*c.MinCents, 10))
	}
	b.WriteByte('|')
	if c.MaxCents != nil {
		b.WriteString(strconv.FormatInt(*c.MaxCents, 10))
	}
	b.WriteByte('|')
	b.WriteString(strings.ToLower(c.Search))
	return b.String()
}

// formatAmount renders cents for display, e.g. "€12.34".
func formatAmount(cents int64) string {
	return "€" + (core.Money{Cents: cents}).Format()
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
