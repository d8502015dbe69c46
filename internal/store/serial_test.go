package store

import (
	"strings"
	"testing"
	"time"

	"outlay/internal/core"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := []core.Record{
		{
			ID:          "abc",
			Date:        core.NewDate(2024, 1, 5),
			Category:    "Food",
			Description: `contains "quotes" and, commas`,
			Amount:      core.Money{Cents: 1234},
			CreatedAt:   time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC),
		},
	}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"amount":12.34`) {
		t.Fatalf("amount not serialized as decimal number: %s", data)
	}

	out, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	got := out[0]
	if got.ID != in[0].ID || got.Category != in[0].Category ||
		got.Description != in[0].Description ||
		got.Amount.Cents != in[0].Amount.Cents ||
		!got.Date.Equal(in[0].Date.Time) ||
		!got.CreatedAt.Equal(in[0].CreatedAt) {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", got, in[0])
	}
}

func TestMarshalEmpty(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := Unmarshal(data)
	if err != nil || len(out) != 0 {
		t.Fatalf("expected empty roundtrip, got %v (err=%v)", out, err)
	}
}

func TestUnmarshalRejectsCorruptShapes(t *testing.T) {
	cases := []string{
		`not json`,
		`{"a":1}`, // not an array
		`[{"id":"x","date":"never","category":"c","description":"d","amount":1}]`,
		`[{"id":"x","date":"2024-01-05","category":"c","description":"d","amount":-5}]`,
	}
	for i, c := range cases {
		if _, err := Unmarshal([]byte(c)); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
