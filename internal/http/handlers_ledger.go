package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"outlay/internal/core"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	dateStr := strings.TrimSpace(r.Form.Get("date"))
	category := sanitizeInput(r.Form.Get("category"))
	description := sanitizeInput(r.Form.Get("description"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))

	// An unparseable date is rejected outright; records with a blank
	// date marker would silently break the newest-first ordering.
	date, err := core.ParseDate(dateStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid date</div>`))
		return
	}

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid amount</div>`))
		return
	}

	rec, err := s.ledger.Add(r.Context(), date, category, description, core.Money{Cents: cents})
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid data: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	s.viewCache.Purge()
	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Expense recorded: ` +
		template.HTMLEscapeString(rec.Description) +
		` — ` + template.HTMLEscapeString(formatAmount(rec.Amount.Cents)) +
		` (` + template.HTMLEscapeString(rec.Category) + `)</div>`))
}

// handleDeleteExpense removes a record by id. Idempotent: deleting an id
// that is already gone still reports success.
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		w.Header().Set("Allow", "POST, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	id := strings.TrimSpace(r.Form.Get("id"))
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Missing expense id</div>`))
		return
	}

	s.ledger.Remove(r.Context(), id)
	s.viewCache.Purge()
	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
}

// handleClearLedger is the "reset all" operation.
func (s *Server) handleClearLedger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.ledger.Clear(r.Context())
	s.viewCache.Purge()
	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">All expenses deleted</div>`))
}
