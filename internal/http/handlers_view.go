package http

import (
	"log/slog"
	"net/http"

	"outlay/internal/core"
)

// viewData is the template input for the ledger partial: the filtered,
// newest-first rows plus the aggregate summary.
type viewData struct {
	Rows     []rowData
	Total    string
	Count    int
	Filtered bool
	ByCat    []catData
}

type rowData struct {
	ID          string
	Date        string
	Category    string
	Description string
	Amount      string
}

type catData struct {
	Name    string
	Amount  string
	Percent int
}

// handleLedgerView is the render operation: filter, sort, aggregate.
func (s *Server) handleLedgerView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	criteria := parseCriteria(r.URL.Query())
	data := s.renderData(criteria)

	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "ledger.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Ledger template execution failed", "error", err, "template", "ledger.html")
		_, _ = w.Write([]byte(`<div class="error">Error rendering ledger</div>`))
	}
}

// renderData computes (or recalls from cache) the derived view for the
// given criteria. The engines are pure over an explicit snapshot, so any
// cached value is valid until the next mutation purges the cache.
func (s *Server) renderData(criteria core.Criteria) viewData {
	key := criteriaKey(criteria)
	if data, found := s.viewCache.Get(key); found {
		return data
	}

	snapshot := s.ledger.Snapshot()
	matched := core.Apply(snapshot, criteria)
	sorted := core.SortNewestFirst(matched)
	summary := core.Summarize(matched)

	data := viewData{
		Total:    formatAmount(summary.TotalCents),
		Count:    summary.Count,
		Filtered: !criteria.IsZero(),
	}
	for _, rec := range sorted {
		data.Rows = append(data.Rows, rowData{
			ID:          rec.ID,
			Date:        rec.Date.String(),
			Category:    rec.Category,
			Description: rec.Description,
			Amount:      formatAmount(rec.Amount.Cents),
		})
	}
	for _, c := range summary.ByCategory {
		data.ByCat = append(data.ByCat, catData{
			Name:    c.Name,
			Amount:  formatAmount(c.Cents),
			Percent: c.Percent,
		})
	}

	s.viewCache.Set(key, data)
	return data
}
