package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"outlay/internal/core"
	"outlay/internal/export"
)

// handleExportCSV encodes the full ledger, or the filtered subset when
// filter parameters are present, as a CSV download. An empty result is
// the expected "nothing to export" signal and answers 204 rather than
// shipping a zero-row document.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	criteria := parseCriteria(r.URL.Query())
	matched := core.Apply(s.ledger.Snapshot(), criteria)
	sorted := core.SortNewestFirst(matched)

	doc, err := export.Encode(sorted)
	if errors.Is(err, export.ErrNothingToExport) {
		slog.InfoContext(r.Context(), "Export requested with no matching expenses")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	filename := export.Filename(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))

	slog.InfoContext(r.Context(), "Export served",
		"records", len(sorted), "filename", filename)
}
