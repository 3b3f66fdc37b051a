package api

import (
	"net/http"

	"villabook/internal/export"
	"villabook/internal/metrics"
)

// handleExport serves GET /api/export: the bookings-and-summary workbook.
func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("export")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	if err := export.Write(w, s.svc.List()); err != nil {
		s.log.Error().Err(err).Msg("failed to write export")
	}
}
