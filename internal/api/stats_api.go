package api

import (
	"net/http"
	"strings"

	"villabook/internal/metrics"
	"villabook/internal/models"
)

// MonthSummaryResponse is one aggregation bucket on the wire.
type MonthSummaryResponse struct {
	Month    string `json:"month"`
	Bookings int    `json:"bookings"`
	Nights   int    `json:"nights"`
	Revenue  int64  `json:"revenue"`
}

// YearSummaryResponse groups the monthly buckets of one year with its totals.
type YearSummaryResponse struct {
	Year   int                    `json:"year"`
	Total  models.MonthlySummary  `json:"total"`
	Months []MonthSummaryResponse `json:"months"`
}

// handleStats serves GET /api/stats: years descending, months in calendar
// order.
func (s *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("stats")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats := s.svc.Stats()
	years := make([]YearSummaryResponse, 0, len(stats))
	for _, year := range stats.Years() {
		yr := YearSummaryResponse{
			Year:  year,
			Total: stats.YearTotal(year),
		}
		for _, month := range stats.MonthsOf(year) {
			b := stats.Bucket(year, month)
			yr.Months = append(yr.Months, MonthSummaryResponse{
				Month:    month.String(),
				Bookings: b.Bookings,
				Nights:   b.Nights,
				Revenue:  b.Revenue,
			})
		}
		years = append(years, yr)
	}

	writeJSON(w, http.StatusOK, map[string]any{"years": years})
}

// CustomerHistoryResponse is the per-phone summary.
type CustomerHistoryResponse struct {
	Phone          string `json:"phone"`
	TotalBookings  int    `json:"total_bookings"`
	TotalNights    int    `json:"total_nights"`
	RepeatCustomer bool   `json:"repeat_customer"`
}

// handleCustomerHistory serves GET /api/customers/{phone}/history?exclude=.
func (s *HTTPServer) handleCustomerHistory(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("customer_history")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	const prefix = "/api/customers/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	phone, found := strings.CutSuffix(rest, "/history")
	if !found || phone == "" {
		writeError(w, http.StatusBadRequest, "expected /api/customers/{phone}/history")
		return
	}

	excludeID := r.URL.Query().Get("exclude")
	history := s.svc.History(phone, excludeID)

	writeJSON(w, http.StatusOK, CustomerHistoryResponse{
		Phone:          phone,
		TotalBookings:  history.TotalBookings,
		TotalNights:    history.TotalNights,
		RepeatCustomer: history.TotalBookings > 0,
	})
}
