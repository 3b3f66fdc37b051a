package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/bookings", validRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	var created BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(t, srv, http.MethodGet, "/api/calendar?year=2025&month=7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, "July", resp.Month)

	// Full-week grid: Sunday June 29 through Saturday August 2.
	require.NotEmpty(t, resp.Cells)
	assert.Equal(t, "2025-06-29", resp.Cells[0].Date)
	assert.Equal(t, "2025-08-02", resp.Cells[len(resp.Cells)-1].Date)
	assert.Equal(t, 0, len(resp.Cells)%7)
	assert.False(t, resp.Cells[0].InMonth)

	cells := make(map[string]CalendarCell, len(resp.Cells))
	for _, c := range resp.Cells {
		cells[c.Date] = c
	}

	assert.True(t, cells["2025-07-01"].Booked)
	assert.True(t, cells["2025-07-01"].IsCheckIn)
	assert.True(t, cells["2025-07-04"].Booked, "checkout day renders as booked")
	assert.True(t, cells["2025-07-04"].IsCheckOut)
	assert.Equal(t, created.ID, cells["2025-07-02"].BookingID)
	assert.False(t, cells["2025-07-05"].Booked)
}

func TestCalendar_BadParams(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/calendar?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, srv, http.MethodGet, "/api/calendar?year=twenty", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats(t *testing.T) {
	srv := newTestServer(t)

	first := validRequest() // July 2025, 3 nights, 9000
	w := do(t, srv, http.MethodPost, "/api/bookings", first)
	require.Equal(t, http.StatusCreated, w.Code)

	second := validRequest()
	second["customer_phone"] = "9000011111"
	second["check_in"] = "2024-12-30"
	second["check_out"] = "2025-01-02"
	second["total_amount"] = 8000
	second["advance_amount"] = 0
	w = do(t, srv, http.MethodPost, "/api/bookings", second)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, srv, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Years []YearSummaryResponse `json:"years"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Years, 2)

	assert.Equal(t, 2025, resp.Years[0].Year, "years descending")
	assert.Equal(t, 2024, resp.Years[1].Year)

	require.Len(t, resp.Years[0].Months, 1)
	assert.Equal(t, "July", resp.Years[0].Months[0].Month)
	assert.Equal(t, int64(9000), resp.Years[0].Months[0].Revenue)

	assert.Equal(t, "December", resp.Years[1].Months[0].Month)
	assert.Equal(t, 3, resp.Years[1].Months[0].Nights)
}

func TestCustomerHistory(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/bookings", validRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	var created BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(t, srv, http.MethodGet, "/api/customers/9876543210/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CustomerHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalBookings)
	assert.Equal(t, 3, resp.TotalNights)
	assert.True(t, resp.RepeatCustomer)

	// Excluding the booking's own id empties the history.
	w = do(t, srv, http.MethodGet, "/api/customers/9876543210/history?exclude="+created.ID, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.TotalBookings)
	assert.False(t, resp.RepeatCustomer)

	w = do(t, srv, http.MethodGet, "/api/customers/9876543210", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing /history suffix")
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/bookings", validRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, srv, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
