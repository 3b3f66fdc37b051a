package api

import (
	"net/http"
	"strconv"
	"time"

	"villabook/internal/dateutil"
	"villabook/internal/metrics"
	"villabook/internal/models"
)

// CalendarCell is one day of the month grid.
type CalendarCell struct {
	Date       string `json:"date"`
	InMonth    bool   `json:"in_month"`
	Today      bool   `json:"today"`
	Booked     bool   `json:"booked"`
	BookingID  string `json:"booking_id,omitempty"`
	IsCheckIn  bool   `json:"is_check_in,omitempty"`
	IsCheckOut bool   `json:"is_check_out,omitempty"`
}

// CalendarResponse is the full-week grid for one month.
type CalendarResponse struct {
	Year  int            `json:"year"`
	Month string         `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// handleCalendar serves GET /api/calendar?year=YYYY&month=M. Defaults to the
// current month.
func (s *HTTPServer) handleCalendar(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("calendar")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "invalid month; expected 1-12")
			return
		}
		month = time.Month(m)
	}

	bookings := s.svc.List()
	cells := make([]CalendarCell, 0, 42)
	for _, d := range dateutil.CalendarDates(year, month) {
		cell := CalendarCell{
			Date:    d.Format(dateutil.FormatISO),
			InMonth: d.Month() == month,
			Today:   dateutil.IsToday(d),
		}
		if b := bookingCovering(bookings, d); b != nil {
			cell.Booked = true
			cell.BookingID = b.ID
			cell.IsCheckIn = dateutil.SameDay(d, b.CheckIn)
			cell.IsCheckOut = dateutil.SameDay(d, b.CheckOut)
		}
		cells = append(cells, cell)
	}

	writeJSON(w, http.StatusOK, CalendarResponse{
		Year:  year,
		Month: month.String(),
		Cells: cells,
	})
}

func bookingCovering(bookings []models.Booking, d time.Time) *models.Booking {
	for i := range bookings {
		if bookings[i].ContainsDate(d) {
			return &bookings[i]
		}
	}
	return nil
}
