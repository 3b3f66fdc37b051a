package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"villabook/internal/booking"
	"villabook/internal/dateutil"
	"villabook/internal/metrics"
	"villabook/internal/models"
)

// BookingRequest is the wire form of a candidate booking. Dates use
// YYYY-MM-DD.
type BookingRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	GuestCount    int    `json:"guest_count"`
	BookingType   string `json:"booking_type"`
	TotalAmount   int64  `json:"total_amount"`
	AdvanceAmount int64  `json:"advance_amount"`
}

// BookingResponse mirrors a stored booking with display-friendly dates.
type BookingResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Nights        int    `json:"nights"`
	GuestCount    int    `json:"guest_count"`
	BookingType   string `json:"booking_type"`
	TotalAmount   int64  `json:"total_amount"`
	AdvanceAmount int64  `json:"advance_amount"`
	BalanceAmount int64  `json:"balance_amount"`
	CreatedAt     string `json:"created_at"`
}

func toBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CheckIn:       b.CheckIn.Format(dateutil.FormatISO),
		CheckOut:      b.CheckOut.Format(dateutil.FormatISO),
		Nights:        b.Nights(),
		GuestCount:    b.GuestCount,
		BookingType:   string(b.BookingType),
		TotalAmount:   b.TotalAmount,
		AdvanceAmount: b.AdvanceAmount,
		BalanceAmount: b.BalanceAmount,
		CreatedAt:     b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// handleBookings serves GET /api/bookings?q= and POST /api/bookings.
func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listBookings(w, r)
	case http.MethodPost:
		s.createBooking(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) listBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("list_bookings")

	query := r.URL.Query().Get("q")
	matched := s.svc.Search(query)

	bookings := make([]BookingResponse, 0, len(matched))
	for _, b := range matched {
		bookings = append(bookings, toBookingResponse(b))
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (s *HTTPServer) createBooking(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("create_booking")

	params, ok := s.decodeParams(w, r)
	if !ok {
		return
	}

	b, err := s.svc.TryAdd(params)
	if err != nil {
		s.writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(b))
}

// handleBookingByID serves GET/PUT/DELETE /api/bookings/{id} and
// GET /api/bookings/{id}/details.
func (s *HTTPServer) handleBookingByID(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/bookings/"
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	if rest == "" {
		writeError(w, http.StatusBadRequest, "booking id is required")
		return
	}

	if id, found := strings.CutSuffix(rest, "/details"); found {
		s.bookingDetails(w, r, id)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getBooking(w, rest)
	case http.MethodPut:
		s.updateBooking(w, r, rest)
	case http.MethodDelete:
		s.deleteBooking(w, rest)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) getBooking(w http.ResponseWriter, id string) {
	metrics.IncHTTP("get_booking")

	b, err := s.svc.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

func (s *HTTPServer) updateBooking(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("update_booking")

	params, ok := s.decodeParams(w, r)
	if !ok {
		return
	}

	b, err := s.svc.Update(id, params)
	if err != nil {
		s.writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

func (s *HTTPServer) deleteBooking(w http.ResponseWriter, id string) {
	metrics.IncHTTP("delete_booking")

	if err := s.svc.Remove(id); err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *HTTPServer) bookingDetails(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncHTTP("booking_details")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	text, err := s.svc.DetailsText(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (s *HTTPServer) decodeParams(w http.ResponseWriter, r *http.Request) (booking.Params, bool) {
	var req BookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return booking.Params{}, false
	}

	params := booking.Params{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		GuestCount:    req.GuestCount,
		BookingType:   models.BookingType(req.BookingType),
		TotalAmount:   req.TotalAmount,
		AdvanceAmount: req.AdvanceAmount,
	}

	// Unparseable dates become zero values; field validation reports them
	// uniformly with the other per-field errors.
	if d, err := parseWireDate(req.CheckIn, "check_in"); err == nil {
		params.CheckIn = d
	}
	if d, err := parseWireDate(req.CheckOut, "check_out"); err == nil {
		params.CheckOut = d
	}
	return params, true
}

func (s *HTTPServer) writeBookingError(w http.ResponseWriter, err error) {
	var fieldErrs booking.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrs})
	case errors.Is(err, booking.ErrConflict):
		writeError(w, http.StatusConflict, "these dates conflict with an existing booking")
	case errors.Is(err, booking.ErrNotFound):
		writeError(w, http.StatusNotFound, "booking not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
