// Package api exposes the booking tracker over a local HTTP interface. It
// stands in for the form and display collaborators: it converts wire payloads
// to typed fields and renders the derived views, while every rule lives in
// the booking service.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"villabook/internal/booking"
)

// HTTPServer serves the local booking API.
type HTTPServer struct {
	svc    *booking.Service
	server *http.Server
	log    *zerolog.Logger
}

// NewHTTPServer wires the routes and returns a server listening on port.
func NewHTTPServer(port int, svc *booking.Service, logger *zerolog.Logger) *HTTPServer {
	s := &HTTPServer{svc: svc, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookings", s.handleBookings)
	mux.HandleFunc("/api/bookings/", s.handleBookingByID)
	mux.HandleFunc("/api/calendar", s.handleCalendar)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/customers/", s.handleCustomerHistory)
	mux.HandleFunc("/api/export", s.handleExport)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	return s
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *HTTPServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.server.Shutdown(ctxShutdown)
	}()

	s.log.Info().Str("addr", s.server.Addr).Msg("booking API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func parseWireDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format; expected YYYY-MM-DD", field)
	}
	return d, nil
}
