// Package booking implements the property-booking domain logic: conflict
// detection over stay intervals, customer-history aggregation, free-text
// search, and time-bucketed statistics.
package booking

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"villabook/internal/events"
	"villabook/internal/metrics"
	"villabook/internal/models"
	"villabook/internal/repository"
)

// Service wires the domain operations to the repository and event bus.
// mu serializes the mutating operations so a conflict check and the mutation
// it guards form one critical section; two concurrent creates with
// overlapping stays cannot both slip past HasConflict.
type Service struct {
	repo   *repository.Repository
	bus    *events.EventBus
	logger *zerolog.Logger
	mu     sync.Mutex
}

// NewService constructs the booking service. bus may be nil when no
// subscribers are wired.
func NewService(repo *repository.Repository, bus *events.EventBus, logger *zerolog.Logger) *Service {
	return &Service{repo: repo, bus: bus, logger: logger}
}

// TryAdd validates the candidate, checks for date conflicts and appends the
// booking in one logical operation, so a conflict can never slip in between
// the check and the insert. Returns FieldErrors for malformed input and
// ErrConflict for overlapping dates.
func (s *Service) TryAdd(p Params) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := Validate(p); errs != nil {
		metrics.IncValidationFailed()
		return models.Booking{}, errs
	}

	existing := s.repo.List()
	if HasConflict(p.CheckIn, p.CheckOut, existing, "") {
		metrics.IncConflictRejected()
		s.logger.Info().
			Time("check_in", p.CheckIn).
			Time("check_out", p.CheckOut).
			Msg("booking rejected: date conflict")
		return models.Booking{}, ErrConflict
	}

	id := GenerateBookingID()
	for s.idTaken(existing, id) {
		id = GenerateBookingID()
	}

	b := models.Booking{
		ID:            id,
		CustomerName:  trimmed(p.CustomerName),
		CustomerPhone: trimmed(p.CustomerPhone),
		CheckIn:       p.CheckIn,
		CheckOut:      p.CheckOut,
		GuestCount:    p.GuestCount,
		BookingType:   p.BookingType,
		TotalAmount:   p.TotalAmount,
		AdvanceAmount: p.AdvanceAmount,
		BalanceAmount: p.TotalAmount - p.AdvanceAmount,
		CreatedAt:     time.Now(),
	}

	s.repo.Add(b)
	metrics.IncBookingCreated(string(b.BookingType))
	s.publish(events.TypeBookingCreated, b)

	s.logger.Info().
		Str("id", b.ID).
		Str("phone", b.CustomerPhone).
		Int("nights", b.Nights()).
		Msg("booking created")
	return b, nil
}

// Update re-validates and conflict-checks the new dates, excluding the
// booking itself, then replaces it. The balance is re-derived since the
// totals may change.
func (s *Service) Update(id string, p Params) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.repo.Get(id)
	if !ok {
		return models.Booking{}, ErrNotFound
	}

	if errs := Validate(p); errs != nil {
		metrics.IncValidationFailed()
		return models.Booking{}, errs
	}

	if HasConflict(p.CheckIn, p.CheckOut, s.repo.List(), id) {
		metrics.IncConflictRejected()
		return models.Booking{}, ErrConflict
	}

	b := models.Booking{
		ID:            current.ID,
		CustomerName:  trimmed(p.CustomerName),
		CustomerPhone: trimmed(p.CustomerPhone),
		CheckIn:       p.CheckIn,
		CheckOut:      p.CheckOut,
		GuestCount:    p.GuestCount,
		BookingType:   p.BookingType,
		TotalAmount:   p.TotalAmount,
		AdvanceAmount: p.AdvanceAmount,
		BalanceAmount: p.TotalAmount - p.AdvanceAmount,
		CreatedAt:     current.CreatedAt,
	}

	s.repo.Update(id, b)
	s.publish(events.TypeBookingUpdated, b)
	return b, nil
}

// Remove deletes a booking by id.
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.repo.Get(id)
	if !ok {
		return ErrNotFound
	}
	s.repo.Remove(id)
	metrics.IncBookingDeleted()
	s.publish(events.TypeBookingDeleted, b)
	return nil
}

// Get returns a stored booking.
func (s *Service) Get(id string) (models.Booking, error) {
	b, ok := s.repo.Get(id)
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	return b, nil
}

// List returns all bookings in insertion order.
func (s *Service) List() []models.Booking {
	return s.repo.List()
}

// Search runs the free-text filter over the current snapshot.
func (s *Service) Search(query string) []models.Booking {
	metrics.IncSearch()
	return Search(s.repo.List(), query)
}

// Stats aggregates the current snapshot into (year, month) buckets.
func (s *Service) Stats() models.Stats {
	return AggregateStats(s.repo.List())
}

// History returns the customer history for a phone number, optionally
// excluding one booking.
func (s *Service) History(phone, excludeID string) models.CustomerHistory {
	return CustomerHistoryFor(phone, s.repo.List(), excludeID)
}

// DetailsText renders the clipboard summary for a booking, with its own
// record excluded from the repeat-customer history.
func (s *Service) DetailsText(id string) (string, error) {
	b, ok := s.repo.Get(id)
	if !ok {
		return "", ErrNotFound
	}
	history := CustomerHistoryFor(b.CustomerPhone, s.repo.List(), b.ID)
	return Details(b, history), nil
}

func (s *Service) idTaken(bookings []models.Booking, id string) bool {
	for i := range bookings {
		if bookings[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Service) publish(eventType string, b models.Booking) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{Type: eventType, Booking: b})
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
