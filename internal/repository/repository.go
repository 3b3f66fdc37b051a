// Package repository keeps the in-memory booking list and writes it through
// to the store on every mutation.
package repository

import (
	"sync"

	"github.com/rs/zerolog"

	"villabook/internal/metrics"
	"villabook/internal/models"
	"villabook/internal/storage"
)

// Repository holds the full ordered booking list. Mutations replace the list
// and persist it wholesale; scale is assumed small enough that deltas are not
// worth their complexity. Safe for concurrent use; each HTTP request runs on
// its own goroutine.
type Repository struct {
	store    storage.Store
	mu       sync.RWMutex
	bookings []models.Booking
	logger   *zerolog.Logger
}

// New loads the current list from the store once. A failed load degrades to
// an empty collection; it is logged, never fatal.
func New(store storage.Store, logger *zerolog.Logger) *Repository {
	bookings, err := store.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load bookings, starting empty")
		bookings = []models.Booking{}
	}

	logger.Info().Int("count", len(bookings)).Msg("bookings loaded")
	return &Repository{
		store:    store,
		bookings: bookings,
		logger:   logger,
	}
}

// List returns a snapshot copy in insertion order.
func (r *Repository) List() []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// Get returns the booking with the given id.
func (r *Repository) Get(id string) (models.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// Add appends the booking and persists the new list.
func (r *Repository) Add(booking models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
	r.persist()
}

// Update replaces the booking with the matching id. Unknown ids are a silent
// no-op, matching the original behavior.
func (r *Repository) Update(id string, booking models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings[i] = booking
			break
		}
	}
	r.persist()
}

// Remove deletes the booking with the matching id and persists.
func (r *Repository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	r.bookings = kept
	r.persist()
}

// Count returns the number of stored bookings.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

// persist writes the full list through to the store. Callers hold mu. Write
// failures are swallowed so the in-memory state stays usable even when
// durability is lost.
func (r *Repository) persist() {
	if err := r.store.Save(r.bookings); err != nil {
		metrics.IncPersistFailure()
		r.logger.Error().Err(err).Msg("failed to persist bookings")
	}
}
