// Package storage holds the persistence collaborators for the booking list.
// Each backend keeps the whole list as one JSON-serialized blob in a single
// named slot; there is no schema versioning and no per-record access.
package storage

import "villabook/internal/models"

// Store persists the full booking list wholesale. Load must return an empty
// list when the slot is missing or holds corrupt data, never an error the
// caller cannot continue from.
type Store interface {
	Save(bookings []models.Booking) error
	Load() ([]models.Booking, error)
	Clear() error
	Close() error
}
