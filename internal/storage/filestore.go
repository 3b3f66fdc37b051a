package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"villabook/internal/models"
)

// FileStore keeps the booking list in a single JSON file, the direct
// counterpart of the original storage slot.
type FileStore struct {
	path   string
	logger *zerolog.Logger
}

// NewFileStore creates the parent directory if needed.
func NewFileStore(path string, logger *zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Save writes the whole list atomically: serialize to a uuid-suffixed temp
// file next to the target, then rename over it.
func (s *FileStore) Save(bookings []models.Booking) error {
	if bookings == nil {
		bookings = []models.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("serialize bookings: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace bookings file: %w", err)
	}
	return nil
}

// Load returns an empty list when the file is missing or unparseable.
func (s *FileStore) Load() ([]models.Booking, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Booking{}, nil
		}
		return nil, fmt.Errorf("read bookings: %w", err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("bookings file is corrupt, starting empty")
		return []models.Booking{}, nil
	}
	return bookings, nil
}

// Clear removes the slot entirely.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear bookings: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
