package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/rs/zerolog"

	"villabook/internal/models"
)

const storageSlot = "bookings"

// SQLiteStore keeps the serialized booking list in a single slot row. The
// blob model matches the file store so the two backends are interchangeable.
type SQLiteStore struct {
	db     *sql.DB
	logger *zerolog.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string, logger *zerolog.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	dsn := path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS booking_blobs (
		slot TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	logger.Info().Str("path", path).Msg("sqlite store initialized")
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Save(bookings []models.Booking) error {
	if bookings == nil {
		bookings = []models.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("serialize bookings: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO booking_blobs (slot, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		storageSlot, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() ([]models.Booking, error) {
	var payload string
	err := s.db.QueryRow(
		"SELECT payload FROM booking_blobs WHERE slot = ?", storageSlot,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal([]byte(payload), &bookings); err != nil {
		s.logger.Warn().Err(err).Msg("stored bookings blob is corrupt, starting empty")
		return []models.Booking{}, nil
	}
	return bookings, nil
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM booking_blobs WHERE slot = ?", storageSlot); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
