package models

import (
	"time"

	"villabook/internal/dateutil"
)

// BookingType classifies a stay.
type BookingType string

const (
	TypeFamily    BookingType = "family"
	TypeBachelors BookingType = "bachelors"
)

// Valid reports whether the type is one of the known values.
func (t BookingType) Valid() bool {
	return t == TypeFamily || t == TypeBachelors
}

// Label returns the display name for the type.
func (t BookingType) Label() string {
	if t == TypeBachelors {
		return "Bachelor Party"
	}
	return "Family Stay"
}

// Booking represents one stay at the property. Immutable once created except
// through an explicit repository update.
type Booking struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"` // exactly 10 digits, kept as string
	CheckIn       time.Time   `json:"check_in"`
	CheckOut      time.Time   `json:"check_out"`
	GuestCount    int         `json:"guest_count"`
	BookingType   BookingType `json:"booking_type"`
	TotalAmount   int64       `json:"total_amount"`
	AdvanceAmount int64       `json:"advance_amount"`
	// BalanceAmount is derived at creation time and stored redundantly; it is
	// not recomputed if the totals are edited later.
	BalanceAmount int64     `json:"balance_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// Nights returns the length of the stay in whole nights.
func (b *Booking) Nights() int {
	return dateutil.CalculateNights(b.CheckIn, b.CheckOut)
}

// StayOverlaps checks the booking's stay interval against [start, end).
// Half-open semantics: a checkout equal to another checkin is not an overlap.
func (b *Booking) StayOverlaps(start, end time.Time) bool {
	s := dateutil.DayOf(start)
	e := dateutil.DayOf(end)
	return s.Before(dateutil.DayOf(b.CheckOut)) && e.After(dateutil.DayOf(b.CheckIn))
}

// ContainsDate reports whether the stay covers the given calendar day,
// checkout day included. Used to render calendar cells.
func (b *Booking) ContainsDate(date time.Time) bool {
	return dateutil.IsDateInRange(date, b.CheckIn, b.CheckOut)
}

// CustomerHistory is the derived per-phone booking summary.
type CustomerHistory struct {
	TotalBookings int `json:"total_bookings"`
	TotalNights   int `json:"total_nights"`
}

// MonthlySummary is one (year, month) aggregation bucket.
type MonthlySummary struct {
	Bookings int   `json:"bookings"`
	Nights   int   `json:"nights"`
	Revenue  int64 `json:"revenue"`
}
