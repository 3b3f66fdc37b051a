package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"villabook/internal/models"
)

func TestCustomerHistoryFor(t *testing.T) {
	phone := "9876543210"
	other := "9000011111"

	first := stay("BK00000101", day(2025, time.March, 1), day(2025, time.March, 4)) // 3 nights
	first.CustomerPhone = phone
	second := stay("BK00000202", day(2025, time.April, 10), day(2025, time.April, 12)) // 2 nights
	second.CustomerPhone = phone
	unrelated := stay("BK00000303", day(2025, time.May, 1), day(2025, time.May, 2))
	unrelated.CustomerPhone = other

	bookings := []models.Booking{first, second, unrelated}

	t.Run("SumsMatchingPhone", func(t *testing.T) {
		h := CustomerHistoryFor(phone, bookings, "")
		assert.Equal(t, 2, h.TotalBookings)
		assert.Equal(t, 5, h.TotalNights)
	})

	t.Run("NeverCountsExcludedBooking", func(t *testing.T) {
		h := CustomerHistoryFor(phone, bookings, first.ID)
		assert.Equal(t, 1, h.TotalBookings)
		assert.Equal(t, 2, h.TotalNights)
	})

	t.Run("UnknownPhone", func(t *testing.T) {
		h := CustomerHistoryFor("0000000000", bookings, "")
		assert.Zero(t, h.TotalBookings)
		assert.Zero(t, h.TotalNights)
	})
}

func TestIsRepeatCustomer(t *testing.T) {
	phone := "9876543210"
	only := stay("BK00000101", day(2025, time.March, 1), day(2025, time.March, 4))
	only.CustomerPhone = phone
	bookings := []models.Booking{only}

	// At creation time no booking exists yet for the candidate, so any prior
	// booking makes the guest a repeat customer.
	assert.True(t, IsRepeatCustomer(phone, bookings, ""))

	// At display time the booking excludes itself; a single booking is not a
	// repeat customer.
	assert.False(t, IsRepeatCustomer(phone, bookings, only.ID))

	assert.False(t, IsRepeatCustomer("0000000000", bookings, ""))
}
