package booking

import "villabook/internal/models"

// CustomerHistoryFor sums bookings and nights for a phone number across the
// given list. excludeID leaves one booking out, so a booking's own display
// never counts itself.
func CustomerHistoryFor(phone string, bookings []models.Booking, excludeID string) models.CustomerHistory {
	var history models.CustomerHistory
	for i := range bookings {
		b := &bookings[i]
		if b.CustomerPhone != phone {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		history.TotalBookings++
		history.TotalNights += b.Nights()
	}
	return history
}

// IsRepeatCustomer reports whether the phone number has at least one booking
// besides the excluded one.
func IsRepeatCustomer(phone string, bookings []models.Booking, excludeID string) bool {
	return CustomerHistoryFor(phone, bookings, excludeID).TotalBookings > 0
}
