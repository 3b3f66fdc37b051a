package booking

import (
	"strings"

	"villabook/internal/dateutil"
	"villabook/internal/models"
)

// Search filters bookings by a free-text query. An empty (or all-whitespace)
// query returns the input unchanged. A booking matches when the lowercased
// query is a substring of its name, phone, id, or either stay date rendered
// as DD/MM/YYYY, DD-MM-YYYY, or YYYY-MM-DD. Result order is input order.
func Search(bookings []models.Booking, query string) []models.Booking {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return bookings
	}

	var matched []models.Booking
	for i := range bookings {
		if matchesQuery(&bookings[i], term) {
			matched = append(matched, bookings[i])
		}
	}
	return matched
}

func matchesQuery(b *models.Booking, term string) bool {
	if strings.Contains(strings.ToLower(b.CustomerName), term) {
		return true
	}
	if strings.Contains(b.CustomerPhone, term) {
		return true
	}
	if strings.Contains(strings.ToLower(b.ID), term) {
		return true
	}
	for _, formatted := range dateutil.DateFormats(b.CheckIn) {
		if strings.Contains(formatted, term) {
			return true
		}
	}
	for _, formatted := range dateutil.DateFormats(b.CheckOut) {
		if strings.Contains(formatted, term) {
			return true
		}
	}
	return false
}
