package booking

import "villabook/internal/models"

// AggregateStats buckets bookings by the year and month of their check-in
// date, accumulating counts, nights and revenue per bucket. Iteration order
// of the result is up to the caller; models.Stats exposes ordered accessors.
func AggregateStats(bookings []models.Booking) models.Stats {
	stats := make(models.Stats)
	for i := range bookings {
		b := &bookings[i]
		stats.Accumulate(b.CheckIn.Year(), b.CheckIn.Month(), b.Nights(), b.TotalAmount)
	}
	return stats
}
