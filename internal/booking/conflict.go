package booking

import (
	"time"

	"villabook/internal/models"
)

// HasConflict reports whether [newCheckIn, newCheckOut) overlaps any existing
// booking's stay interval. excludeID skips one booking, used when editing a
// booking so it does not conflict with itself. Back-to-back stays, where one
// checkout equals another checkin, are not conflicts.
func HasConflict(newCheckIn, newCheckOut time.Time, existing []models.Booking, excludeID string) bool {
	for i := range existing {
		if excludeID != "" && existing[i].ID == excludeID {
			continue
		}
		if existing[i].StayOverlaps(newCheckIn, newCheckOut) {
			return true
		}
	}
	return false
}
