// Package dateutil provides day-granularity date helpers for booking math.
// All comparisons ignore the time-of-day component.
package dateutil

import "time"

// Display formats recognized by free-text search.
const (
	FormatSlash = "02/01/2006" // DD/MM/YYYY
	FormatDash  = "02-01-2006" // DD-MM-YYYY
	FormatISO   = "2006-01-02" // YYYY-MM-DD
)

// DayOf truncates a timestamp to midnight of its calendar day, keeping the
// location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalculateNights returns the number of whole calendar days between check-in
// and check-out. Each side contributes only its calendar date, so timestamps
// carrying different zone offsets still count whole days. Negative when
// checkOut precedes checkIn; ordering must be validated by the caller.
func CalculateNights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

// IsDateInRange reports whether date falls within [start, end] inclusive,
// comparing calendar days only. Used to mark calendar cells as booked.
func IsDateInRange(date, start, end time.Time) bool {
	d := DayOf(date)
	return !d.Before(DayOf(start)) && !d.After(DayOf(end))
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether date is the current calendar day.
func IsToday(date time.Time) bool {
	return SameDay(date, time.Now())
}

// CalendarDates returns the ordered run of days spanning the full weeks that
// cover the given month: from the Sunday on or before the 1st through the
// Saturday on or after the last day. Pure function of (year, month).
func CalendarDates(year int, month time.Month) []time.Time {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	end := lastOfMonth.AddDate(0, 0, int(time.Saturday-lastOfMonth.Weekday()))

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// DateFormats renders a date in every format the search engine matches
// against.
func DateFormats(t time.Time) []string {
	return []string{
		t.Format(FormatSlash),
		t.Format(FormatDash),
		t.Format(FormatISO),
	}
}
