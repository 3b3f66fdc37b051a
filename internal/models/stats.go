package models

import (
	"sort"
	"time"
)

// Stats maps year -> month -> summary. Keys are concrete (int, time.Month)
// pairs rather than formatted strings so chronological ordering never depends
// on month-name lookups.
type Stats map[int]map[time.Month]MonthlySummary

// Bucket returns the summary for (year, month), zero-valued when absent.
func (s Stats) Bucket(year int, month time.Month) MonthlySummary {
	return s[year][month]
}

// Accumulate adds one booking's contribution to its bucket.
func (s Stats) Accumulate(year int, month time.Month, nights int, revenue int64) {
	months, ok := s[year]
	if !ok {
		months = make(map[time.Month]MonthlySummary)
		s[year] = months
	}
	b := months[month]
	b.Bookings++
	b.Nights += nights
	b.Revenue += revenue
	months[month] = b
}

// Years returns the years present, most recent first.
func (s Stats) Years() []int {
	years := make([]int, 0, len(s))
	for y := range s {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// MonthsOf returns the months present for a year in calendar order.
func (s Stats) MonthsOf(year int) []time.Month {
	months := make([]time.Month, 0, len(s[year]))
	for m := range s[year] {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

// YearTotal sums every monthly bucket of a year.
func (s Stats) YearTotal(year int) MonthlySummary {
	var total MonthlySummary
	for _, b := range s[year] {
		total.Bookings += b.Bookings
		total.Nights += b.Nights
		total.Revenue += b.Revenue
	}
	return total
}
