package utils

import "time"

const tripDateLayout = "2006-01-02"

// TripDayCount returns the whole-day difference between two "YYYY-MM-DD"
// strings. Unparseable or reversed inputs fall back to a single day so the
// derived query always embeds a real number.
func TripDayCount(start, end string) int {
	s, errStart := time.Parse(tripDateLayout, start)
	e, errEnd := time.Parse(tripDateLayout, end)
	if errStart != nil || errEnd != nil {
		return 1
	}

	days := int(e.Sub(s).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
