// Package dates handles the ISO "2006-01-02" calendar-date strings used
// throughout trip itineraries. Dates stay strings at rest; parsing happens
// only for calendar arithmetic, always in the local calendar via AddDate so
// day enumeration never drifts across DST boundaries.
package dates

import "time"

const Layout = "2006-01-02"

// Valid reports whether s is a well-formed calendar date.
func Valid(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

// AddDays advances a date by n calendar days.
func AddDays(day string, n int) string {
	t, err := time.Parse(Layout, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(Layout)
}

// Enumerate returns every calendar date from start to end inclusive.
// An inverted range yields nil.
func Enumerate(start, end string) []string {
	st, err := time.Parse(Layout, start)
	if err != nil {
		return nil
	}
	en, err := time.Parse(Layout, end)
	if err != nil {
		return nil
	}
	if en.Before(st) {
		return nil
	}
	var days []string
	for d := st; !d.After(en); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(Layout))
	}
	return days
}
