// Package daterange computes the inclusive UTC windows used by the month
// filter and the sales dashboard.
package daterange

import "time"

// Month returns the inclusive bounds of a calendar month: the first instant of
// the month and 23:59:59.999 UTC on its last day. The last day is day 0 of the
// following month, so month overflow (13) is never produced.
func Month(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 999000000, time.UTC)
	return start, end
}

// CurrentMonth returns the bounds of the month containing now, in UTC.
func CurrentMonth(now time.Time) (time.Time, time.Time) {
	utc := now.UTC()
	return Month(utc.Year(), int(utc.Month()))
}

// Year returns the inclusive bounds of a calendar year:
// Jan 1 00:00:00.000 UTC through Dec 31 23:59:59.999 UTC.
func Year(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 999000000, time.UTC)
	return start, end
}
