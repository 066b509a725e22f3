// Package period holds the calendar arithmetic used by availability and peak rates.
//
// A calendar date is a time.Time at midnight UTC. Dates coming from requests, the
// database or the clock are normalised with Day so that equality and ordering
// never depend on a zone offset.
package period

import (
	"iter"
	"time"

	"stayhub/shared/constant"
	"stayhub/shared/timezone"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

// IsValidCalendarDate reports whether year and month are inside the supported calendar.
func IsValidCalendarDate(year, month int) bool {
	return year >= MinYear && year <= MaxYear && month >= 1 && month <= 12
}

// DaysInMonth yields every day of the month in ascending order.
// An invalid year or month yields nothing. The sequence can be ranged over repeatedly.
func DaysInMonth(year, month int) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if !IsValidCalendarDate(year, month) {
			return
		}

		first, last := MonthBounds(year, month)

		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}

// MonthBounds returns the first and last day of the month.
func MonthBounds(year, month int) (first, last time.Time) {
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)

	return first, last
}

// RangesOverlap reports whether [aStart, aEnd] and [bStart, bEnd] share at least one day.
// Both bounds are inclusive.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Contains reports whether day lies in the inclusive range [start, end].
func Contains(start, end, day time.Time) bool {
	return RangesOverlap(start, end, day, day)
}

// Day truncates t to its calendar date at midnight UTC, keeping t's own year, month and day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar date in the application timezone.
func Today() time.Time {
	return Day(timezone.Now())
}

// ParseDate parses a YYYY-MM-DD calendar date. Impossible dates such as 2025-02-30 are rejected.
func ParseDate(value string) (time.Time, bool) {
	day, err := time.Parse(constant.DateFormat, value)
	if err != nil || !IsValidCalendarDate(day.Year(), int(day.Month())) {
		return time.Time{}, false
	}

	return day, true
}

// ParseMonth parses YYYY-MM. ok is false when the value is malformed or out of range.
func ParseMonth(value string) (year, month int, ok bool) {
	parsed, err := time.Parse(constant.MonthFormat, value)
	if err != nil {
		return 0, 0, false
	}

	year, month = parsed.Year(), int(parsed.Month())
	if !IsValidCalendarDate(year, month) {
		return 0, 0, false
	}

	return year, month, true
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(day time.Time) string {
	return day.Format(constant.DateFormat)
}

// FormatMonth renders YYYY-MM.
func FormatMonth(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format(constant.MonthFormat)
}
