// Package calendar provides business-day arithmetic on day-granular UTC
// dates. All functions are pure; weekends are the only non-working days
// (holiday calendars are out of scope).
package calendar

import "time"

// Representable bounds for any computed date. Arithmetic on multi-thousand-
// hour assignments can otherwise run thousands of years out; every derived
// date passes through Clamp.
var (
	MinDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Midnight normalizes a time to UTC midnight of the same calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AddBusinessDays moves n business days forward (or backward for n < 0),
// skipping weekends. Whole weeks are added arithmetically so large n stays
// cheap.
func AddBusinessDays(t time.Time, n int) time.Time {
	t = Midnight(t)
	if n == 0 {
		return t
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	t = t.AddDate(0, 0, (n/5)*7*step)
	for i := 0; i < n%5; i++ {
		t = t.AddDate(0, 0, step)
		for !IsBusinessDay(t) {
			t = t.AddDate(0, 0, step)
		}
	}
	return t
}

// NextBusinessDay returns the first business day strictly after t.
func NextBusinessDay(t time.Time) time.Time {
	return AddBusinessDays(t, 1)
}

// BusinessDaysBetween counts the business-day steps from start to end: 0 when
// the dates are equal, negative when end precedes start. A Monday-to-Friday
// span is 4 steps.
func BusinessDaysBetween(start, end time.Time) int {
	start, end = Midnight(start), Midnight(end)
	if end.Before(start) {
		return -BusinessDaysBetween(end, start)
	}
	n := 0
	for t := start.AddDate(0, 0, 1); !t.After(end); t = t.AddDate(0, 0, 1) {
		if IsBusinessDay(t) {
			n++
		}
	}
	return n
}

// Clamp pulls a date outside [MinDate, MaxDate] to the nearest bound and
// reports whether clamping occurred. Callers log a warning on true; an
// out-of-range date is never an error.
func Clamp(t time.Time) (time.Time, bool) {
	t = Midnight(t)
	if t.Before(MinDate) {
		return MinDate, true
	}
	if t.After(MaxDate) {
		return MaxDate, true
	}
	return t, false
}
