// Package dateutil holds pure predicates and transforms on calendar dates.
//
// Optional dates are passed as *time.Time. A nil date is never equal to
// anything (including another nil) and is never within a range.
package dateutil

import "time"

// DaysInWeek is the length of every sheet row.
const DaysInWeek = 7

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay limits d to the days that exist in the month.
func ClampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := DaysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}

// StartOfDay returns the first instant of the given calendar day in loc.
// Out-of-range days normalize the way time.Date does. That instant is
// midnight, except on days where a DST change skips local midnight; there it
// is the transition, so the result never falls on the previous day.
func StartOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	wy, wm, wd := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Date()
	if ty, tm, td := t.Date(); ty == wy && tm == wm && td == wd {
		return t
	}
	if _, end := t.ZoneBounds(); !end.IsZero() {
		if ey, em, ed := end.Date(); ey == wy && em == wm && ed == wd {
			return end
		}
	}
	return time.Date(wy, wm, wd, 1, 0, 0, 0, loc)
}

// Normalize returns the start of d's calendar day in d's location.
func Normalize(d time.Time) time.Time {
	y, m, day := d.Date()
	return StartOfDay(y, m, day, d.Location())
}

// FirstOfMonth returns the start of day 1 of d's month.
func FirstOfMonth(d time.Time) time.Time {
	y, m, _ := d.Date()
	return StartOfDay(y, m, 1, d.Location())
}

// AddMonths moves to day 1 of the month n months away from d, so differing
// month lengths never shift the result.
func AddMonths(d time.Time, n int) time.Time {
	y, m, _ := d.Date()
	return StartOfDay(y, m+time.Month(n), 1, d.Location())
}

// SameDay reports whether both dates fall on the same calendar day, as seen
// from d1's location.
func SameDay(d1, d2 *time.Time) bool {
	if d1 == nil || d2 == nil {
		return false
	}
	y1, m1, dd1 := d1.Date()
	y2, m2, dd2 := d2.In(d1.Location()).Date()
	return y1 == y2 && m1 == m2 && dd1 == dd2
}

// SameMonth reports whether both dates fall in the same month of the same year.
func SameMonth(d1, d2 *time.Time) bool {
	if d1 == nil || d2 == nil {
		return false
	}
	y1, m1, _ := d1.Date()
	y2, m2, _ := d2.In(d1.Location()).Date()
	return y1 == y2 && m1 == m2
}

// IsWeekend reports Saturday or Sunday, independent of the configured first
// day of the week.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Sunday || wd == time.Saturday
}
