// Package calendar builds month sheets: the padded week grid a picker shows
// for one viewed month.
package calendar

import (
	"strconv"
	"time"

	"datepick/internal/dateutil"
)

// MaxWeeks bounds every sheet; a 31-day month starting on the last day of the
// week needs six rows.
const MaxWeeks = 6

// Week is one sheet row, always seven consecutive days.
type Week [dateutil.DaysInWeek]time.Time

// Sheet is the ordered list of weeks covering a month.
type Sheet []Week

// Build returns the minimum run of whole weeks, starting on firstDay, that
// covers the month of viewed. Days are day starts in viewed's location.
func Build(viewed time.Time, firstDay int) Sheet {
	firstDay = ((firstDay % 7) + 7) % 7

	anchor := dateutil.FirstOfMonth(viewed)
	y, m, _ := anchor.Date()
	loc := anchor.Location()

	anchorWeekday := int(anchor.Weekday())
	start := 1 - anchorWeekday + firstDay
	if anchorWeekday < firstDay {
		start -= dateutil.DaysInWeek
	}

	var (
		sheet     Sheet
		week      Week
		filled    int
		started   bool
		completed bool
	)
	for offset := start; ; offset++ {
		week[filled] = dateutil.StartOfDay(y, m, offset, loc)
		filled++

		next := dateutil.StartOfDay(y, m, offset+1, loc)
		if dateutil.SameMonth(&next, &anchor) {
			started = true
		} else if started {
			completed = true
		}

		if filled < dateutil.DaysInWeek {
			continue
		}
		sheet = append(sheet, week)
		week = Week{}
		filled = 0
		if completed || len(sheet) == MaxWeeks {
			return sheet
		}
	}
}

// Days flattens the sheet into consecutive dates.
func (s Sheet) Days() []time.Time {
	out := make([]time.Time, 0, len(s)*dateutil.DaysInWeek)
	for _, w := range s {
		out = append(out, w[:]...)
	}
	return out
}

// Locate returns the row and column of d, by calendar day.
func (s Sheet) Locate(d time.Time) (row, col int, ok bool) {
	for r, w := range s {
		for c := range w {
			if dateutil.SameDay(&w[c], &d) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// DayLabels rotates weekday labels (index 0 = Sunday) so that the first label
// is firstDay.
func DayLabels(labels []string, firstDay int) []string {
	n := len(labels)
	if n == 0 {
		return nil
	}
	firstDay = ((firstDay % n) + n) % n
	out := make([]string, 0, n)
	out = append(out, labels[firstDay:]...)
	return append(out, labels[:firstDay]...)
}

// Title is the sheet header, e.g. "January 2024".
func Title(monthNames []string, viewed time.Time) string {
	idx := int(viewed.Month()) - 1
	name := viewed.Month().String()
	if idx < len(monthNames) {
		name = monthNames[idx]
	}
	return name + " " + strconv.Itoa(viewed.Year())
}
