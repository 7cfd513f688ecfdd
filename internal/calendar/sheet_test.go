package calendar

import (
	"testing"
	"time"
	_ "time/tzdata"

	"datepick/internal/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildShapeForEveryMonthAndFirstDay(t *testing.T) {
	locs := []*time.Location{time.UTC}
	for _, name := range []string{"America/New_York", "America/Sao_Paulo"} {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)
		locs = append(locs, loc)
	}
	for _, loc := range locs {
		for _, year := range []int{2015, 2018, 2023, 2024, 2026} {
			for m := time.January; m <= time.December; m++ {
				for firstDay := 0; firstDay < 7; firstDay++ {
					viewed := time.Date(year, m, 17, 15, 4, 5, 0, loc)
					sheet := Build(viewed, firstDay)

					require.NotEmpty(t, sheet)
					require.LessOrEqual(t, len(sheet), MaxWeeks, "%s %d-%02d first=%d", loc, year, m, firstDay)
					require.GreaterOrEqual(t, len(sheet), 4)

					days := sheet.Days()
					require.Zero(t, len(days)%7)
					assert.Equal(t, time.Weekday(firstDay), days[0].Weekday(), "%d-%02d first=%d", year, m, firstDay)

					inMonth := 0
					for i, d := range days {
						y, mo, dd := d.Date()
						assert.True(t, dateutil.StartOfDay(y, mo, dd, loc).Equal(d), "day start %v", d)
						if mo == m && y == year {
							inMonth++
						}
						if i > 0 {
							py, pm, pd := days[i-1].Date()
							wy, wm, wd := time.Date(py, pm, pd+1, 0, 0, 0, 0, time.UTC).Date()
							require.True(t, wy == y && wm == mo && wd == dd, "contiguous at %d: %v -> %v", i, days[i-1], d)
						}
					}
					assert.Equal(t, dateutil.DaysInMonth(year, m), inMonth, "every day exactly once")

					// Minimal: neither the first nor the last row lies fully outside the month.
					first, last := sheet[0], sheet[len(sheet)-1]
					assert.True(t, weekTouches(first, year, m), "leading row inside month")
					assert.True(t, weekTouches(last, year, m), "trailing row inside month")
				}
			}
		}
	}
}

func weekTouches(w Week, year int, m time.Month) bool {
	for _, d := range w {
		if d.Year() == year && d.Month() == m {
			return true
		}
	}
	return false
}

func TestBuildKnownSheets(t *testing.T) {
	// February 2015 starts on a Sunday and has 28 days: exactly four rows.
	sheet := Build(day(2015, 2, 10), 0)
	require.Len(t, sheet, 4)
	assert.Equal(t, day(2015, 2, 1), sheet[0][0])
	assert.Equal(t, day(2015, 2, 28), sheet[3][6])

	// January 2024 with Sunday first: Dec 31 .. Feb 3.
	sheet = Build(day(2024, 1, 1), 0)
	require.Len(t, sheet, 5)
	assert.Equal(t, day(2023, 12, 31), sheet[0][0])
	assert.Equal(t, day(2024, 2, 3), sheet[4][6])

	// September 2024 starts on a Sunday; with Monday first the row must step back a week.
	sheet = Build(day(2024, 9, 1), 1)
	assert.Equal(t, day(2024, 8, 26), sheet[0][0])
	assert.Equal(t, day(2024, 9, 1), sheet[0][6])
	require.Len(t, sheet, 6)

	// March 2024 starts on a Friday, 31 days, Saturday first: six rows.
	sheet = Build(day(2024, 3, 1), 6)
	require.Len(t, sheet, 6)
	assert.Equal(t, day(2024, 2, 24), sheet[0][0])
	assert.Equal(t, day(2024, 4, 5), sheet[5][6])
}

func TestBuildIgnoresTimeOfDay(t *testing.T) {
	a := Build(time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC), 1)
	b := Build(day(2024, 5, 1), 1)
	assert.Equal(t, a, b)
}

func TestBuildSkippedMidnight(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	seen := map[int]int{}
	for _, d := range Build(time.Date(2018, 11, 10, 12, 0, 0, 0, sp), 0).Days() {
		if d.Month() == time.November {
			seen[d.Day()]++
		}
	}
	for dd := 1; dd <= 30; dd++ {
		assert.Equal(t, 1, seen[dd], "Nov %d", dd)
	}
}

func TestLocate(t *testing.T) {
	sheet := Build(day(2024, 1, 1), 0)
	r, c, ok := sheet.Locate(time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)

	_, _, ok = sheet.Locate(day(2024, 3, 1))
	assert.False(t, ok)
}

func TestDayLabels(t *testing.T) {
	labels := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	assert.Equal(t, labels, DayLabels(labels, 0))
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, DayLabels(labels, 1))
	assert.Equal(t, []string{"Sa", "Su", "Mo", "Tu", "We", "Th", "Fr"}, DayLabels(labels, 6))
	assert.Equal(t, "Su", labels[0], "input untouched")
	assert.Nil(t, DayLabels(nil, 3))
}

func TestTitle(t *testing.T) {
	names := []string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
	assert.Equal(t, "März 2024", Title(names, day(2024, 3, 9)))
	assert.Equal(t, "March 2024", Title(nil, day(2024, 3, 9)))
}
