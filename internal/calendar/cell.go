package calendar

import (
	"time"

	"datepick/internal/dateutil"
)

// Cell is a sheet day with its presentation flags. Flags are derived from a
// Context each time cells are requested and are never stored.
type Cell struct {
	Date       time.Time `json:"date"`
	Weekend    bool      `json:"weekend"`
	Today      bool      `json:"today"`
	Inactive   bool      `json:"inactive"`
	OutOfRange bool      `json:"outOfRange"`
	Selected   bool      `json:"selected"`
}

// Context is the state cells are classified against.
type Context struct {
	Viewed   time.Time
	Selected *time.Time
	Today    time.Time
	Bounds   dateutil.Bounds
}

// Classify derives the flags for a single day.
func Classify(d time.Time, ctx Context) Cell {
	return Cell{
		Date:       d,
		Weekend:    dateutil.IsWeekend(d),
		Today:      dateutil.SameDay(&ctx.Today, &d),
		Inactive:   !dateutil.SameMonth(&ctx.Viewed, &d),
		OutOfRange: !ctx.Bounds.Contains(&d),
		Selected:   dateutil.SameDay(ctx.Selected, &d),
	}
}

// Cells classifies every day of the sheet, row by row.
func (s Sheet) Cells(ctx Context) [][]Cell {
	out := make([][]Cell, len(s))
	for r, w := range s {
		row := make([]Cell, len(w))
		for c, d := range w {
			row[c] = Classify(d, ctx)
		}
		out[r] = row
	}
	return out
}
