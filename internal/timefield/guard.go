package timefield

import (
	"time"

	"datepick/internal/dateutil"
)

// Guard flags time-field steps that would move the selection outside the
// configured window. It only informs presentation; Set.Next and Set.Prev do
// not consult it.
type Guard struct {
	sel    Selection
	bounds dateutil.Bounds
}

// NewGuard returns a guard over sel's value.
func NewGuard(sel Selection, bounds dateutil.Bounds) *Guard {
	return &Guard{sel: sel, bounds: bounds}
}

// WouldExceedMax reports whether one increment of k leaves the window.
func (g *Guard) WouldExceedMax(k Kind) bool {
	return g.wouldLeave(k, 1)
}

// WouldExceedMin reports whether one decrement of k leaves the window.
func (g *Guard) WouldExceedMin(k Kind) bool {
	return g.wouldLeave(k, -1)
}

func (g *Guard) wouldLeave(k Kind, delta int) bool {
	t, ok := g.sel.Selected()
	if !ok || g.bounds.IsZero() {
		return false
	}
	return !g.bounds.Admits(simulate(t, k, delta))
}

// simulate steps a copy of t the way the fields' Set does, on the wall clock.
func simulate(t time.Time, k Kind, delta int) time.Time {
	switch k {
	case Hours:
		return withClock(t, t.Hour()+delta, t.Minute())
	case Minutes:
		return withClock(t, t.Hour(), t.Minute()+delta)
	case Suffix:
		return toggleMeridiem(t)
	default:
		return t
	}
}
