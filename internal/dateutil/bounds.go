package dateutil

import "time"

// Bounds is an optional inclusive [Min, Max] window.
type Bounds struct {
	Min *time.Time
	Max *time.Time
}

// IsZero reports whether no bound is configured.
func (b Bounds) IsZero() bool {
	return b.Min == nil && b.Max == nil
}

// Contains reports whether d lies inside the window at day granularity.
// Both ends are inclusive; a nil d is never contained.
func (b Bounds) Contains(d *time.Time) bool {
	if d == nil {
		return false
	}
	if b.IsZero() {
		return true
	}
	day := Normalize(*d)
	if b.Min != nil && Normalize(b.Min.In(d.Location())).After(day) {
		return false
	}
	if b.Max != nil && Normalize(b.Max.In(d.Location())).Before(day) {
		return false
	}
	return true
}

// Admits reports whether the exact instant t lies inside the window
// (no day normalization).
func (b Bounds) Admits(t time.Time) bool {
	if b.Min != nil && t.Before(*b.Min) {
		return false
	}
	if b.Max != nil && t.After(*b.Max) {
		return false
	}
	return true
}
