// Package timefield implements the editable time-of-day components of a
// picker (hours, minutes and the optional AM/PM suffix) and the range guard
// that flags increments leaving the configured window.
package timefield

import "time"

// Kind tags a time field.
type Kind int

const (
	Hours Kind = iota
	Minutes
	Suffix
)

func (k Kind) String() string {
	switch k {
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Suffix:
		return "suffix"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "hours", "hour", "h":
		return Hours, true
	case "minutes", "minute", "m":
		return Minutes, true
	case "suffix", "ampm", "meridiem":
		return Suffix, true
	}
	return 0, false
}

// Selection is the owner of the selected value. Fields read and write through
// it; they never keep a copy.
type Selection interface {
	Selected() (time.Time, bool)
	SetSelected(time.Time)
	SelectNow()
}

// Field is one editable component. Get returns 0 and Set does nothing while
// the selection is empty.
type Field interface {
	Kind() Kind
	Get() int
	Set(v int)
}

type hoursField struct{ sel Selection }

func (hoursField) Kind() Kind { return Hours }

func (f hoursField) Get() int {
	t, ok := f.sel.Selected()
	if !ok {
		return 0
	}
	return t.Hour()
}

// Set assigns the hour; values outside 0-23 carry into the neighbouring day.
func (f hoursField) Set(v int) {
	t, ok := f.sel.Selected()
	if !ok {
		return
	}
	f.sel.SetSelected(withClock(t, v, t.Minute()))
}

type minutesField struct{ sel Selection }

func (minutesField) Kind() Kind { return Minutes }

func (f minutesField) Get() int {
	t, ok := f.sel.Selected()
	if !ok {
		return 0
	}
	return t.Minute()
}

// Set assigns the minute; values outside 0-59 carry into the hour.
func (f minutesField) Set(v int) {
	t, ok := f.sel.Selected()
	if !ok {
		return
	}
	f.sel.SetSelected(withClock(t, t.Hour(), v))
}

type suffixField struct{ sel Selection }

func (suffixField) Kind() Kind { return Suffix }

// Get is 0 for AM and 1 for PM.
func (f suffixField) Get() int {
	t, ok := f.sel.Selected()
	if ok && t.Hour() < 12 {
		return 0
	}
	return 1
}

// Set ignores v and always flips AM/PM.
func (f suffixField) Set(int) {
	t, ok := f.sel.Selected()
	if !ok {
		return
	}
	f.sel.SetSelected(toggleMeridiem(t))
}

func withClock(t time.Time, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, minute, t.Second(), t.Nanosecond(), t.Location())
}

func toggleMeridiem(t time.Time) time.Time {
	h := t.Hour()
	if h >= 12 {
		h -= 12
	} else {
		h += 12
	}
	return withClock(t, h, t.Minute())
}
