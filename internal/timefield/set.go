package timefield

import "strconv"

// Placeholder is shown for every field while nothing is selected.
const Placeholder = "–"

// Set is the ordered list of fields a picker edits: hours, minutes and, for
// 12-hour clocks, the AM/PM suffix.
type Set struct {
	sel      Selection
	fields   []Field
	military bool
	labels   [2]string
}

// NewSet builds the fields for sel. labels are the AM and PM texts.
func NewSet(sel Selection, military bool, labels [2]string) *Set {
	s := &Set{sel: sel, military: military, labels: labels}
	s.fields = []Field{hoursField{sel}, minutesField{sel}}
	if !military {
		s.fields = append(s.fields, suffixField{sel})
	}
	return s
}

// Fields returns the fields in display order.
func (s *Set) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Kinds returns the field kinds in display order.
func (s *Set) Kinds() []Kind {
	out := make([]Kind, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Kind()
	}
	return out
}

// Field returns the field of kind k, if the set has one.
func (s *Set) Field(k Kind) (Field, bool) {
	for _, f := range s.fields {
		if f.Kind() == k {
			return f, true
		}
	}
	return nil, false
}

// Military reports 24-hour mode.
func (s *Set) Military() bool {
	return s.military
}

// Text renders field k for display.
func (s *Set) Text(k Kind) string {
	f, ok := s.Field(k)
	if !ok {
		return ""
	}
	if _, selected := s.sel.Selected(); !selected {
		return Placeholder
	}
	v := f.Get()
	switch k {
	case Suffix:
		return s.labels[v]
	case Hours:
		if s.military {
			return pad2(v)
		}
		if v > 12 || v == 0 {
			v -= 12
		}
		if v < 0 {
			v = -v
		}
		return strconv.Itoa(v)
	default:
		return pad2(v)
	}
}

// Next adds one unit to field k. With nothing selected it selects now instead.
// The range guard is not consulted.
func (s *Set) Next(k Kind) {
	s.step(k, 1)
}

// Prev subtracts one unit from field k, with the same fallback as Next.
func (s *Set) Prev(k Kind) {
	s.step(k, -1)
}

func (s *Set) step(k Kind, delta int) {
	if _, ok := s.sel.Selected(); !ok {
		s.sel.SelectNow()
		return
	}
	f, ok := s.Field(k)
	if !ok {
		return
	}
	f.Set(f.Get() + delta)
}

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
