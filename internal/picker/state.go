package picker

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"datepick/internal/calendar"
)

// FieldState is the rendered form of one time field.
type FieldState struct {
	Kind           string `json:"kind"`
	Text           string `json:"text"`
	WouldExceedMax bool   `json:"wouldExceedMax"`
	WouldExceedMin bool   `json:"wouldExceedMin"`
}

// State is a read-only snapshot of everything a view needs to draw the picker.
type State struct {
	Locale    string            `json:"locale"`
	Value     *time.Time        `json:"value"`
	Label     string            `json:"label,omitempty"`
	Viewed    time.Time         `json:"viewed"`
	Title     string            `json:"title"`
	DayLabels []string          `json:"dayLabels"`
	Weeks     [][]calendar.Cell `json:"weeks,omitempty"`
	Time      []FieldState      `json:"time,omitempty"`
	ShowToday bool              `json:"showToday"`
	ShowNow   bool              `json:"showNow"`
	Visible   bool              `json:"visible"`
}

// Snapshot captures the current state. Weeks and Time are only filled for the
// views the configuration shows.
func (m *Model) Snapshot() State {
	s := State{
		Locale:    m.loc.ID,
		Viewed:    m.viewed,
		Title:     m.Title(),
		DayLabels: m.DayLabels(),
		ShowToday: m.cfg.ShowToday,
		ShowNow:   m.cfg.ShowNow,
		Visible:   m.visible,
	}
	if v, ok := m.Value(); ok {
		s.Value = &v
		s.Label, _ = m.Label()
	}
	if m.cfg.ShowCalendar {
		s.Weeks = m.Cells()
	}
	if m.cfg.ShowTime {
		for _, f := range m.times.Fields() {
			k := f.Kind()
			s.Time = append(s.Time, FieldState{
				Kind:           k.String(),
				Text:           m.times.Text(k),
				WouldExceedMax: m.guard.WouldExceedMax(k),
				WouldExceedMin: m.guard.WouldExceedMin(k),
			})
		}
	}
	return s
}

// Text renders the snapshot as a plain month grid followed by the time fields.
// Brackets mark the selected day, parentheses today, and a dot marks days
// outside the viewed month or the allowed range.
func (s State) Text() string {
	var b strings.Builder
	if s.Weeks != nil {
		b.WriteString(s.Title)
		b.WriteByte('\n')
		for _, l := range s.DayLabels {
			b.WriteString(padLeft(l, 4) + " ")
		}
		b.WriteByte('\n')
		for _, w := range s.Weeks {
			for _, c := range w {
				b.WriteString(cellText(c))
			}
			b.WriteByte('\n')
		}
	}
	if s.Time != nil {
		parts := make([]string, 0, len(s.Time))
		for _, f := range s.Time {
			parts = append(parts, f.Text)
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}
	if s.Label != "" {
		b.WriteString(s.Label)
		b.WriteByte('\n')
	}
	return b.String()
}

func cellText(c calendar.Cell) string {
	left, right := " ", " "
	switch {
	case c.Selected:
		left, right = "[", "]"
	case c.Today:
		left, right = "(", ")"
	case c.Inactive || c.OutOfRange:
		right = "."
	}
	return fmt.Sprintf(" %s%2d%s", left, c.Date.Day(), right)
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
