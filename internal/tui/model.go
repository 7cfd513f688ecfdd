package tui

import (
	"log/slog"
	"time"

	"datepick/internal/dateutil"
	"datepick/internal/picker"
	"datepick/internal/timefield"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusCalendar focus = iota
	focusTime
	focusLabel
)

// Options tune the interactive picker.
type Options struct {
	// Theme is light, dark or auto.
	Theme string
	// Bound makes the picker behave as if attached to a text input: with
	// autoclose on, selecting a day ends the session.
	Bound bool
}

// Model is the bubbletea model around a picker.
type Model struct {
	p      *picker.Model
	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles styles

	focus    focus
	timeIdx  int
	cursor   time.Time
	showHelp bool
	width    int
	status   string

	// done is set when the session ended by autoclose rather than quit.
	done bool
}

// New wraps p. The cursor starts on the selection, else today when it falls in
// the viewed month, else the first of the viewed month.
func New(p *picker.Model, opts Options) Model {
	p.SetBoundToInput(opts.Bound)

	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "type a date"
	in.CharLimit = 64

	m := Model{
		p:      p,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  in,
		styles: newStyles(),
		width:  40,
	}
	if !p.Config().ShowCalendar {
		m.focus = focusTime
	}
	m.cursor = m.initialCursor()
	m.syncInput()
	return m
}

func (m Model) initialCursor() time.Time {
	if v, ok := m.p.Value(); ok {
		return dateutil.Normalize(v)
	}
	today := dateutil.Normalize(m.p.Now())
	viewed := m.p.Viewed()
	if dateutil.SameMonth(&today, &viewed) {
		return today
	}
	return dateutil.FirstOfMonth(viewed)
}

// Picker returns the wrapped picker.
func (m Model) Picker() *picker.Model { return m.p }

// Done reports whether the session ended because the picker closed itself.
func (m Model) Done() bool { return m.done }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.focus == focusLabel {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}
	if m.focus == focusLabel {
		return m.handleLabelKey(msg)
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus(1)
		return m, m.focusCmd()
	case key.Matches(msg, m.keys.FocusBack):
		m.cycleFocus(-1)
		return m, m.focusCmd()
	case key.Matches(msg, m.keys.PrevMonth):
		m.p.Prev()
		m.cursor = m.cursorInViewed()
	case key.Matches(msg, m.keys.NextMonth):
		m.p.Next()
		m.cursor = m.cursorInViewed()
	case key.Matches(msg, m.keys.Today):
		if !m.p.ShowToday() {
			return m, nil
		}
		m.p.SelectToday()
		m.cursor = dateutil.Normalize(m.p.Viewed())
	case key.Matches(msg, m.keys.Now):
		if !m.p.ShowNow() {
			return m, nil
		}
		m.p.SelectNow()
		m.cursor = dateutil.Normalize(m.p.Viewed())
	case key.Matches(msg, m.keys.Clear):
		m.p.Clear()
	case key.Matches(msg, m.keys.Inc):
		m.stepTime(1)
	case key.Matches(msg, m.keys.Dec):
		m.stepTime(-1)
	default:
		if m.focus == focusTime {
			m.handleTimeKey(msg)
		} else {
			m.handleCalendarKey(msg)
		}
	}
	m.syncInput()
	return m.closeIfHidden()
}

func (m *Model) handleCalendarKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-dateutil.DaysInWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(dateutil.DaysInWeek)
	case key.Matches(msg, m.keys.Select):
		if !m.p.InRange(m.cursor) {
			m.status = "out of range"
			return
		}
		m.p.Select(m.cursor)
	}
}

func (m *Model) handleTimeKey(msg tea.KeyMsg) {
	kinds := m.p.TimeFields().Kinds()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.timeIdx = (m.timeIdx + len(kinds) - 1) % len(kinds)
	case key.Matches(msg, m.keys.Right):
		m.timeIdx = (m.timeIdx + 1) % len(kinds)
	case key.Matches(msg, m.keys.Up):
		m.stepTime(1)
	case key.Matches(msg, m.keys.Down):
		m.stepTime(-1)
	case key.Matches(msg, m.keys.Select):
		// The suffix toggles on select, like clicking it.
		if k := m.timeKind(); k == timefield.Suffix {
			if f, ok := m.p.TimeFields().Field(k); ok {
				f.Set(0)
			}
		}
	}
}

func (m Model) handleLabelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		m.p.SetLabel(text)
		if v, ok := m.p.Value(); ok {
			m.p.SetViewed(v)
			m.cursor = dateutil.Normalize(v)
			m.status = ""
		} else if text != "" {
			m.status = "could not parse " + text
			slog.Debug("label input rejected", "text", text)
		}
		m.syncInput()
		return m, nil
	case tea.KeyEsc:
		m.focus = focusCalendar
		m.input.Blur()
		m.syncInput()
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		delta := 1
		if msg.Type == tea.KeyShiftTab {
			delta = -1
		}
		m.cycleFocus(delta)
		m.syncInput()
		return m, m.focusCmd()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) closeIfHidden() (tea.Model, tea.Cmd) {
	if m.p.BoundToInput() && !m.p.Visible() {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) cycleFocus(delta int) {
	var order []focus
	cfg := m.p.Config()
	if cfg.ShowCalendar {
		order = append(order, focusCalendar)
	}
	if cfg.ShowTime {
		order = append(order, focusTime)
	}
	order = append(order, focusLabel)

	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	m.focus = order[(idx+delta+len(order))%len(order)]
	if m.focus == focusLabel {
		m.input.Focus()
		m.input.CursorEnd()
	} else {
		m.input.Blur()
	}
}

func (m Model) focusCmd() tea.Cmd {
	if m.focus == focusLabel {
		return textinput.Blink
	}
	return nil
}

func (m *Model) moveCursor(days int) {
	y, mo, d := m.cursor.Date()
	m.cursor = dateutil.StartOfDay(y, mo, d+days, m.cursor.Location())
	viewed := m.p.Viewed()
	if !dateutil.SameMonth(&m.cursor, &viewed) {
		m.p.SetViewed(dateutil.FirstOfMonth(m.cursor))
	}
}

// cursorInViewed keeps the cursor's day of month after a month change.
func (m Model) cursorInViewed() time.Time {
	v := m.p.Viewed()
	y, mo, _ := v.Date()
	return dateutil.StartOfDay(y, mo, dateutil.ClampDay(y, mo, m.cursor.Day()), v.Location())
}

func (m Model) timeKind() timefield.Kind {
	kinds := m.p.TimeFields().Kinds()
	if m.timeIdx >= len(kinds) {
		return kinds[0]
	}
	return kinds[m.timeIdx]
}

func (m *Model) stepTime(delta int) {
	if !m.p.Config().ShowTime {
		return
	}
	k := m.timeKind()
	if delta > 0 {
		m.p.TimeFields().Next(k)
	} else {
		m.p.TimeFields().Prev(k)
	}
	if v, ok := m.p.Value(); ok {
		viewed := m.p.Viewed()
		if !dateutil.SameMonth(&v, &viewed) {
			m.p.SetViewed(v)
		}
		m.cursor = dateutil.Normalize(v)
	}
}

func (m *Model) syncInput() {
	if m.focus == focusLabel {
		return
	}
	label, _ := m.p.Label()
	m.input.SetValue(label)
}
