// Package picker is the state machine behind a date/time picker: the selected
// value, the viewed month, panel visibility and the commands that move them.
//
// A Model is single-threaded: callers serialize access (a bubbletea update
// loop does this naturally). Every derived view (sheet cells, label, guard
// flags) is computed on read from the current state.
package picker

import (
	"log/slog"
	"strings"
	"time"

	"datepick/internal/calendar"
	"datepick/internal/dateutil"
	"datepick/internal/locale"
	"datepick/internal/pattern"
	"datepick/internal/timefield"
)

// Option customizes a Model.
type Option func(*Model)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger used for configuration failures and state
// transitions.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithLocales replaces the locale provider.
func WithLocales(p locale.Provider) Option {
	return func(m *Model) {
		if p != nil {
			m.locales = p
		}
	}
}

// Model owns the picker state.
type Model struct {
	cfg     Config
	loc     locale.Locale
	zone    *time.Location
	layout  *pattern.Layout
	bounds  dateutil.Bounds
	now     func() time.Time
	log     *slog.Logger
	locales locale.Provider

	value   *time.Time
	viewed  time.Time
	visible bool
	input   bool

	times *timefield.Set
	guard *timefield.Guard
}

// New validates cfg and returns a picker. A *ConfigError is returned (and
// logged) when the configuration is unusable.
func New(cfg Config, opts ...Option) (*Model, error) {
	m := &Model{
		now:     time.Now,
		log:     slog.Default(),
		locales: locale.Builtin(),
		visible: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.configure(cfg); err != nil {
		m.log.Error("picker configuration rejected", "error", err)
		return nil, err
	}

	m.times = timefield.NewSet(m, *m.cfg.MilitaryTime, [2]string{m.cfg.TimeSuffixLabels[0], m.cfg.TimeSuffixLabels[1]})
	m.guard = timefield.NewGuard(m, m.bounds)

	now := m.now().In(m.zone)
	today := dateutil.Normalize(now)
	if m.cfg.ShowToday && !m.bounds.Contains(&today) {
		m.cfg.ShowToday = false
	}
	if m.cfg.ShowNow && ((m.bounds.Min != nil && !m.bounds.Min.Before(now)) || (m.bounds.Max != nil && !m.bounds.Max.After(now))) {
		m.cfg.ShowNow = false
	}

	m.log.Debug("picker ready",
		"locale", m.loc.ID,
		"firstDay", *m.cfg.FirstDayOfWeek,
		"military", *m.cfg.MilitaryTime,
		"format", m.cfg.Format,
	)
	return m, nil
}

func (m *Model) configure(cfg Config) error {
	if !cfg.ShowCalendar && !cfg.ShowTime {
		return errConfig("showCalendar/showTime", "at least one of the calendar or time views must be shown")
	}

	m.zone = cfg.Location
	if m.zone == nil {
		m.zone = time.Local
	}
	cfg.Location = m.zone

	loc, err := m.locales.Lookup(cfg.Locale)
	if err != nil {
		return errConfig("locale", "%v", err)
	}
	cfg.Locale = loc.ID

	if cfg.FirstDayOfWeek == nil {
		cfg.FirstDayOfWeek = intPtr(loc.FirstDayOfWeek)
	} else {
		if fd := *cfg.FirstDayOfWeek; fd < 0 || fd > 6 {
			return errConfig("firstDayOfWeek", "%d is not a weekday index (0-6)", fd)
		}
		cfg.FirstDayOfWeek = intPtr(*cfg.FirstDayOfWeek)
	}
	if cfg.MilitaryTime == nil {
		cfg.MilitaryTime = boolPtr(!loc.Uses12Hour())
	} else {
		cfg.MilitaryTime = boolPtr(*cfg.MilitaryTime)
	}

	if cfg.MonthNames = cloneStrings(cfg.MonthNames); len(cfg.MonthNames) == 0 {
		cfg.MonthNames = loc.Months[:]
	} else if len(cfg.MonthNames) != 12 {
		return errConfig("monthNames", "need 12 names, got %d", len(cfg.MonthNames))
	}
	if cfg.DayAbbreviations = cloneStrings(cfg.DayAbbreviations); len(cfg.DayAbbreviations) == 0 {
		cfg.DayAbbreviations = loc.WeekdaysMin[:]
	} else if len(cfg.DayAbbreviations) != 7 {
		return errConfig("dayAbbreviations", "need 7 names, got %d", len(cfg.DayAbbreviations))
	}
	if cfg.TimeSuffixLabels = cloneStrings(cfg.TimeSuffixLabels); len(cfg.TimeSuffixLabels) == 0 {
		cfg.TimeSuffixLabels = loc.Meridiem[:]
	} else if len(cfg.TimeSuffixLabels) != 2 {
		return errConfig("timeSuffixLabels", "need 2 labels, got %d", len(cfg.TimeSuffixLabels))
	}
	// Name overrides flow into formatting and parsing as well.
	copy(loc.Months[:], cfg.MonthNames)
	copy(loc.WeekdaysMin[:], cfg.DayAbbreviations)
	copy(loc.Meridiem[:], cfg.TimeSuffixLabels)
	m.loc = loc

	cfg.Min = cloneTime(cfg.Min, m.zone)
	cfg.Max = cloneTime(cfg.Max, m.zone)
	if cfg.Min != nil && cfg.Max != nil && cfg.Min.After(*cfg.Max) {
		return errConfig("min/max", "min %s is after max %s", cfg.Min.Format(time.RFC3339), cfg.Max.Format(time.RFC3339))
	}
	m.bounds = dateutil.Bounds{Min: cfg.Min, Max: cfg.Max}

	if strings.TrimSpace(cfg.Format) == "" {
		if cfg.ShowTime {
			cfg.Format = "L LTS"
		} else {
			cfg.Format = "L"
		}
	}
	layout, err := pattern.Compile(cfg.Format, loc)
	if err != nil {
		return errConfig("format", "%v", err)
	}
	m.layout = layout

	if cfg.Current.IsZero() {
		cfg.Current = m.now()
	}
	cfg.Current = cfg.Current.In(m.zone)
	m.viewed = cfg.Current

	cfg.Value = cloneTime(cfg.Value, m.zone)
	m.value = cloneTime(cfg.Value, m.zone)

	m.cfg = cfg
	return nil
}

// Config returns the resolved configuration, with every default filled in.
func (m *Model) Config() Config {
	c := m.cfg
	c.FirstDayOfWeek = intPtr(*m.cfg.FirstDayOfWeek)
	c.MilitaryTime = boolPtr(*m.cfg.MilitaryTime)
	c.Min = cloneTime(m.cfg.Min, m.zone)
	c.Max = cloneTime(m.cfg.Max, m.zone)
	c.Value = cloneTime(m.cfg.Value, m.zone)
	c.MonthNames = cloneStrings(m.cfg.MonthNames)
	c.DayAbbreviations = cloneStrings(m.cfg.DayAbbreviations)
	c.TimeSuffixLabels = cloneStrings(m.cfg.TimeSuffixLabels)
	return c
}

// Locale returns the effective locale, including name overrides.
func (m *Model) Locale() locale.Locale { return m.loc }

// Location returns the zone selections are expressed in.
func (m *Model) Location() *time.Location { return m.zone }

// Now returns the picker clock's current instant in Location.
func (m *Model) Now() time.Time { return m.now().In(m.zone) }

// Bounds returns the configured window.
func (m *Model) Bounds() dateutil.Bounds { return m.bounds }

// FirstDayOfWeek returns the resolved first day of the week.
func (m *Model) FirstDayOfWeek() int { return *m.cfg.FirstDayOfWeek }

// ShowToday reports whether the "today" shortcut is offered.
func (m *Model) ShowToday() bool { return m.cfg.ShowToday }

// ShowNow reports whether the "now" shortcut is offered.
func (m *Model) ShowNow() bool { return m.cfg.ShowNow }

// Value returns the selection.
func (m *Model) Value() (time.Time, bool) {
	if m.value == nil {
		return time.Time{}, false
	}
	return *m.value, true
}

// SetValue assigns the selection from outside the picker's own commands.
func (m *Model) SetValue(t time.Time) {
	m.setValue(&t)
}

// Clear removes the selection.
func (m *Model) Clear() {
	m.setValue(nil)
}

func (m *Model) setValue(t *time.Time) {
	if t == nil {
		if m.value != nil {
			m.log.Debug("selection cleared")
		}
		m.value = nil
		return
	}
	v := t.In(m.zone)
	m.value = &v
	m.log.Debug("selection changed", "value", v.Format(time.RFC3339))
}

// Selected implements timefield.Selection.
func (m *Model) Selected() (time.Time, bool) { return m.Value() }

// SetSelected implements timefield.Selection.
func (m *Model) SetSelected(t time.Time) { m.setValue(&t) }

// Viewed returns the viewed month's reference date.
func (m *Model) Viewed() time.Time { return m.viewed }

// SetViewed moves the sheet to the month of t.
func (m *Model) SetViewed(t time.Time) {
	m.viewed = t.In(m.zone)
}

// Visible reports whether the panel is shown.
func (m *Model) Visible() bool { return m.visible }

// SetVisible shows or hides the panel.
func (m *Model) SetVisible(v bool) { m.visible = v }

// BoundToInput reports whether the picker edits a text input.
func (m *Model) BoundToInput() bool { return m.input }

// SetBoundToInput marks the picker as attached to a text input, which enables
// autoclose.
func (m *Model) SetBoundToInput(v bool) { m.input = v }

func (m *Model) autoclose() {
	if m.input && m.cfg.Autoclose {
		m.visible = false
	}
}

// Select picks date. Picking the selected day again clears the selection when
// the picker is deselectable. Picking Min's day selects the exact Min instant.
func (m *Model) Select(date time.Time) {
	if m.cfg.Deselectable && dateutil.SameDay(m.value, &date) {
		m.setValue(nil)
		return
	}
	// Only Min snaps; Max is left alone.
	if m.cfg.Min != nil && dateutil.SameDay(&date, m.cfg.Min) {
		m.setValue(m.cfg.Min)
	} else {
		m.setValue(&date)
	}
	m.autoclose()
}

// SelectToday selects the start of today and shows its month, unless today is
// already selected. It goes through Select for autoclose but always lands on
// the day start, even when today is Min's day.
func (m *Model) SelectToday() {
	today := dateutil.Normalize(m.now().In(m.zone))
	if dateutil.SameDay(m.value, &today) {
		return
	}
	m.Select(today)
	m.viewed = today
	m.setValue(&today)
}

// SelectNow selects the current instant and shows its month.
func (m *Model) SelectNow() {
	now := m.now().In(m.zone)
	m.setValue(&now)
	m.viewed = now
	m.autoclose()
}

// Next shows the following month.
func (m *Model) Next() {
	m.viewed = dateutil.AddMonths(m.viewed, 1)
}

// Prev shows the preceding month.
func (m *Model) Prev() {
	m.viewed = dateutil.AddMonths(m.viewed, -1)
}

// Label renders the selection with the configured format.
func (m *Model) Label() (string, bool) {
	if m.value == nil {
		return "", false
	}
	return m.layout.Format(*m.value), true
}

// SetLabel parses text with the configured format (falling back to ISO 8601)
// and selects the result. Unparseable text clears the selection.
func (m *Model) SetLabel(text string) {
	t, err := m.parse(text)
	if err != nil {
		m.log.Debug("label rejected", "text", text, "error", err)
		m.setValue(nil)
		return
	}
	m.setValue(&t)
}

// IsValid reports whether text would be accepted by SetLabel.
func (m *Model) IsValid(text string) bool {
	_, err := m.parse(text)
	return err == nil
}

// Parse exposes the label parser without touching the selection.
func (m *Model) Parse(text string) (time.Time, error) {
	return m.parse(text)
}

// Format renders t with the configured format.
func (m *Model) Format(t time.Time) string {
	return m.layout.Format(t.In(m.zone))
}

func (m *Model) parse(text string) (time.Time, error) {
	ref := m.now().In(m.zone)
	t, err := m.layout.Parse(text, ref)
	if err == nil {
		return t, nil
	}
	if iso, isoErr := dateutil.ParseISO(text, m.zone); isoErr == nil {
		return iso, nil
	}
	return time.Time{}, err
}

// Sheet returns the week grid of the viewed month.
func (m *Model) Sheet() calendar.Sheet {
	return calendar.Build(m.viewed, *m.cfg.FirstDayOfWeek)
}

// Cells returns the viewed month's sheet with per-day flags.
func (m *Model) Cells() [][]calendar.Cell {
	return m.Sheet().Cells(calendar.Context{
		Viewed:   m.viewed,
		Selected: m.value,
		Today:    m.now().In(m.zone),
		Bounds:   m.bounds,
	})
}

// InRange reports whether the day of t is selectable.
func (m *Model) InRange(t time.Time) bool {
	return m.bounds.Contains(&t)
}

// DayLabels returns weekday headers starting at the first day of the week.
func (m *Model) DayLabels() []string {
	return calendar.DayLabels(m.cfg.DayAbbreviations, *m.cfg.FirstDayOfWeek)
}

// Title returns the sheet header for the viewed month.
func (m *Model) Title() string {
	return calendar.Title(m.cfg.MonthNames, m.viewed)
}

// TimeFields returns the editable time components.
func (m *Model) TimeFields() *timefield.Set { return m.times }

// Guard returns the time range guard.
func (m *Model) Guard() *timefield.Guard { return m.guard }
