package picker

import (
	"fmt"
	"time"
)

// Config is the configuration of one picker. It is copied and frozen by New;
// later changes to the caller's value have no effect.
type Config struct {
	// Locale is a BCP 47 identifier; empty means locale.DefaultID.
	Locale string
	// FirstDayOfWeek (0 = Sunday) overrides the locale when non-nil.
	FirstDayOfWeek *int
	// MilitaryTime selects the 24-hour clock. Nil derives it from the locale's
	// long time pattern.
	MilitaryTime *bool

	ShowTime     bool
	ShowCalendar bool
	ShowToday    bool
	ShowNow      bool

	Deselectable bool
	Autoclose    bool

	// Min and Max are inclusive bounds.
	Min *time.Time
	Max *time.Time

	// Format is the label pattern. Empty means "L LTS" with ShowTime and "L"
	// without.
	Format string

	// Name overrides. Empty slices take the locale's names.
	MonthNames       []string
	DayAbbreviations []string // index 0 = Sunday
	TimeSuffixLabels []string // AM, PM

	// Location is the zone the selection is expressed in. Nil means time.Local.
	Location *time.Location

	// Current is the initially viewed month. Zero means now.
	Current time.Time
	// Value is the initial selection.
	Value *time.Time
}

// DefaultConfig returns the picker defaults: both views and shortcuts shown,
// deselectable, autoclosing, locale-derived names and clock.
func DefaultConfig() Config {
	return Config{
		ShowTime:     true,
		ShowCalendar: true,
		ShowToday:    true,
		ShowNow:      true,
		Deselectable: true,
		Autoclose:    true,
	}
}

// ConfigError reports a configuration a picker cannot be built from.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid picker config: %s: %s", e.Field, e.Reason)
}

func errConfig(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func cloneTime(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(loc)
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
