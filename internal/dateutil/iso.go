package dateutil

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}(:\d{2})?$`)
	reMonth    = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ParseISO parses:
// - YYYY-MM-DD (start of that day in loc)
// - YYYY-MM-DD HH:MM[:SS] or with a T separator (wall clock in loc)
// - RFC3339 / RFC3339Nano (absolute instant, re-expressed in loc)
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	if s == "" {
		return time.Time{}, errors.New("empty datetime")
	}

	if reDateOnly.MatchString(s) {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, err
		}
		return StartOfDay(d.Year(), d.Month(), d.Day(), loc), nil
	}
	if reDateTime.MatchString(s) {
		s = strings.Replace(s, "T", " ", 1)
		layout := "2006-01-02 15:04"
		if len(s) > len(layout) {
			layout = "2006-01-02 15:04:05"
		}
		return time.ParseInLocation(layout, s, loc)
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts.In(loc), nil
	}
	return time.Time{}, errors.Errorf("invalid datetime %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC3339)", s)
}

// ParseMonth parses YYYY-MM (or any ParseISO form) to day 1 of that month.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	if reMonth.MatchString(s) {
		d, err := time.Parse("2006-01", s)
		if err != nil {
			return time.Time{}, err
		}
		return StartOfDay(d.Year(), d.Month(), 1, loc), nil
	}
	t, err := ParseISO(s, loc)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return FirstOfMonth(t), nil
}
