// Package locale supplies the calendar vocabulary a picker consumes: month and
// weekday names, the first day of the week, long date/time patterns and the
// AM/PM labels.
//
// Locales are resolved from BCP 47 identifiers ("en-US", "de_DE.UTF-8", "fr")
// against a small built-in table using golang.org/x/text/language matching.
// Month and weekday names come from CLDR via github.com/go-playground/locales.
package locale

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// DefaultID is used when no locale identifier is supplied.
const DefaultID = "en"

// Locale is immutable calendar data for one language/region.
type Locale struct {
	ID string

	Months      [12]string
	MonthsShort [12]string

	// Weekday arrays are indexed by time.Weekday (0 = Sunday).
	Weekdays      [7]string
	WeekdaysShort [7]string
	WeekdaysMin   [7]string

	// FirstDayOfWeek is a time.Weekday index.
	FirstDayOfWeek int

	// LongDateFormats holds the macro expansions for L, LL, LLL, LLLL, LT and LTS.
	LongDateFormats map[string]string

	Meridiem [2]string
}

// LongDateFormat returns the expansion of a long date macro, or "" if unknown.
func (l Locale) LongDateFormat(key string) string {
	return l.LongDateFormats[key]
}

// Uses12Hour reports whether the locale's long time pattern carries an AM/PM
// marker.
func (l Locale) Uses12Hour() bool {
	lts := strings.TrimSpace(l.LongDateFormat("LTS"))
	return strings.HasSuffix(lts, "A") || strings.HasSuffix(lts, "a")
}

// Provider resolves locale identifiers.
type Provider interface {
	Lookup(id string) (Locale, error)
}

// Registry is a Provider backed by a fixed set of locales.
type Registry struct {
	tags    []language.Tag
	locales []Locale
	matcher language.Matcher
}

// NewRegistry builds a registry. The first locale is the fallback for
// identifiers that only match weakly.
func NewRegistry(locales ...Locale) (*Registry, error) {
	if len(locales) == 0 {
		return nil, errors.New("locale registry needs at least one locale")
	}
	r := &Registry{}
	for _, l := range locales {
		tag, err := language.Parse(l.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "locale %q", l.ID)
		}
		r.tags = append(r.tags, tag)
		r.locales = append(r.locales, l)
	}
	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

var builtin *Registry

func init() {
	r, err := NewRegistry(builtinLocales()...)
	if err != nil {
		panic(err)
	}
	builtin = r
}

// Builtin returns the registry of locales shipped with datepick.
func Builtin() *Registry {
	return builtin
}

// UnknownError is returned when an identifier cannot be matched.
type UnknownError struct {
	ID string
}

func (e UnknownError) Error() string {
	return "unknown locale: " + e.ID
}

// Lookup resolves id to the closest supported locale. POSIX-style suffixes
// (".UTF-8", "@euro") and underscores are accepted.
func (r *Registry) Lookup(id string) (Locale, error) {
	id = cleanID(id)
	if id == "" {
		id = DefaultID
	}
	if id == "C" || id == "POSIX" {
		return r.locales[0], nil
	}
	tag, err := language.Parse(id)
	if err != nil {
		return Locale{}, UnknownError{ID: id}
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return Locale{}, UnknownError{ID: id}
	}
	return r.locales[idx], nil
}

// IDs lists the supported locale identifiers, sorted.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.locales))
	for _, l := range r.locales {
		out = append(out, l.ID)
	}
	sort.Strings(out)
	return out
}

func cleanID(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	return strings.ReplaceAll(id, "_", "-")
}
