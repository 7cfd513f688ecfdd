// Package pattern formats and parses date-times with display patterns.
//
// Two dialects are understood:
//
//   - token patterns ("DD/MM/YYYY HH:mm", "L LTS", "MMMM D, YYYY h:mm A"),
//     where names and long-date macros come from a locale.Locale;
//   - strftime patterns ("%Y-%m-%d %H:%M"), recognised by a '%' and handled by
//     github.com/ncruces/go-strftime.
//
// Text inside square brackets is literal: "D [de] MMMM".
package pattern

import (
	"strings"
	"time"

	"datepick/internal/locale"

	"github.com/ncruces/go-strftime"
)

// Layout is a compiled pattern bound to a locale.
type Layout struct {
	source   string
	strftime bool
	tokens   []token
	loc      locale.Locale
}

// ParseError describes why a string did not match a layout.
type ParseError struct {
	Input   string
	Pattern string
	Reason  string
}

func (e *ParseError) Error() string {
	return "cannot parse " + quote(e.Input) + " as " + quote(e.Pattern) + ": " + e.Reason
}

// CompileError is returned for patterns that cannot be used.
type CompileError struct {
	Pattern string
	Reason  string
}

func (e *CompileError) Error() string {
	return "invalid pattern " + quote(e.Pattern) + ": " + e.Reason
}

// Compile prepares pattern for formatting and parsing with loc.
func Compile(pattern string, loc locale.Locale) (*Layout, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, &CompileError{Pattern: pattern, Reason: "empty"}
	}
	l := &Layout{source: pattern, loc: loc}
	if strings.Contains(pattern, "%") {
		l.strftime = true
		return l, nil
	}
	expanded := expandMacros(pattern, loc)
	toks, err := tokenize(expanded)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Reason: err.Error()}
	}
	hasField := false
	for _, t := range toks {
		if t.kind != tokLiteral {
			hasField = true
			break
		}
	}
	if !hasField {
		return nil, &CompileError{Pattern: pattern, Reason: "no date or time fields"}
	}
	l.tokens = toks
	return l, nil
}

// Format renders t.
func (l *Layout) Format(t time.Time) string {
	if l.strftime {
		return strftime.Format(l.source, t)
	}
	var b strings.Builder
	for _, tok := range l.tokens {
		tok.format(&b, t, l.loc)
	}
	return b.String()
}

// Parse reads s. Calendar fields missing from the pattern are taken from ref,
// time-of-day fields default to zero, and the result is in ref's location.
func (l *Layout) Parse(s string, ref time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ParseError{Input: s, Pattern: l.source, Reason: "empty input"}
	}
	if l.strftime {
		t, err := strftime.Parse(l.source, s)
		if err != nil {
			return time.Time{}, &ParseError{Input: s, Pattern: l.source, Reason: err.Error()}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), ref.Location()), nil
	}
	return l.parseTokens(s, ref)
}

// expandMacros replaces the locale's long date macros outside of bracketed
// literals. Longest macros are tried first so "LLLL" is not read as "L".
func expandMacros(pattern string, loc locale.Locale) string {
	macros := []string{"LLLL", "LLL", "LTS", "LT", "LL", "L"}
	var b strings.Builder
	inLiteral := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '[':
			inLiteral = true
		case c == ']':
			inLiteral = false
		case !inLiteral && c == 'L':
			matched := false
			for _, m := range macros {
				if strings.HasPrefix(pattern[i:], m) {
					if exp := loc.LongDateFormat(m); exp != "" {
						b.WriteString(exp)
						i += len(m)
						matched = true
						break
					}
				}
			}
			if matched {
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func quote(s string) string {
	return "\"" + s + "\""
}
