package pattern

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"datepick/internal/dateutil"
	"datepick/internal/locale"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokYear4
	tokYear2
	tokMonth
	tokMonth2
	tokMonthShort
	tokMonthLong
	tokDay
	tokDay2
	tokWeekdayMin
	tokWeekdayShort
	tokWeekdayLong
	tokHour
	tokHour2
	tokHour12
	tokHour12Pad
	tokMinute
	tokMinute2
	tokSecond
	tokSecond2
	tokMeridiem
	tokMeridiemLower
)

// Ordered so that longer tokens win.
var tokenTable = []struct {
	text string
	kind tokenKind
}{
	{"YYYY", tokYear4},
	{"MMMM", tokMonthLong},
	{"dddd", tokWeekdayLong},
	{"MMM", tokMonthShort},
	{"ddd", tokWeekdayShort},
	{"YY", tokYear2},
	{"MM", tokMonth2},
	{"DD", tokDay2},
	{"dd", tokWeekdayMin},
	{"HH", tokHour2},
	{"hh", tokHour12Pad},
	{"mm", tokMinute2},
	{"ss", tokSecond2},
	{"M", tokMonth},
	{"D", tokDay},
	{"H", tokHour},
	{"h", tokHour12},
	{"m", tokMinute},
	{"s", tokSecond},
	{"A", tokMeridiem},
	{"a", tokMeridiemLower},
}

type token struct {
	kind tokenKind
	text string
}

func tokenize(p string) ([]token, error) {
	var out []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, token{kind: tokLiteral, text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(p); {
		if p[i] == '[' {
			end := strings.IndexByte(p[i+1:], ']')
			if end < 0 {
				return nil, errors.New("unterminated [literal]")
			}
			lit.WriteString(p[i+1 : i+1+end])
			i += end + 2
			continue
		}
		matched := false
		for _, t := range tokenTable {
			if strings.HasPrefix(p[i:], t.text) {
				flush()
				out = append(out, token{kind: t.kind, text: t.text})
				i += len(t.text)
				matched = true
				break
			}
		}
		if !matched {
			lit.WriteByte(p[i])
			i++
		}
	}
	flush()
	return out, nil
}

func pad2(n int) string {
	if n < 10 && n >= 0 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

func (tok token) format(b *strings.Builder, t time.Time, loc locale.Locale) {
	switch tok.kind {
	case tokLiteral:
		b.WriteString(tok.text)
	case tokYear4:
		s := strconv.Itoa(t.Year())
		for len(s) < 4 {
			s = "0" + s
		}
		b.WriteString(s)
	case tokYear2:
		b.WriteString(pad2(t.Year() % 100))
	case tokMonth:
		b.WriteString(strconv.Itoa(int(t.Month())))
	case tokMonth2:
		b.WriteString(pad2(int(t.Month())))
	case tokMonthShort:
		b.WriteString(loc.MonthsShort[t.Month()-1])
	case tokMonthLong:
		b.WriteString(loc.Months[t.Month()-1])
	case tokDay:
		b.WriteString(strconv.Itoa(t.Day()))
	case tokDay2:
		b.WriteString(pad2(t.Day()))
	case tokWeekdayMin:
		b.WriteString(loc.WeekdaysMin[t.Weekday()])
	case tokWeekdayShort:
		b.WriteString(loc.WeekdaysShort[t.Weekday()])
	case tokWeekdayLong:
		b.WriteString(loc.Weekdays[t.Weekday()])
	case tokHour:
		b.WriteString(strconv.Itoa(t.Hour()))
	case tokHour2:
		b.WriteString(pad2(t.Hour()))
	case tokHour12:
		b.WriteString(strconv.Itoa(hour12(t.Hour())))
	case tokHour12Pad:
		b.WriteString(pad2(hour12(t.Hour())))
	case tokMinute:
		b.WriteString(strconv.Itoa(t.Minute()))
	case tokMinute2:
		b.WriteString(pad2(t.Minute()))
	case tokSecond:
		b.WriteString(strconv.Itoa(t.Second()))
	case tokSecond2:
		b.WriteString(pad2(t.Second()))
	case tokMeridiem:
		b.WriteString(meridiem(loc, t.Hour()))
	case tokMeridiemLower:
		b.WriteString(strings.ToLower(meridiem(loc, t.Hour())))
	}
}

func meridiem(loc locale.Locale, h int) string {
	if h < 12 {
		return loc.Meridiem[0]
	}
	return loc.Meridiem[1]
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) digits(minN, maxN int) (int, bool) {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.pos-start < maxN && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
	}
	if sc.pos-start < minN {
		sc.pos = start
		return 0, false
	}
	n, err := strconv.Atoi(sc.s[start:sc.pos])
	if err != nil {
		sc.pos = start
		return 0, false
	}
	return n, true
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) {
		r, size := utf8.DecodeRuneInString(sc.s[sc.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		sc.pos += size
	}
}

// literal matches text case-insensitively; any whitespace in text matches a
// run of zero or more whitespace characters in the input.
func (sc *scanner) literal(text string) bool {
	start := sc.pos
	for _, want := range text {
		if unicode.IsSpace(want) {
			sc.skipSpace()
			continue
		}
		if sc.pos >= len(sc.s) {
			sc.pos = start
			return false
		}
		got, size := utf8.DecodeRuneInString(sc.s[sc.pos:])
		if unicode.ToLower(got) != unicode.ToLower(want) {
			sc.pos = start
			return false
		}
		sc.pos += size
	}
	return true
}

// oneOf returns the index of the longest candidate found at the cursor.
func (sc *scanner) oneOf(candidates ...[]string) (int, bool) {
	best, bestLen := -1, 0
	rest := sc.s[sc.pos:]
	for _, list := range candidates {
		for i, c := range list {
			if c == "" || len(c) <= bestLen || len(c) > len(rest) {
				continue
			}
			if strings.EqualFold(rest[:len(c)], c) {
				best, bestLen = i, len(c)
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	sc.pos += bestLen
	return best, true
}

func (l *Layout) parseTokens(s string, ref time.Time) (time.Time, error) {
	fail := func(reason string) (time.Time, error) {
		return time.Time{}, &ParseError{Input: s, Pattern: l.source, Reason: reason}
	}

	year, mon, day := ref.Date()
	month := int(mon)
	hour, minute, second := 0, 0, 0
	pm := -1
	twelveHour := false

	sc := &scanner{s: s}
	for _, tok := range l.tokens {
		var ok bool
		switch tok.kind {
		case tokLiteral:
			ok = sc.literal(tok.text)
		case tokYear4:
			year, ok = sc.digits(4, 4)
		case tokYear2:
			var y int
			if y, ok = sc.digits(2, 2); ok {
				if y > 68 {
					year = 1900 + y
				} else {
					year = 2000 + y
				}
			}
		case tokMonth, tokMonth2:
			month, ok = sc.digits(1, 2)
		case tokMonthShort, tokMonthLong:
			var idx int
			if idx, ok = sc.oneOf(l.loc.Months[:], l.loc.MonthsShort[:]); ok {
				month = idx + 1
			}
		case tokDay, tokDay2:
			day, ok = sc.digits(1, 2)
		case tokWeekdayMin, tokWeekdayShort, tokWeekdayLong:
			_, ok = sc.oneOf(l.loc.Weekdays[:], l.loc.WeekdaysShort[:], l.loc.WeekdaysMin[:])
		case tokHour, tokHour2:
			hour, ok = sc.digits(1, 2)
		case tokHour12, tokHour12Pad:
			hour, ok = sc.digits(1, 2)
			twelveHour = true
		case tokMinute, tokMinute2:
			minute, ok = sc.digits(1, 2)
		case tokSecond, tokSecond2:
			second, ok = sc.digits(1, 2)
		case tokMeridiem, tokMeridiemLower:
			pm, ok = sc.oneOf(l.loc.Meridiem[:])
		}
		if !ok {
			if tok.kind == tokLiteral {
				return fail("expected " + quote(tok.text) + " at offset " + strconv.Itoa(sc.pos))
			}
			return fail("expected " + tok.text + " at offset " + strconv.Itoa(sc.pos))
		}
	}
	sc.skipSpace()
	if sc.pos != len(s) {
		return fail("unexpected trailing text " + quote(s[sc.pos:]))
	}

	if twelveHour {
		if hour < 1 || hour > 12 {
			return fail("hour out of range for 12-hour clock")
		}
		if pm == 0 && hour == 12 {
			hour = 0
		}
	}
	if pm == 1 && hour < 12 {
		hour += 12
	}

	switch {
	case month < 1 || month > 12:
		return fail("month out of range")
	case day < 1 || day > dateutil.DaysInMonth(year, time.Month(month)):
		return fail("day out of range")
	case hour > 23:
		return fail("hour out of range")
	case minute > 59:
		return fail("minute out of range")
	case second > 59:
		return fail("second out of range")
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, ref.Location()), nil
}
