package pattern

import (
	"testing"
	"time"

	"datepick/internal/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocale(t *testing.T, id string) locale.Locale {
	t.Helper()
	l, err := locale.Builtin().Lookup(id)
	require.NoError(t, err)
	return l
}

func TestFormat(t *testing.T) {
	en := mustLocale(t, "en")
	de := mustLocale(t, "de")
	ts := time.Date(2024, 3, 5, 0, 7, 9, 0, time.UTC)
	pm := time.Date(2024, 3, 5, 13, 7, 9, 0, time.UTC)

	tests := []struct {
		name    string
		pattern string
		loc     locale.Locale
		t       time.Time
		want    string
	}{
		{"numeric", "YYYY-MM-DD HH:mm:ss", en, ts, "2024-03-05 00:07:09"},
		{"unpadded", "D/M/YY H:m:s", en, ts, "5/3/24 0:7:9"},
		{"midnight 12h", "h:mm A", en, ts, "12:07 AM"},
		{"afternoon 12h", "hh:mm a", en, pm, "01:07 pm"},
		{"macro L LTS", "L LTS", en, pm, "03/05/2024 1:07:09 PM"},
		{"german names", "dddd, D. MMMM YYYY", de, ts, "Dienstag, 5. März 2024"},
		{"german macro", "L LTS", de, pm, "05.03.2024 13:07:09"},
		{"bracket literal", "[day] D [of] MMM", en, ts, "day 5 of Mar"},
		{"strftime", "%Y/%m/%d %H:%M", en, pm, "2024/03/05 13:07"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Compile(tt.pattern, tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Format(tt.t))
		})
	}
}

func TestParse(t *testing.T) {
	en := mustLocale(t, "en")
	de := mustLocale(t, "de")
	ref := time.Date(2020, 6, 15, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pattern string
		loc     locale.Locale
		in      string
		want    time.Time
	}{
		{"numeric", "YYYY-MM-DD HH:mm", en, "2024-01-10 14:30", time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)},
		{"macro", "L LTS", en, "01/10/2024 2:30:00 PM", time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)},
		{"midnight AM", "L LT", en, "01/10/2024 12:05 am", time.Date(2024, 1, 10, 0, 5, 0, 0, time.UTC)},
		{"noon PM", "L LT", en, "01/10/2024 12:05 PM", time.Date(2024, 1, 10, 12, 5, 0, 0, time.UTC)},
		{"names case-insensitive", "D MMMM YYYY", de, "3 märz 2024", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"short month for long token", "MMMM D, YYYY", en, "Feb 29, 2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"time only keeps ref date", "HH:mm", en, "07:45", time.Date(2020, 6, 15, 7, 45, 0, 0, time.UTC)},
		{"two digit year", "DD/MM/YY", en, "01/02/99", time.Date(1999, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"flexible spaces", "L LT", en, "01/10/2024    9:00 AM", time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)},
		{"weekday ignored", "ddd, L", en, "Fri, 01/10/2024", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Compile(tt.pattern, tt.loc)
			require.NoError(t, err)
			got, err := l.Parse(tt.in, ref)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestParseRejects(t *testing.T) {
	en := mustLocale(t, "en")
	ref := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	l, err := Compile("L LT", en)
	require.NoError(t, err)

	for _, in := range []string{
		"",
		"garbage",
		"02/30/2024 1:00 PM",
		"13/01/2024 1:00 PM",
		"01/10/2024 13:00 PM",
		"01/10/2024 1:60 PM",
		"01/10/2024 1:00 PM extra",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := l.Parse(in, ref)
			require.Error(t, err)
			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestRoundTripLocales(t *testing.T) {
	ts := time.Date(2031, 11, 23, 22, 41, 5, 0, time.UTC)
	for _, id := range locale.Builtin().IDs() {
		loc := mustLocale(t, id)
		for _, p := range []string{"L LTS", "LLLL", "LL"} {
			l, err := Compile(p, loc)
			require.NoError(t, err)
			out := l.Format(ts)
			got, err := l.Parse(out, ts)
			require.NoError(t, err, "%s %s %q", id, p, out)
			assert.Equal(t, ts.Year(), got.Year(), "%s %s", id, p)
			assert.Equal(t, ts.Month(), got.Month(), "%s %s", id, p)
			assert.Equal(t, ts.Day(), got.Day(), "%s %s", id, p)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	en := mustLocale(t, "en")
	for _, p := range []string{"", "   ", "[unterminated", "[only literal]", "---"} {
		_, err := Compile(p, en)
		require.Error(t, err, p)
		var ce *CompileError
		assert.ErrorAs(t, err, &ce)
	}
}

func TestStrftimeParse(t *testing.T) {
	en := mustLocale(t, "en")
	loc := time.FixedZone("X", 3600)
	l, err := Compile("%Y-%m-%d %H:%M", en)
	require.NoError(t, err)
	got, err := l.Parse("2024-01-10 14:30", time.Date(2000, 1, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 14, 30, 0, 0, loc), got)
}
