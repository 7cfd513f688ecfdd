package timefield

import (
	"testing"
	"time"
	_ "time/tzdata"

	"datepick/internal/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSelection struct {
	value *time.Time
	now   time.Time
	nows  int
}

func (f *fakeSelection) Selected() (time.Time, bool) {
	if f.value == nil {
		return time.Time{}, false
	}
	return *f.value, true
}

func (f *fakeSelection) SetSelected(t time.Time) { f.value = &t }

func (f *fakeSelection) SelectNow() {
	f.nows++
	f.SetSelected(f.now)
}

func at(h, m int) *time.Time {
	t := time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
	return &t
}

var ampm = [2]string{"AM", "PM"}

func TestFieldOrder(t *testing.T) {
	sel := &fakeSelection{}
	assert.Equal(t, []Kind{Hours, Minutes, Suffix}, NewSet(sel, false, ampm).Kinds())
	assert.Equal(t, []Kind{Hours, Minutes}, NewSet(sel, true, ampm).Kinds())

	_, ok := NewSet(sel, true, ampm).Field(Suffix)
	assert.False(t, ok)
}

func TestSuffixSetAlwaysFlips(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, arg := range []int{0, 1, 42, -7} {
			sel := &fakeSelection{value: at(h, 30)}
			f, ok := NewSet(sel, false, ampm).Field(Suffix)
			require.True(t, ok)
			f.Set(arg)
			got, _ := sel.Selected()
			assert.Equal(t, (h+12)%24, got.Hour(), "hour %d arg %d", h, arg)
			assert.Equal(t, 15, got.Day(), "date unchanged")
			assert.Equal(t, 30, got.Minute())
		}
	}
}

func TestSuffixGet(t *testing.T) {
	sel := &fakeSelection{value: at(11, 59)}
	f, _ := NewSet(sel, false, ampm).Field(Suffix)
	assert.Equal(t, 0, f.Get())
	sel.value = at(12, 0)
	assert.Equal(t, 1, f.Get())
}

func TestHoursTextTwelveHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12"},
		{1, "1"},
		{11, "11"},
		{12, "12"},
		{13, "1"},
		{23, "11"},
	}
	for _, tt := range tests {
		sel := &fakeSelection{value: at(tt.hour, 5)}
		s := NewSet(sel, false, ampm)
		assert.Equal(t, tt.want, s.Text(Hours), "hour %d", tt.hour)
		assert.Equal(t, "05", s.Text(Minutes))
	}
}

func TestHoursTextMilitary(t *testing.T) {
	sel := &fakeSelection{value: at(7, 0)}
	s := NewSet(sel, true, ampm)
	assert.Equal(t, "07", s.Text(Hours))
	assert.Equal(t, "00", s.Text(Minutes))
	assert.Equal(t, "", s.Text(Suffix))
}

func TestTextPlaceholder(t *testing.T) {
	s := NewSet(&fakeSelection{}, false, ampm)
	for _, k := range s.Kinds() {
		assert.Equal(t, Placeholder, s.Text(k))
	}
}

func TestMidnightScenario(t *testing.T) {
	sel := &fakeSelection{value: at(0, 0)}
	s := NewSet(sel, false, ampm)
	assert.Equal(t, "12", s.Text(Hours))
	assert.Equal(t, "AM", s.Text(Suffix))

	f, _ := s.Field(Suffix)
	f.Set(0)
	got, _ := sel.Selected()
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, "PM", s.Text(Suffix))
}

func TestNextPrev(t *testing.T) {
	sel := &fakeSelection{value: at(10, 0)}
	s := NewSet(sel, true, ampm)

	s.Next(Hours)
	got, _ := sel.Selected()
	assert.Equal(t, 11, got.Hour())

	s.Prev(Minutes)
	got, _ = sel.Selected()
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 59, got.Minute())

	// Carry across midnight.
	sel.value = at(23, 0)
	s.Next(Hours)
	got, _ = sel.Selected()
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 16, got.Day())

	// No suffix field in 24-hour mode.
	before := *sel.value
	s.Next(Suffix)
	assert.Equal(t, before, *sel.value)
}

func TestNextWithoutSelectionSelectsNow(t *testing.T) {
	now := time.Date(2030, 2, 3, 4, 5, 6, 0, time.UTC)
	sel := &fakeSelection{now: now}
	s := NewSet(sel, false, ampm)

	s.Prev(Minutes)
	assert.Equal(t, 1, sel.nows)
	got, ok := sel.Selected()
	require.True(t, ok)
	assert.Equal(t, now, got, "fallback does not also apply the step")

	s.Next(Hours)
	assert.Equal(t, 1, sel.nows)
}

func TestFieldsWithoutSelection(t *testing.T) {
	sel := &fakeSelection{}
	for _, f := range NewSet(sel, false, ampm).Fields() {
		f.Set(3)
		_, ok := sel.Selected()
		assert.False(t, ok, f.Kind().String())
	}
}

func TestGuard(t *testing.T) {
	min := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	max := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	bounds := dateutil.Bounds{Min: &min, Max: &max}

	sel := &fakeSelection{value: at(16, 30)}
	g := NewGuard(sel, bounds)
	assert.True(t, g.WouldExceedMax(Hours))
	assert.False(t, g.WouldExceedMax(Minutes))
	assert.False(t, g.WouldExceedMin(Hours))
	assert.True(t, g.WouldExceedMax(Suffix), "16:30 -> 04:30 is before min")
	assert.True(t, g.WouldExceedMin(Suffix))

	sel.value = at(9, 30)
	assert.True(t, g.WouldExceedMin(Minutes))
	assert.False(t, g.WouldExceedMax(Minutes))

	sel.value = at(17, 0)
	assert.True(t, g.WouldExceedMax(Minutes))
	assert.False(t, g.WouldExceedMin(Minutes))
}

func TestGuardMatchesStepAcrossFallBack(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 01:30 EST, the second 01:30 of 2024-11-03. One hour back on the wall
	// clock is 00:30 EDT, two hours earlier in absolute time.
	sel := &fakeSelection{value: new(time.Time)}
	*sel.value = time.Date(2024, 11, 3, 6, 30, 0, 0, time.UTC).In(ny)
	min := time.Date(2024, 11, 3, 5, 0, 0, 0, time.UTC)
	bounds := dateutil.Bounds{Min: &min}
	g := NewGuard(sel, bounds)

	flagged := g.WouldExceedMin(Hours)
	NewSet(sel, true, ampm).Prev(Hours)
	got, _ := sel.Selected()
	assert.Equal(t, !bounds.Admits(got), flagged, "guard agrees with the step, got %v", got)
	assert.True(t, flagged)
}

func TestGuardInactive(t *testing.T) {
	min := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	assert.False(t, NewGuard(&fakeSelection{}, dateutil.Bounds{Min: &min}).WouldExceedMin(Hours), "no selection")
	assert.False(t, NewGuard(&fakeSelection{value: at(0, 0)}, dateutil.Bounds{}).WouldExceedMin(Hours), "no bounds")
}

func TestGuardDoesNotBlock(t *testing.T) {
	max := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	sel := &fakeSelection{value: at(17, 0)}
	g := NewGuard(sel, dateutil.Bounds{Max: &max})
	require.True(t, g.WouldExceedMax(Hours))

	NewSet(sel, true, ampm).Next(Hours)
	got, _ := sel.Selected()
	assert.Equal(t, 18, got.Hour())
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Hours, Minutes, Suffix} {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("seconds")
	assert.False(t, ok)
}
