package locale

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt_BR"
)

// calendarData is what CLDR translators do not expose: week start, moment
// style long formats and meridiem labels.
type calendarData struct {
	id              string
	cldr            func() locales.Translator
	firstDayOfWeek  int
	longDateFormats map[string]string
	meridiem        [2]string
}

var builtinData = []calendarData{
	{
		id:             "en",
		cldr:           en.New,
		firstDayOfWeek: 0,
		longDateFormats: map[string]string{
			"LT":   "h:mm A",
			"LTS":  "h:mm:ss A",
			"L":    "MM/DD/YYYY",
			"LL":   "MMMM D, YYYY",
			"LLL":  "MMMM D, YYYY h:mm A",
			"LLLL": "dddd, MMMM D, YYYY h:mm A",
		},
		meridiem: [2]string{"AM", "PM"},
	},
	{
		id:             "en-GB",
		cldr:           en_GB.New,
		firstDayOfWeek: 1,
		longDateFormats: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D MMMM YYYY",
			"LLL":  "D MMMM YYYY HH:mm",
			"LLLL": "dddd, D MMMM YYYY HH:mm",
		},
		meridiem: [2]string{"am", "pm"},
	},
	{
		id:             "de",
		cldr:           de.New,
		firstDayOfWeek: 1,
		longDateFormats: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD.MM.YYYY",
			"LL":   "D. MMMM YYYY",
			"LLL":  "D. MMMM YYYY HH:mm",
			"LLLL": "dddd, D. MMMM YYYY HH:mm",
		},
		meridiem: [2]string{"AM", "PM"},
	},
	{
		id:             "fr",
		cldr:           fr.New,
		firstDayOfWeek: 1,
		longDateFormats: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D MMMM YYYY",
			"LLL":  "D MMMM YYYY HH:mm",
			"LLLL": "dddd D MMMM YYYY HH:mm",
		},
		meridiem: [2]string{"AM", "PM"},
	},
	{
		id:             "es",
		cldr:           es.New,
		firstDayOfWeek: 1,
		longDateFormats: map[string]string{
			"LT":   "H:mm",
			"LTS":  "H:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D [de] MMMM [de] YYYY",
			"LLL":  "D [de] MMMM [de] YYYY H:mm",
			"LLLL": "dddd, D [de] MMMM [de] YYYY H:mm",
		},
		meridiem: [2]string{"a. m.", "p. m."},
	},
	{
		id:             "nl",
		cldr:           nl.New,
		firstDayOfWeek: 1,
		longDateFormats: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD-MM-YYYY",
			"LL":   "D MMMM YYYY",
			"LLL":  "D MMMM YYYY HH:mm",
			"LLLL": "dddd D MMMM YYYY HH:mm",
		},
		meridiem: [2]string{"AM", "PM"},
	},
	{
		id:             "pt-BR",
		cldr:           pt_BR.New,
		firstDayOfWeek: 0,
		longDateFormats: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D [de] MMMM [de] YYYY",
			"LLL":  "D [de] MMMM [de] YYYY [às] HH:mm",
			"LLLL": "dddd, D [de] MMMM [de] YYYY [às] HH:mm",
		},
		meridiem: [2]string{"AM", "PM"},
	},
}

func builtinLocales() []Locale {
	out := make([]Locale, 0, len(builtinData))
	for _, d := range builtinData {
		out = append(out, d.build())
	}
	return out
}

// build fills month and weekday names from the CLDR translator.
func (d calendarData) build() Locale {
	tr := d.cldr()
	l := Locale{
		ID:              d.id,
		FirstDayOfWeek:  d.firstDayOfWeek,
		LongDateFormats: d.longDateFormats,
		Meridiem:        d.meridiem,
	}
	for i := range l.Months {
		m := time.Month(i + 1)
		l.Months[i] = tr.MonthWide(m)
		l.MonthsShort[i] = tr.MonthAbbreviated(m)
	}
	for i := range l.Weekdays {
		wd := time.Weekday(i)
		l.Weekdays[i] = tr.WeekdayWide(wd)
		l.WeekdaysShort[i] = tr.WeekdayAbbreviated(wd)
		l.WeekdaysMin[i] = minLabel(tr.WeekdayShort(wd))
	}
	return l
}

// minLabel trims the abbreviation dot CLDR short forms carry in some
// languages ("Mo." -> "Mo"), keeping header cells two wide.
func minLabel(s string) string {
	return strings.TrimSuffix(s, ".")
}
