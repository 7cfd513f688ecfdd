// Package config loads picker settings from flags, DATEPICK_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"datepick/internal/dateutil"
	"datepick/internal/picker"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DATEPICK_LOCALE.
const EnvPrefix = "DATEPICK"

// Keys. Flag names match them so flags bind directly.
const (
	KeyLocale       = "locale"
	KeyFirstDay     = "first-day"
	KeyMilitary     = "military"
	KeyShowTime     = "show-time"
	KeyShowCalendar = "show-calendar"
	KeyShowToday    = "show-today"
	KeyShowNow      = "show-now"
	KeyDeselectable = "deselectable"
	KeyAutoclose    = "autoclose"
	KeyMin          = "min"
	KeyMax          = "max"
	KeyFormat       = "date-format"
	KeyTimezone     = "timezone"
	KeyTimeLabels   = "time-labels"
	KeyMonthNames   = "month-names"
	KeyDayNames     = "day-names"
	KeyTheme        = "theme"
	KeyLogLevel     = "log-level"
)

// Settings is the merged configuration.
type Settings struct {
	Locale       string
	FirstDay     string // "" = locale default; 0-6 or a weekday name
	Military     string // auto|true|false
	ShowTime     bool
	ShowCalendar bool
	ShowToday    bool
	ShowNow      bool
	Deselectable bool
	Autoclose    bool
	Min          string
	Max          string
	Format       string
	Timezone     string
	TimeLabels   []string
	MonthNames   []string
	DayNames     []string
	Theme        string // auto|light|dark
	LogLevel     string

	// File is the config file that was read, if any.
	File string
}

// DefaultDir is $XDG_CONFIG_HOME/datepick (or the platform equivalent).
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}
	return filepath.Join(dir, "datepick"), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLocale, "")
	v.SetDefault(KeyFirstDay, "")
	v.SetDefault(KeyMilitary, "auto")
	v.SetDefault(KeyShowTime, true)
	v.SetDefault(KeyShowCalendar, true)
	v.SetDefault(KeyShowToday, true)
	v.SetDefault(KeyShowNow, true)
	v.SetDefault(KeyDeselectable, true)
	v.SetDefault(KeyAutoclose, true)
	v.SetDefault(KeyTheme, "auto")
	v.SetDefault(KeyLogLevel, "warn")
}

// Load merges flags, environment and the config file. An explicit file must
// exist; the default file is optional.
func Load(flags *pflag.FlagSet, file string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	s := &Settings{
		Locale:       v.GetString(KeyLocale),
		FirstDay:     v.GetString(KeyFirstDay),
		Military:     v.GetString(KeyMilitary),
		ShowTime:     v.GetBool(KeyShowTime),
		ShowCalendar: v.GetBool(KeyShowCalendar),
		ShowToday:    v.GetBool(KeyShowToday),
		ShowNow:      v.GetBool(KeyShowNow),
		Deselectable: v.GetBool(KeyDeselectable),
		Autoclose:    v.GetBool(KeyAutoclose),
		Min:          v.GetString(KeyMin),
		Max:          v.GetString(KeyMax),
		Format:       v.GetString(KeyFormat),
		Timezone:     v.GetString(KeyTimezone),
		TimeLabels:   list(v.GetStringSlice(KeyTimeLabels)),
		MonthNames:   list(v.GetStringSlice(KeyMonthNames)),
		DayNames:     list(v.GetStringSlice(KeyDayNames)),
		Theme:        v.GetString(KeyTheme),
		LogLevel:     v.GetString(KeyLogLevel),
		File:         v.ConfigFileUsed(),
	}
	slog.Debug("config loaded", "file", s.File, "locale", s.Locale)
	return s, nil
}

// list accepts both YAML sequences and comma separated strings, which is how
// lists arrive from the environment.
func list(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Location resolves the timezone setting; empty means the local zone.
func (s *Settings) Location() (*time.Location, error) {
	if s.Timezone == "" || strings.EqualFold(s.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "timezone %q", s.Timezone)
	}
	return loc, nil
}

// Level parses the log level; unknown values fall back to warn.
func (s *Settings) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// PickerConfig converts the settings into a picker configuration.
func (s *Settings) PickerConfig() (picker.Config, error) {
	cfg := picker.DefaultConfig()
	loc, err := s.Location()
	if err != nil {
		return cfg, err
	}
	cfg.Location = loc
	cfg.Locale = s.Locale
	cfg.ShowTime = s.ShowTime
	cfg.ShowCalendar = s.ShowCalendar
	cfg.ShowToday = s.ShowToday
	cfg.ShowNow = s.ShowNow
	cfg.Deselectable = s.Deselectable
	cfg.Autoclose = s.Autoclose
	cfg.Format = s.Format
	cfg.TimeSuffixLabels = s.TimeLabels
	cfg.MonthNames = s.MonthNames
	cfg.DayAbbreviations = s.DayNames

	if s.FirstDay != "" {
		fd, err := ParseWeekday(s.FirstDay)
		if err != nil {
			return cfg, err
		}
		cfg.FirstDayOfWeek = &fd
	}

	switch strings.ToLower(strings.TrimSpace(s.Military)) {
	case "", "auto":
	default:
		b, err := strconv.ParseBool(s.Military)
		if err != nil {
			return cfg, errors.Errorf("military: want auto, true or false, got %q", s.Military)
		}
		cfg.MilitaryTime = &b
	}

	if cfg.Min, err = bound(KeyMin, s.Min, loc); err != nil {
		return cfg, err
	}
	if cfg.Max, err = bound(KeyMax, s.Max, loc); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func bound(key, s string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := dateutil.ParseISO(s, loc)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return &t, nil
}

// ParseWeekday accepts 0-6 (0 = Sunday) or an English weekday name or prefix
// of at least two letters.
func ParseWeekday(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, errors.Errorf("first day %d out of range 0-6", n)
		}
		return n, nil
	}
	if len(s) >= 2 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), s) {
				return int(d), nil
			}
		}
	}
	return 0, errors.Errorf("unknown weekday %q", s)
}
