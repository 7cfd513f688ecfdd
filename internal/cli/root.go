// Package cli wires the picker into the datepick command line.
package cli

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"datepick/internal/config"
	"datepick/internal/format"
	"datepick/internal/picker"

	"github.com/spf13/cobra"
)

type App struct {
	Format     string
	Pretty     bool
	ConfigFile string

	Settings *config.Settings
	Logger   *slog.Logger

	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	var bound bool

	cmd := &cobra.Command{
		Use:          "datepick",
		Short:        "Terminal date/time picker",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick interactively; the chosen label is printed on stdout
  datepick

  # Print a month sheet
  datepick sheet --month 2024-03 --first-day monday

  # Month shortcut (same as: datepick sheet --month 2024-03)
  datepick 2024-03

  # Parse a label the way the picker's input does
  datepick parse --locale de "05.03.2024 14:07:09"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, bound, "")
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(cmd.Flags(), app.ConfigFile)
		if err != nil {
			return err
		}
		app.Settings = s
		app.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: s.Level()}))
		slog.SetDefault(app.Logger)
		app.Logger.Debug("settings", "file", s.File, "locale", s.Locale, "timezone", s.Timezone)
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.Format, "format", envOr("DATEPICK_OUTPUT", "text"), "Output format (text|json|edn)")
	pf.BoolVar(&app.Pretty, "pretty", false, "Pretty-print json/edn output")
	pf.StringVar(&app.ConfigFile, "config", envOr("DATEPICK_CONFIG", ""), "Config file (default $XDG_CONFIG_HOME/datepick/config.yaml)")
	pf.String(config.KeyLogLevel, "warn", "Log level (debug|info|warn|error)")

	pf.String(config.KeyLocale, "", "Locale, e.g. en, en-GB, de (default: en)")
	pf.String(config.KeyFirstDay, "", "First day of the week: 0-6 or a weekday name (default: locale)")
	pf.String(config.KeyMilitary, "auto", "24-hour clock: auto|true|false")
	pf.Bool(config.KeyShowTime, true, "Show the time fields")
	pf.Bool(config.KeyShowCalendar, true, "Show the calendar")
	pf.Bool(config.KeyShowToday, true, "Offer the today shortcut")
	pf.Bool(config.KeyShowNow, true, "Offer the now shortcut")
	pf.Bool(config.KeyDeselectable, true, "Selecting the selected day clears it")
	pf.Bool(config.KeyAutoclose, true, "Close after a selection when bound to an input")
	pf.String(config.KeyMin, "", "Earliest selectable date/time (ISO 8601)")
	pf.String(config.KeyMax, "", "Latest selectable date/time (ISO 8601)")
	pf.String(config.KeyFormat, "", "Label pattern (default: L LTS, or L without time)")
	pf.String(config.KeyTimezone, "", "IANA timezone (default: local)")
	pf.StringSlice(config.KeyTimeLabels, nil, "AM/PM labels, e.g. am,pm")
	pf.StringSlice(config.KeyMonthNames, nil, "12 month names")
	pf.StringSlice(config.KeyDayNames, nil, "7 weekday abbreviations, Sunday first")
	pf.String(config.KeyTheme, "auto", "TUI theme: auto|light|dark")

	cmd.Flags().BoolVar(&bound, "bound", false, "Act as an input-bound picker: quit once a day is picked")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newSheetCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newFieldsCmd(app))
	cmd.AddCommand(newLocalesCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// newPicker builds a picker from the merged settings. mutate adjusts the
// configuration before validation.
func (app *App) newPicker(mutate func(*picker.Config)) (*picker.Model, error) {
	cfg, err := app.Settings.PickerConfig()
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return picker.New(cfg, picker.WithLogger(app.Logger), picker.WithClock(app.now))
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

type envelope struct {
	Data any `json:"data"`
}

// writeOut prints v as text, or wrapped in a {"data": ...} envelope for the
// structured formats.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if strings.EqualFold(strings.TrimSpace(app.Format), "text") {
		return format.Write(cmd.OutOrStdout(), v, "text", app.Pretty)
	}
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.Pretty)
}
