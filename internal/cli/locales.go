package cli

import (
	"fmt"
	"strings"

	"datepick/internal/locale"

	"github.com/spf13/cobra"
)

type localeInfo struct {
	ID         string `json:"id"`
	FirstDay   string `json:"firstDay"`
	Military   bool   `json:"military"`
	DateFormat string `json:"dateFormat"`
	TimeFormat string `json:"timeFormat"`
}

type localeList []localeInfo

func (l localeList) Text() string {
	var b strings.Builder
	for _, li := range l {
		clock := "12h"
		if li.Military {
			clock = "24h"
		}
		fmt.Fprintf(&b, "%-6s %-9s %s  %-12s %s\n", li.ID, li.FirstDay, clock, li.DateFormat, li.TimeFormat)
	}
	return b.String()
}

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := locale.Builtin()
			out := localeList{}
			for _, id := range reg.IDs() {
				l, err := reg.Lookup(id)
				if err != nil {
					return err
				}
				out = append(out, localeInfo{
					ID:         l.ID,
					FirstDay:   l.Weekdays[l.FirstDayOfWeek],
					Military:   !l.Uses12Hour(),
					DateFormat: l.LongDateFormat("L"),
					TimeFormat: l.LongDateFormat("LTS"),
				})
			}
			return writeOut(cmd, app, out)
		},
	}
}
