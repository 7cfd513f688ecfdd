package cli

import (
	"datepick/internal/dateutil"
	"datepick/internal/picker"

	"github.com/spf13/cobra"
)

func newSheetCmd(app *App) *cobra.Command {
	var (
		month  string
		sel    string
		offset int
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Print the week grid of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := app.Settings.Location()
			if err != nil {
				return err
			}
			p, err := app.newPicker(func(c *picker.Config) {
				c.ShowCalendar = true
			})
			if err != nil {
				return err
			}
			if month != "" {
				m, err := dateutil.ParseMonth(month, loc)
				if err != nil {
					return errInvalidInput("month", month, err)
				}
				p.SetViewed(m)
			}
			if sel != "" {
				t, err := p.Parse(sel)
				if err != nil {
					return errInvalidInput("selection", sel, err)
				}
				p.SetValue(t)
				if month == "" {
					p.SetViewed(t)
				}
			}
			for ; offset > 0; offset-- {
				p.Next()
			}
			for ; offset < 0; offset++ {
				p.Prev()
			}
			return writeOut(cmd, app, p.Snapshot())
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to show, YYYY-MM (default: current month)")
	cmd.Flags().StringVar(&sel, "select", "", "Selected date (label or ISO 8601)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Move the view by this many months")
	return cmd
}
