package cli

import (
	"time"

	"datepick/internal/tui"

	"github.com/spf13/cobra"
)

type pickResult struct {
	Value  *time.Time `json:"value"`
	Label  string     `json:"label,omitempty"`
	Closed bool       `json:"closed"`
}

func (r pickResult) Text() string { return r.Label }

func newPickCmd(app *App) *cobra.Command {
	var (
		bound   bool
		initial string
	)
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date interactively and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, bound, initial)
		},
	}
	cmd.Flags().BoolVar(&bound, "bound", false, "Act as an input-bound picker: quit once a day is picked")
	cmd.Flags().StringVar(&initial, "value", "", "Initial selection (label or ISO 8601)")
	return cmd
}

func runPick(cmd *cobra.Command, app *App, bound bool, initial string) error {
	p, err := app.newPicker(nil)
	if err != nil {
		return err
	}
	if initial != "" {
		t, err := p.Parse(initial)
		if err != nil {
			return errInvalidInput("value", initial, err)
		}
		p.SetValue(t)
		p.SetViewed(t)
	}

	final, err := tui.Run(p, tui.Options{Theme: app.Settings.Theme, Bound: bound}, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	res := pickResult{Closed: final.Done()}
	if v, ok := p.Value(); ok {
		res.Value = &v
		res.Label, _ = p.Label()
	}
	app.Logger.Debug("pick finished", "closed", res.Closed, "label", res.Label)
	if res.Value == nil && app.Format == "text" {
		return nil
	}
	return writeOut(cmd, app, res)
}
