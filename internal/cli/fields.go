package cli

import (
	"fmt"
	"strings"
	"time"

	"datepick/internal/picker"
	"datepick/internal/timefield"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type fieldsResult struct {
	Value    *time.Time          `json:"value"`
	Label    string              `json:"label,omitempty"`
	Military bool                `json:"military"`
	Fields   []picker.FieldState `json:"fields"`
}

func (r fieldsResult) Text() string {
	var b strings.Builder
	for _, f := range r.Fields {
		fmt.Fprintf(&b, "%-8s %s", f.Kind, f.Text)
		if f.WouldExceedMax {
			b.WriteString("  (at max)")
		}
		if f.WouldExceedMin {
			b.WriteString("  (at min)")
		}
		b.WriteByte('\n')
	}
	if r.Label != "" {
		b.WriteString(r.Label)
		b.WriteByte('\n')
	}
	return b.String()
}

func newFieldsCmd(app *App) *cobra.Command {
	var steps []string
	cmd := &cobra.Command{
		Use:   "fields [datetime]",
		Short: "Show the time fields of a selection, optionally stepping them",
		Long: strings.TrimSpace(`
Shows hours, minutes and (for 12-hour clocks) the AM/PM suffix of a selection,
with flags for steps that would leave the min/max window.

Steps are applied in order: +hours, -minutes, suffix (toggles AM/PM).
Without a datetime the first step selects the current time.
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.newPicker(func(c *picker.Config) { c.ShowTime = true })
			if err != nil {
				return err
			}
			if len(args) == 1 {
				t, err := p.Parse(args[0])
				if err != nil {
					return errInvalidInput("datetime", args[0], err)
				}
				p.SetValue(t)
			}
			for _, s := range steps {
				if err := applyStep(p.TimeFields(), s); err != nil {
					return errInvalidInput("step", s, err)
				}
			}

			res := fieldsResult{Military: p.TimeFields().Military(), Fields: p.Snapshot().Time}
			if v, ok := p.Value(); ok {
				res.Value = &v
				res.Label, _ = p.Label()
			}
			return writeOut(cmd, app, res)
		},
	}
	cmd.Flags().StringArrayVar(&steps, "step", nil, "Step a field: +hours, -minutes, suffix (repeatable)")
	return cmd
}

func applyStep(set *timefield.Set, step string) error {
	step = strings.TrimSpace(step)
	dir := 0
	switch {
	case strings.HasPrefix(step, "+"):
		dir, step = 1, step[1:]
	case strings.HasPrefix(step, "-"):
		dir, step = -1, step[1:]
	}
	kind, ok := timefield.ParseKind(step)
	if !ok {
		return errors.New("want hours, minutes or suffix")
	}
	if _, ok := set.Field(kind); !ok {
		return errors.Errorf("no %s field on this clock", kind)
	}
	switch {
	case dir > 0:
		set.Next(kind)
	case dir < 0:
		set.Prev(kind)
	case kind == timefield.Suffix:
		set.Next(kind)
	default:
		return errors.New("hours and minutes need a + or - prefix")
	}
	return nil
}
