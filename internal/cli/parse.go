package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type parseResult struct {
	Input string     `json:"input"`
	Valid bool       `json:"valid"`
	Value *time.Time `json:"value"`
	Label string     `json:"label,omitempty"`
}

func (r parseResult) Text() string {
	if !r.Valid {
		return "invalid: " + r.Input
	}
	return r.Label
}

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text the way the label input does and print the normalized label",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.newPicker(nil)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			res := parseResult{Input: text, Valid: p.IsValid(text)}
			p.SetLabel(text)
			if v, ok := p.Value(); ok {
				res.Value = &v
				res.Label, _ = p.Label()
			}
			return writeOut(cmd, app, res)
		},
	}
}
