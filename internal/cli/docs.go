package cli

import (
	"fmt"
	"strings"

	"datepick/internal/docs"

	"github.com/spf13/cobra"
)

type topicList []string

func (t topicList) Text() string { return strings.Join(t, "\n") }

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw   bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicList(docs.Topics()))
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return errUnknownTopic(topic)
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			if app.Format == "text" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), docs.Render(body, app.Settings.Theme, width))
				return err
			}
			return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")
	return cmd
}
