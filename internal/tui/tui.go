// Package tui is the interactive terminal front-end of the picker.
package tui

import (
	"io"

	"datepick/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Run shows the picker until the user quits or the picker closes itself. The
// UI draws on out so that stdout stays free for the result.
func Run(p *picker.Model, opts Options, in io.Reader, out io.Writer) (Model, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := New(p, opts)
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return m, errors.Wrap(err, "run picker")
	}
	fm, ok := final.(Model)
	if !ok {
		return m, errors.Errorf("unexpected final model %T", final)
	}
	return fm, nil
}
