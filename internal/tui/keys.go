package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Now       key.Binding
	Focus     key.Binding
	FocusBack key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Now:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "now")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusBack: key.NewBinding(key.WithKeys("shift+tab")),
		Inc:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "step up")),
		Dec:       key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "step down")),
		Clear:     key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "clear")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.Today, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.PrevMonth, k.NextMonth, k.Clear},
		{k.Today, k.Now, k.Inc, k.Dec},
		{k.Focus, k.Help, k.Quit},
	}
}
