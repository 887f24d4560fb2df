package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit   key.Binding
	Help   key.Binding
	Back   key.Binding
	Toggle key.Binding
	Open   key.Binding
}

// TODO allow overriding bindings from the config file.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "h"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("p", "enter"),
		key.WithHelp("p", "Portfolio"),
	),
	Open: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Open GitHub"),
	),
}
