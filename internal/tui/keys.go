package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate key.Binding
	Run      key.Binding
	Prev     key.Binding
	Next     key.Binding
	Slower   key.Binding
	Faster   key.Binding
	Theory   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "new array")),
		Run:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "sort")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "algorithm")),
		Next:     key.NewBinding(key.WithKeys("right", "l")),
		Slower:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "delay")),
		Faster:   key.NewBinding(key.WithKeys("-", "_")),
		Theory:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theory")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Run, k.Prev, k.Theory, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Run},
		{k.Prev, k.Slower},
		{k.Theory, k.Help, k.Quit},
	}
}
