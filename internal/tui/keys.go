package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play      key.Binding
	Reset     key.Binding
	GainUp    key.Binding
	GainDown  key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Generated key.Binding
	Open      key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Play:      key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		GainUp:    key.NewBinding(key.WithKeys("+", "=", "up"), key.WithHelp("+/-", "gain")),
		GainDown:  key.NewBinding(key.WithKeys("-", "_", "down")),
		Faster:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "speed")),
		Slower:    key.NewBinding(key.WithKeys("left", "h")),
		Generated: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generated")),
		Open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Reset, k.GainUp, k.Faster, k.Generated, k.Open, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
