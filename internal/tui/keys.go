package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Next     key.Binding
	Reset    key.Binding
	Target   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Rock:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rock")),
		Paper:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paper")),
		Scissors: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scissors")),
		Next:     key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "another round")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset scores")),
		Target:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "best of")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (that keyMap) ShortHelp() []key.Binding {
	return []key.Binding{that.Rock, that.Paper, that.Scissors, that.Next, that.Reset, that.Target, that.Quit}
}

func (that keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{that.Rock, that.Paper, that.Scissors},
		{that.Next, that.Reset, that.Target, that.Quit},
	}
}
