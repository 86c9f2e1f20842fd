package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Key bindings are declared per screen so the help bar always matches the
// keys the screen actually handles. Letter input is not a binding: the
// riddle and word screens consume plain rune keys directly.

type hubKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultHubKeyMap() hubKeyMap {
	return hubKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k hubKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k hubKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

type riddleKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Prev   key.Binding
	Next   key.Binding
	Submit key.Binding
	Hint   key.Binding
	Erase  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultRiddleKeyMap() riddleKeyMap {
	return riddleKeyMap{
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "move")),
		Right:  key.NewBinding(key.WithKeys("right")),
		Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "riddle")),
		Next:   key.NewBinding(key.WithKeys("down")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check")),
		Hint:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "hint")),
		Erase:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "erase")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hub")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k riddleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Prev, k.Submit, k.Hint, k.Back}
}

func (k riddleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Prev, k.Erase}, {k.Submit, k.Hint, k.Back, k.Quit}}
}

type wordKeyMap struct {
	Submit  key.Binding
	Erase   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultWordKeyMap() wordKeyMap {
	return wordKeyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
		Erase:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "erase")),
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hub")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k wordKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Erase, k.Back}
}

func (k wordKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Erase}, {k.Restart, k.Back, k.Quit}}
}

type groupsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Submit key.Binding
	Hint   key.Binding
	Clear  key.Binding
	Reset  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultGroupsKeyMap() groupsKeyMap {
	return groupsKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓←→", "move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Hint:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "hint")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hub")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k groupsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Submit, k.Hint, k.Back}
}

func (k groupsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Toggle, k.Clear}, {k.Submit, k.Hint, k.Reset, k.Back}}
}
