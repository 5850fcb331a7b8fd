package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings of the game screens.
type KeyMap struct {
	Quit  key.Binding
	Play  key.Binding
	Menu  key.Binding
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Play, k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or WASD to steer,
// space to play, enter for the main menu and esc to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("<Esc>", "Quit"),
		),
		Play: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("<Space>", "Play"),
		),
		Menu: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("<Enter>", "Main Menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "move right"),
		),
	}
}

// Translate maps a Bubble Tea key message to a game key event.
// Terminals only report presses, so every match is a KeyPress.
func (k KeyMap) Translate(msg tea.KeyMsg) (core.KeyEvent, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Press(core.KeyCancel), true
	case key.Matches(msg, k.Play):
		return core.Press(core.KeyConfirm), true
	case key.Matches(msg, k.Menu):
		return core.Press(core.KeySecondary), true
	case key.Matches(msg, k.Up):
		return core.Press(core.KeyUp), true
	case key.Matches(msg, k.Down):
		return core.Press(core.KeyDown), true
	case key.Matches(msg, k.Left):
		return core.Press(core.KeyLeft), true
	case key.Matches(msg, k.Right):
		return core.Press(core.KeyRight), true
	}
	return core.KeyEvent{}, false
}
