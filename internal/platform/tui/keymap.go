package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Hold       key.Binding
	Restart    key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hold, k.Restart, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Hold, k.Restart},
		{k.Mute, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Hold: key.NewBinding(
			key.WithKeys(" ", "space", "k"),
			key.WithHelp("click/space", "hold to kiss"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "try again"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action. Terminals do not report
// key release, so the hold key toggles: holding says which way it goes.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, holding bool) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Hold):
		if holding {
			return core.ActionRelease
		}
		return core.ActionPress
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Mute):
		return core.ActionMute
	}
	return core.ActionNone
}

// MapMouse translates a mouse message. Any button down is a press and any
// release is a release; wheel and motion events are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		return core.ActionNone
	}
	switch ev.Action {
	case tea.MouseActionPress:
		return core.ActionPress
	case tea.MouseActionRelease:
		return core.ActionRelease
	}
	return core.ActionNone
}
