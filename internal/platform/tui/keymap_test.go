package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/secret-kiss/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyHoldToggles(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKey(runeKey('k'), false); got != core.ActionPress {
		t.Errorf("hold key while idle = %v, expected Press", got)
	}
	if got := km.MapKey(runeKey('k'), true); got != core.ActionRelease {
		t.Errorf("hold key while holding = %v, expected Release", got)
	}
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeySpace}, false); got != core.ActionPress {
		t.Errorf("space while idle = %v, expected Press", got)
	}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"restart r", runeKey('r'), core.ActionRestart},
		{"restart enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"mute", runeKey('m'), core.ActionMute},
		{"quit q", runeKey('q'), core.ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, false); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, core.ActionPress},
		{"right press", tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, core.ActionPress},
		{"release", tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, core.ActionRelease},
		{"wheel", tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, core.ActionNone},
		{"motion", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapMouse(tt.msg); got != tt.want {
				t.Errorf("MapMouse() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) != 4 {
		t.Errorf("ShortHelp has %d bindings, expected 4", len(keys.ShortHelp()))
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 5 {
		t.Errorf("FullHelp has %d bindings, expected 5", n)
	}
}
