package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapTranslate(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyCancel},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyCancel},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyConfirm},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeySecondary},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"w", runeKey('w'), core.KeyUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"s", runeKey('s'), core.KeyDown},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"a", runeKey('a'), core.KeyLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"d", runeKey('d'), core.KeyRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := keys.Translate(tc.msg)
			if !ok {
				t.Fatalf("Translate(%s) not mapped", tc.name)
			}
			if ev.Key != tc.expected || ev.Kind != core.KeyPress {
				t.Errorf("Translate(%s) = %v, expected press of %v", tc.name, ev, tc.expected)
			}
		})
	}
}

func TestKeyMapIgnoresUnboundKeys(t *testing.T) {
	keys := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('q'), runeKey('x'), {Type: tea.KeyTab}} {
		if ev, ok := keys.Translate(msg); ok {
			t.Errorf("Translate(%s) = %v, expected no mapping", msg, ev)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 3 {
		t.Errorf("ShortHelp() has %d bindings, expected 3", len(keys.ShortHelp()))
	}
	if keys.Play.Help().Key != "<Space>" || keys.Quit.Help().Desc != "Quit" {
		t.Errorf("unexpected help text: %+v %+v", keys.Play.Help(), keys.Quit.Help())
	}
}
