package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// frameMsg carries a new snapshot from the loop.
type frameMsg game.Snapshot

// loopDoneMsg is sent once the loop has returned.
type loopDoneMsg struct {
	err error
}

// waitForFrame returns a command that blocks until the loop pushes a frame
// or stops.
func waitForFrame(f *Frontend) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-f.frames:
			return frameMsg(snap)
		case <-f.finished:
			return loopDoneMsg{err: f.err}
		case <-f.closed:
			return loopDoneMsg{}
		}
	}
}
