// Package tui is the Bubble Tea presentation layer for the snake game. The
// game itself runs in a loop.Loop; the model only forwards keys and sizes
// and draws the frames the loop pushes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Model is the Bubble Tea model that displays a running loop.
type Model struct {
	frontend *Frontend
	keys     KeyMap
	best     func() int

	snap     game.Snapshot
	hasFrame bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a model bound to frontend. best may be nil when no score
// history is kept.
func NewModel(frontend *Frontend, keys KeyMap, best func() int) Model {
	w, h := frontend.Size()
	return Model{
		frontend: frontend,
		keys:     keys,
		best:     best,
		width:    w,
		height:   h,
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.frontend)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.Translate(msg); ok {
			m.frontend.Send(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.frontend.SetSize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.snap = game.Snapshot(msg)
		m.hasFrame = true
		return m, waitForFrame(m.frontend)

	case loopDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the latest frame.
func (m Model) View() string {
	if m.quitting || !m.hasFrame {
		return ""
	}

	f := Frame{
		Snapshot: m.snap,
		Width:    m.width,
		Height:   m.height,
		Keys:     m.keys,
	}
	if m.best != nil {
		f.Best = m.best()
		f.ShowBest = true
	}
	return View(f)
}
