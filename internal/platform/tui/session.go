package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SessionConfig describes one game session.
type SessionConfig struct {
	Config config.Config
	Seed   int64
	Width  int
	Height int

	// Store keeps score history. Nil disables it.
	Store  *storage.Store
	Logger *log.Logger
}

// Session pairs a simulation loop with the frontend that displays it.
type Session struct {
	Loop     *loop.Loop
	Frontend *Frontend
	Recorder *storage.Recorder
	Keys     KeyMap

	history bool
}

// NewSession builds the state, loop and frontend for one player.
func NewSession(cfg SessionConfig) (*Session, error) {
	opts, err := cfg.Config.GameOptions(cfg.Seed)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var runs storage.RunStore
	if cfg.Store != nil {
		runs = cfg.Store
	}

	frontend := NewFrontend(cfg.Width, cfg.Height)
	recorder := storage.NewRecorder(runs, logger)

	l := loop.New(game.NewState(opts), loop.Config{
		TickRate: cfg.Config.TickRate(),
		Margin:   cfg.Config.Field.Margin,
		Viewport: frontend,
		Source:   frontend,
		Renderer: frontend,
		Observer: recorder,
		Logger:   logger,
	})

	return &Session{
		Loop:     l,
		Frontend: frontend,
		Recorder: recorder,
		Keys:     DefaultKeyMap(),
		history:  cfg.Store != nil,
	}, nil
}

// Model returns the Bubble Tea model for this session.
func (s *Session) Model() Model {
	var best func() int
	if s.history {
		best = s.Recorder.Best
	}
	return NewModel(s.Frontend, s.Keys, best)
}

// Start runs the loop in its own goroutine. The program is told to quit
// when the loop returns.
func (s *Session) Start(ctx context.Context) {
	go func() {
		s.Frontend.Finish(s.Loop.Run(ctx))
	}()
}

// Wait blocks until the loop has returned. A closed frontend or a cancelled
// context count as a normal end.
func (s *Session) Wait() error {
	err := s.Frontend.Err()
	if errors.Is(err, loop.ErrSourceClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Run plays one local session in the alternate screen until the player
// quits or ctx is cancelled.
func Run(ctx context.Context, cfg SessionConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess, err := NewSession(cfg)
	if err != nil {
		return err
	}
	sess.Start(ctx)

	p := tea.NewProgram(
		sess.Model(),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()
	sess.Frontend.Close()
	loopErr := sess.Wait()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: program failed: %w", runErr)
	}
	return loopErr
}
