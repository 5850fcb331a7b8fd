// Package loop drives the simulation at a fixed tick rate. It renders,
// waits for input no longer than the time left until the next tick, and
// steps the game when the tick deadline has passed.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// DefaultTickRate is the time between simulation steps.
const DefaultTickRate = 128 * time.Millisecond

// ErrSourceClosed is returned by event sources that can no longer deliver input.
var ErrSourceClosed = errors.New("input source closed")

// Viewport reports the current drawable size in cells.
type Viewport interface {
	Size() (width, height int)
}

// EventSource delivers key events. Poll blocks for at most timeout and
// returns ok == false if nothing arrived.
type EventSource interface {
	Poll(ctx context.Context, timeout time.Duration) (ev core.KeyEvent, ok bool, err error)
}

// Renderer draws a snapshot of the game.
type Renderer interface {
	Render(snap game.Snapshot) error
}

// Observer is notified about game lifecycle events. Calls happen on the
// loop goroutine.
type Observer interface {
	GameStarted(snap game.Snapshot)
	GameOver(snap game.Snapshot, cause game.Collision)
}

// Config holds the loop's collaborators and settings.
type Config struct {
	TickRate time.Duration // 0 or less means DefaultTickRate
	Margin   int           // 0 or less means core.DefaultMargin
	Clock    Clock
	Viewport Viewport
	Source   EventSource
	Renderer Renderer
	Observer Observer
	Logger   *log.Logger
}

// Loop owns a game state and runs it until the player quits.
type Loop struct {
	state    *game.State
	tickRate time.Duration
	margin   int
	clock    Clock
	viewport Viewport
	source   EventSource
	renderer Renderer
	observer Observer
	logger   *log.Logger
}

// New creates a loop around the given state. Zero values in cfg fall back to
// defaults; Viewport, Source and Renderer are required.
func New(state *game.State, cfg Config) *Loop {
	l := &Loop{
		state:    state,
		tickRate: cfg.TickRate,
		margin:   cfg.Margin,
		clock:    cfg.Clock,
		viewport: cfg.Viewport,
		source:   cfg.Source,
		renderer: cfg.Renderer,
		observer: cfg.Observer,
		logger:   cfg.Logger,
	}
	if l.tickRate <= 0 {
		l.tickRate = DefaultTickRate
	}
	if l.margin <= 0 {
		l.margin = core.DefaultMargin
	}
	if l.clock == nil {
		l.clock = SystemClock{}
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// State returns the state driven by the loop. It must not be touched while
// Run is executing.
func (l *Loop) State() *game.State {
	return l.state
}

// Run executes the loop until the exit flag is set. Input and render failures
// are fatal and returned wrapped; so is context cancellation, observed while
// waiting for input.
func (l *Loop) Run(ctx context.Context) error {
	lastTick := l.clock.Now()

	for !l.state.Exit {
		w, h := l.viewport.Size()
		before := l.state.Status
		if cause := l.state.SetField(core.NewField(w, h, l.margin)); cause != game.CollisionNone {
			l.notify(before, cause)
		}

		if err := l.renderer.Render(l.state.Snapshot()); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		// Outside of play the deadline follows the clock, so idle screens
		// wait a full tick per poll and the first step comes a tick after
		// the game starts.
		if l.state.Status != game.StatusPlaying {
			lastTick = l.clock.Now()
		}

		timeout := l.tickRate - l.clock.Now().Sub(lastTick)
		if timeout < 0 {
			timeout = 0
		}

		ev, ok, err := l.source.Poll(ctx, timeout)
		if err != nil {
			return fmt.Errorf("poll input event: %w", err)
		}
		if ok {
			before := l.state.Status
			l.state.HandleKey(ev)
			l.notify(before, game.CollisionNone)
		}

		if l.state.Status == game.StatusPlaying && l.clock.Now().Sub(lastTick) >= l.tickRate {
			before := l.state.Status
			res := l.state.Step()
			lastTick = l.clock.Now()
			l.notify(before, res.Collision)
		}
	}

	l.logger.Debug("loop finished", "status", l.state.Status, "score", l.state.Score)
	return nil
}

// notify reports status changes to the logger and observer.
func (l *Loop) notify(before game.Status, cause game.Collision) {
	after := l.state.Status
	if after == before {
		return
	}

	switch after {
	case game.StatusPlaying:
		l.logger.Info("game started", "field", fmt.Sprintf("%vx%v", l.state.Field.Width, l.state.Field.Height))
		if l.observer != nil {
			l.observer.GameStarted(l.state.Snapshot())
		}
	case game.StatusGameOver:
		l.logger.Info("game over",
			"score", l.state.Score,
			"length", l.state.Snake.Len(),
			"ticks", l.state.Ticks,
			"cause", cause,
		)
		if l.observer != nil {
			l.observer.GameOver(l.state.Snapshot(), cause)
		}
	case game.StatusMenu:
		l.logger.Debug("back to menu")
	}
}
