package tui

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// keyBuffer bounds the number of unread key presses. Presses beyond it are
// dropped.
const keyBuffer = 16

// Frontend connects a Loop to a Bubble Tea program. The loop reads the size,
// polls keys and pushes frames; the program feeds keys and sizes in and
// draws the latest frame.
type Frontend struct {
	mu     sync.Mutex
	width  int
	height int

	keys   chan core.KeyEvent
	frames chan game.Snapshot

	closed    chan struct{}
	closeOnce sync.Once

	finished   chan struct{}
	finishOnce sync.Once
	err        error
}

var (
	_ loop.Viewport    = (*Frontend)(nil)
	_ loop.EventSource = (*Frontend)(nil)
	_ loop.Renderer    = (*Frontend)(nil)
)

// NewFrontend creates a frontend with the initial terminal size.
func NewFrontend(width, height int) *Frontend {
	return &Frontend{
		width:    width,
		height:   height,
		keys:     make(chan core.KeyEvent, keyBuffer),
		frames:   make(chan game.Snapshot, 1),
		closed:   make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Size returns the last reported terminal size.
func (f *Frontend) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

// SetSize records a new terminal size.
func (f *Frontend) SetSize(width, height int) {
	f.mu.Lock()
	f.width, f.height = width, height
	f.mu.Unlock()
}

// Send queues a key event for the loop. It never blocks.
func (f *Frontend) Send(ev core.KeyEvent) bool {
	select {
	case <-f.closed:
		return false
	default:
	}

	select {
	case f.keys <- ev:
		return true
	default:
		return false
	}
}

// Poll waits up to timeout for a key event. Queued keys are returned even
// when the timeout is zero. It fails with loop.ErrSourceClosed once the
// program side is gone.
func (f *Frontend) Poll(ctx context.Context, timeout time.Duration) (core.KeyEvent, bool, error) {
	select {
	case ev := <-f.keys:
		return ev, true, nil
	default:
	}

	if timeout <= 0 {
		select {
		case <-f.closed:
			return core.KeyEvent{}, false, loop.ErrSourceClosed
		case <-ctx.Done():
			return core.KeyEvent{}, false, ctx.Err()
		default:
			return core.KeyEvent{}, false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-f.keys:
		return ev, true, nil
	case <-timer.C:
		return core.KeyEvent{}, false, nil
	case <-f.closed:
		return core.KeyEvent{}, false, loop.ErrSourceClosed
	case <-ctx.Done():
		return core.KeyEvent{}, false, ctx.Err()
	}
}

// Render replaces any undrawn frame with snap. It never blocks, so a slow
// terminal only skips frames.
func (f *Frontend) Render(snap game.Snapshot) error {
	select {
	case <-f.frames:
	default:
	}
	select {
	case f.frames <- snap:
	default:
	}
	return nil
}

// Close tells the loop the program has exited.
func (f *Frontend) Close() {
	f.closeOnce.Do(func() { close(f.closed) })
}

// Finish records the loop result and tells the program to quit.
func (f *Frontend) Finish(err error) {
	f.finishOnce.Do(func() {
		f.err = err
		close(f.finished)
	})
}

// Err returns the error passed to Finish.
func (f *Frontend) Err() error {
	<-f.finished
	return f.err
}
