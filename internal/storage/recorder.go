package storage

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// RunStore is the part of Store the recorder needs.
type RunStore interface {
	SaveRun(run Run) (int64, error)
	HighScore() (int, error)
}

// Recorder saves every finished game to a RunStore and tracks the best
// score. A nil store keeps the best score in memory only. Storage errors
// are logged and never interrupt play.
type Recorder struct {
	store  RunStore
	logger *log.Logger
	newID  func() string

	runID string
	best  atomic.Int64
}

var _ loop.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder and loads the best score from the store.
func NewRecorder(store RunStore, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Recorder{
		store:  store,
		logger: logger,
		newID:  uuid.NewString,
	}

	if store != nil {
		best, err := store.HighScore()
		if err != nil {
			logger.Warn("cannot load high score", "err", err)
		} else {
			r.best.Store(int64(best))
		}
	}
	return r
}

// Best returns the highest score seen so far. Safe to call from any
// goroutine.
func (r *Recorder) Best() int {
	return int(r.best.Load())
}

// RunID returns the ID of the current or last game.
func (r *Recorder) RunID() string {
	return r.runID
}

// GameStarted assigns a fresh run ID.
func (r *Recorder) GameStarted(game.Snapshot) {
	r.runID = r.newID()
	r.logger.Debug("run started", "run", r.runID)
}

// GameOver records the finished run.
func (r *Recorder) GameOver(snap game.Snapshot, cause game.Collision) {
	if int64(snap.Score) > r.best.Load() {
		r.best.Store(int64(snap.Score))
	}

	if r.store == nil {
		return
	}
	if r.runID == "" {
		r.runID = r.newID()
	}

	run := Run{
		RunID:  r.runID,
		Score:  snap.Score,
		Length: len(snap.Body),
		Ticks:  snap.Ticks,
		Cause:  cause.String(),
	}
	if _, err := r.store.SaveRun(run); err != nil {
		r.logger.Warn("cannot save run", "run", r.runID, "err", err)
		return
	}
	r.logger.Debug("run saved", "run", r.runID, "score", run.Score)
}
