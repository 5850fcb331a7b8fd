package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

type memoryStore struct {
	runs    []Run
	high    int
	saveErr error
	highErr error
}

func (m *memoryStore) SaveRun(run Run) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	m.runs = append(m.runs, run)
	return int64(len(m.runs)), nil
}

func (m *memoryStore) HighScore() (int, error) {
	return m.high, m.highErr
}

func finished(score int) game.Snapshot {
	body := make([]core.Point, 5+score)
	return game.Snapshot{Status: game.StatusGameOver, Score: score, Body: body, Ticks: 42}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("run-%d", n)
	}
}

func TestRecorderSavesFinishedRuns(t *testing.T) {
	store := &memoryStore{high: 3}
	rec := NewRecorder(store, nil)
	rec.newID = sequentialIDs()

	if rec.Best() != 3 {
		t.Errorf("Best() = %d, expected 3 from store", rec.Best())
	}

	rec.GameStarted(game.Snapshot{})
	rec.GameOver(finished(2), game.CollisionWall)
	rec.GameStarted(game.Snapshot{})
	rec.GameOver(finished(5), game.CollisionSelf)

	if len(store.runs) != 2 {
		t.Fatalf("saved %d runs, expected 2", len(store.runs))
	}
	first := store.runs[0]
	if first.RunID != "run-1" || first.Score != 2 || first.Length != 7 || first.Ticks != 42 || first.Cause != "wall" {
		t.Errorf("first run = %+v", first)
	}
	if store.runs[1].RunID != "run-2" || store.runs[1].Cause != "self" {
		t.Errorf("second run = %+v", store.runs[1])
	}
	if rec.Best() != 5 {
		t.Errorf("Best() = %d, expected 5", rec.Best())
	}
}

func TestRecorderRealIDsAreUnique(t *testing.T) {
	store := &memoryStore{}
	rec := NewRecorder(store, nil)

	rec.GameStarted(game.Snapshot{})
	first := rec.RunID()
	rec.GameStarted(game.Snapshot{})
	if first == "" || first == rec.RunID() {
		t.Errorf("RunID() = %q then %q, expected two distinct ids", first, rec.RunID())
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, nil)

	rec.GameStarted(game.Snapshot{})
	rec.GameOver(finished(4), game.CollisionWall)
	if rec.Best() != 4 {
		t.Errorf("Best() = %d, expected 4", rec.Best())
	}
}

func TestRecorderIgnoresStoreErrors(t *testing.T) {
	store := &memoryStore{highErr: errors.New("locked"), saveErr: errors.New("disk full")}
	rec := NewRecorder(store, nil)

	if rec.Best() != 0 {
		t.Errorf("Best() = %d, expected 0 when the store fails", rec.Best())
	}

	rec.GameStarted(game.Snapshot{})
	rec.GameOver(finished(1), game.CollisionWall)
	if rec.Best() != 1 {
		t.Errorf("Best() = %d, expected 1 despite save error", rec.Best())
	}
}

func TestRecorderWithSQLite(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, nil)

	rec.GameStarted(game.Snapshot{})
	id := rec.RunID()
	rec.GameOver(finished(6), game.CollisionWall|game.CollisionSelf)

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 6 || run.Cause != "wall+self" {
		t.Errorf("RunByID() = %+v", run)
	}
}
