// Package game implements the snake simulation: movement, collisions, apple
// placement, scoring and the menu/playing/game-over state machine.
// It has no knowledge of terminals or timing; the loop package drives it.
package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Collision is a bit set of the collisions detected during one step.
type Collision uint8

const CollisionNone Collision = 0

const (
	CollisionWall Collision = 1 << iota
	CollisionSelf
)

func (c Collision) String() string {
	if c == CollisionNone {
		return "none"
	}
	var parts []string
	if c&CollisionWall != 0 {
		parts = append(parts, "wall")
	}
	if c&CollisionSelf != 0 {
		parts = append(parts, "self")
	}
	return strings.Join(parts, "+")
}

// ResizePolicy controls how a field change affects a running game.
type ResizePolicy int

const (
	// ResizeDefer leaves the snake alone; the next step checks the new bounds.
	ResizeDefer ResizePolicy = iota
	// ResizeStrict ends the game as soon as the head is outside the new bounds.
	ResizeStrict
)

func (p ResizePolicy) String() string {
	if p == ResizeStrict {
		return "strict"
	}
	return "defer"
}

// ParseResizePolicy converts a config value into a ResizePolicy.
func ParseResizePolicy(s string) (ResizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "defer":
		return ResizeDefer, nil
	case "strict":
		return ResizeStrict, nil
	}
	return ResizeDefer, fmt.Errorf("game: unknown resize policy %q", s)
}

// Options configures a new State.
type Options struct {
	Seed             int64
	MaxAppleAttempts int
	ResizePolicy     ResizePolicy
}

// State is the complete simulation state. It is owned by a single loop and
// is not safe for concurrent use.
type State struct {
	Status   Status
	Snake    Snake
	Apple    core.Point
	HasApple bool // false until a game starts, or when no free cell exists
	Score    int
	Field    core.Field
	Ticks    uint64
	Exit     bool

	spawner *Spawner
	policy  ResizePolicy
}

// NewState creates a state in the menu.
func NewState(opts Options) *State {
	return &State{
		Status:  StatusMenu,
		Snake:   NewSnake(),
		spawner: NewSpawner(rand.New(rand.NewSource(opts.Seed)), opts.MaxAppleAttempts),
		policy:  opts.ResizePolicy,
	}
}

// StepResult describes what happened during one step.
type StepResult struct {
	Ate       bool
	Collision Collision
	Over      bool // the step moved the game to GameOver
}

// Step advances the snake by one tick. It does nothing unless the game is
// being played.
func (s *State) Step() StepResult {
	var res StepResult
	if s.Status != StatusPlaying {
		return res
	}
	s.Ticks++

	sn := &s.Snake
	sn.Direction = sn.Pending
	next := sn.Head().Add(sn.Direction.Vector())

	if s.HasApple && next == s.Apple {
		sn.grow()
		s.Score++
		res.Ate = true
		s.placeApple(next)
	}

	if sn.shift(next) {
		res.Collision |= CollisionSelf
	}
	if s.Field.OutOfBounds(next) {
		res.Collision |= CollisionWall
	}

	// The head is written even on collision so the last frame shows where
	// the snake crashed.
	sn.Body[0] = next

	if res.Collision != CollisionNone {
		res.Over = s.fire(TriggerCollision)
		return res
	}

	// A board that was full or too small may have room again.
	if !s.HasApple {
		s.placeApple()
	}
	return res
}

// HandleKey applies one input event. Only key presses are acted on.
func (s *State) HandleKey(ev core.KeyEvent) {
	if ev.Kind != core.KeyPress {
		return
	}

	switch ev.Key {
	case core.KeyCancel:
		s.Exit = true
	case core.KeyConfirm:
		s.fire(TriggerConfirm)
	case core.KeySecondary:
		s.fire(TriggerSecondary)
	default:
		if dir, ok := ev.Key.Direction(); ok && s.Status == StatusPlaying {
			s.Snake.Request(dir)
		}
	}
}

// SetField updates the field from the current viewport size and applies the
// resize policy. It returns the collision caused by the resize, if any.
func (s *State) SetField(f core.Field) Collision {
	if f == s.Field {
		return CollisionNone
	}
	s.Field = f
	if s.Status != StatusPlaying {
		return CollisionNone
	}

	// An apple outside the new bounds can never be eaten, and a missing one
	// may fit now.
	if !s.HasApple || !ValidAppleCell(f, s.Apple) {
		s.placeApple()
	}

	if s.policy == ResizeStrict && f.OutOfBounds(s.Snake.Head()) {
		s.fire(TriggerCollision)
		return CollisionWall
	}
	return CollisionNone
}

// fire applies a trigger through the transition table.
func (s *State) fire(t Trigger) bool {
	to, ok := Next(s.Status, t)
	if !ok {
		return false
	}
	if to == StatusPlaying {
		s.startGame()
	}
	s.Status = to
	return true
}

// startGame resets the snake, score and apple for a new round.
func (s *State) startGame() {
	s.Snake = NewSnake()
	s.Score = 0
	s.Ticks = 0
	s.placeApple()
}

// placeApple moves the apple to a free cell, avoiding the body and any
// extra points such as the head's next position.
func (s *State) placeApple(extra ...core.Point) {
	occupied := func(p core.Point) bool {
		for _, e := range extra {
			if e == p {
				return true
			}
		}
		return s.Snake.Contains(p)
	}
	s.Apple, s.HasApple = s.spawner.Place(s.Field, occupied)
}
