package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is an immutable copy of the state handed to renderers and observers.
type Snapshot struct {
	Status    Status
	Body      []core.Point
	Direction core.Direction
	Apple     core.Point
	HasApple  bool
	Score     int
	Field     core.Field
	Ticks     uint64
}

// Snapshot returns a copy of the current state that does not share memory
// with it.
func (s *State) Snapshot() Snapshot {
	body := make([]core.Point, len(s.Snake.Body))
	copy(body, s.Snake.Body)

	return Snapshot{
		Status:    s.Status,
		Body:      body,
		Direction: s.Snake.Direction,
		Apple:     s.Apple,
		HasApple:  s.HasApple,
		Score:     s.Score,
		Field:     s.Field,
		Ticks:     s.Ticks,
	}
}

// Head returns the head position, or the zero point for an empty body.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}
