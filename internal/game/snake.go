package game

import "github.com/vovakirdan/tui-snake/internal/core"

// InitialLength is the number of segments a fresh snake starts with.
const InitialLength = 5

// Snake holds the body segments and the movement direction.
type Snake struct {
	Body      []core.Point // Head at index 0
	Direction core.Direction
	Pending   core.Direction // Applied at the start of the next step
}

// NewSnake returns the canonical starting snake: five segments along the top
// row, head at (8, 0), moving right.
func NewSnake() Snake {
	body := make([]core.Point, InitialLength)
	for i := range body {
		body[i] = core.Point{X: float64(InitialLength-1-i) * core.StepX, Y: 0}
	}
	return Snake{
		Body:      body,
		Direction: core.DirRight,
		Pending:   core.DirRight,
	}
}

// Head returns the first segment.
func (s *Snake) Head() core.Point {
	return s.Body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() core.Point {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment lies on p.
func (s *Snake) Contains(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Request sets the pending direction unless it would reverse the snake
// into itself. Returns false if the request was dropped.
func (s *Snake) Request(d core.Direction) bool {
	if d.IsOpposite(s.Direction) {
		return false
	}
	s.Pending = d
	return true
}

// grow appends a copy of the tail. The duplicate separates from the real
// tail on the next shift.
func (s *Snake) grow() {
	s.Body = append(s.Body, s.Tail())
}

// shift moves every segment except the head onto its predecessor.
// It returns true if next equals a segment before it is overwritten, which
// means the new head runs into the body.
func (s *Snake) shift(next core.Point) bool {
	hit := false
	for i := len(s.Body) - 1; i > 0; i-- {
		if s.Body[i-1] == next {
			hit = true
		}
		s.Body[i] = s.Body[i-1]
	}
	return hit
}
