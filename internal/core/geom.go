// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Step sizes per tick. A terminal cell is roughly twice as tall as it is wide,
// so horizontal movement covers two columns to keep the visual speed even.
const (
	StepX = 2.0
	StepY = 1.0
)

// Point is a position in field-local units.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction represents a movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var opposites = [...]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

var stepVectors = [...]Point{
	DirUp:    {X: 0, Y: -StepY},
	DirDown:  {X: 0, Y: StepY},
	DirLeft:  {X: -StepX, Y: 0},
	DirRight: {X: StepX, Y: 0},
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// IsOpposite returns true if other points exactly the other way.
func (d Direction) IsOpposite(other Direction) bool {
	return opposites[d] == other
}

// Vector returns the offset applied to the head for one tick in this direction.
func (d Direction) Vector() Point {
	return stepVectors[d]
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DefaultMargin is the space reserved for the border drawn around the field.
const DefaultMargin = 3

// Field is the playable area derived from the viewport size.
// Valid head positions lie in [0, MaxX()] x [0, MaxY()].
type Field struct {
	Width  float64
	Height float64
	Margin float64
}

// NewField creates a field from a viewport size in cells.
func NewField(width, height, margin int) Field {
	return Field{
		Width:  float64(width),
		Height: float64(height),
		Margin: float64(margin),
	}
}

// MaxX returns the largest x-coordinate the head may occupy.
func (f Field) MaxX() float64 {
	return f.Width - f.Margin
}

// MaxY returns the largest y-coordinate the head may occupy.
func (f Field) MaxY() float64 {
	return f.Height - f.Margin
}

// OutOfBounds returns true if the head at p would hit the wall.
func (f Field) OutOfBounds(p Point) bool {
	return p.X < 0 || p.X > f.MaxX() || p.Y < 0 || p.Y > f.MaxY()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
