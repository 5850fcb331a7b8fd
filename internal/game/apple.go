package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultMaxAppleAttempts bounds random sampling before falling back to a scan.
const DefaultMaxAppleAttempts = 64

// Spawner picks apple positions.
type Spawner struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewSpawner creates a spawner. A non-positive maxAttempts uses the default.
func NewSpawner(rng *rand.Rand, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAppleAttempts
	}
	return &Spawner{rng: rng, maxAttempts: maxAttempts}
}

// Place returns a free apple cell: inside [0, MaxX) x [0, MaxY), with an even
// x-coordinate and not on any occupied point. Random sampling is tried first;
// if it keeps missing, the grid is scanned row by row. The second result is
// false only when no free cell exists.
func (s *Spawner) Place(f core.Field, occupied func(core.Point) bool) (core.Point, bool) {
	maxX, maxY := f.MaxX(), f.MaxY()
	if maxX <= 0 || maxY <= 0 {
		return core.Point{}, false
	}

	for i := 0; i < s.maxAttempts; i++ {
		p := core.Point{
			X: math.Floor(s.rng.Float64() * maxX),
			Y: math.Floor(s.rng.Float64() * maxY),
		}
		if math.Mod(p.X, 2) != 0 {
			p.X++
		}
		if ValidAppleCell(f, p) && !occupied(p) {
			return p, true
		}
	}

	return scanFreeCell(f, occupied)
}

// scanFreeCell returns the first free cell in row-major order.
func scanFreeCell(f core.Field, occupied func(core.Point) bool) (core.Point, bool) {
	for y := 0.0; y < f.MaxY(); y++ {
		for x := 0.0; x < f.MaxX(); x += core.StepX {
			p := core.Point{X: x, Y: y}
			if !occupied(p) {
				return p, true
			}
		}
	}
	return core.Point{}, false
}

// ValidAppleCell reports whether p satisfies the apple placement bounds.
func ValidAppleCell(f core.Field, p core.Point) bool {
	return p.X >= 0 && p.X < f.MaxX() &&
		p.Y >= 0 && p.Y < f.MaxY() &&
		math.Mod(p.X, 2) == 0
}
