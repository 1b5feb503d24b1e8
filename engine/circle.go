package engine

import (
	"math"

	"github.com/lixenwraith/orbit-recall/constants"
)

// Rand is the random source used by layout and motion
// *math/rand.Rand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Circle is one moving entity on the playfield
// X, Y are percentages of the playfield; DX, DY are per reference frame
type Circle struct {
	ID       int
	X, Y     float64
	DX, DY   float64
	IsTarget bool
	Clicked  bool
}

// InitializeLevel lays out the circles of a level evenly on the layout ring
// Exactly one circle is the target; ids run 0..count-1 in layout order
func InitializeLevel(level int, rng Rand) []Circle {
	cfg := LevelFor(level)
	circles := make([]Circle, cfg.CircleCount)
	targetIndex := rng.Intn(cfg.CircleCount)

	for i := range circles {
		angle := float64(i) * math.Pi * 2 / float64(cfg.CircleCount)

		moveAngle := rng.Float64() * math.Pi * 2
		speed := cfg.BaseSpeed * (constants.SpeedVariationMin + rng.Float64()*constants.SpeedVariationRange)

		circles[i] = Circle{
			ID:       i,
			X:        constants.LayoutCenterX + math.Cos(angle)*constants.LayoutRadius,
			Y:        constants.LayoutCenterY + math.Sin(angle)*constants.LayoutRadius,
			DX:       math.Cos(moveAngle) * speed,
			DY:       math.Sin(moveAngle) * speed,
			IsTarget: i == targetIndex,
		}
	}
	return circles
}

// cloneCircles returns an independent copy so transitions never alias their input
func cloneCircles(circles []Circle) []Circle {
	if circles == nil {
		return nil
	}
	out := make([]Circle, len(circles))
	copy(out, circles)
	return out
}
