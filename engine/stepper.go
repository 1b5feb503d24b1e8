package engine

import (
	"math"

	"github.com/lixenwraith/orbit-recall/constants"
)

// StepCircles advances every unclicked circle by one frame and returns the new set
// deltaMs is the measured frame time, driftSeconds the clock time feeding the level 5+ wobble
func StepCircles(circles []Circle, level int, deltaMs, driftSeconds float64, rng Rand) []Circle {
	cfg := LevelFor(level)
	factor := deltaMs / constants.ReferenceFrameMs

	// Wobble is shared by all circles in the frame
	var driftX, driftY float64
	if level >= constants.DriftLevel {
		driftX = math.Sin(driftSeconds) * constants.DriftAmplitude
		driftY = math.Cos(driftSeconds) * constants.DriftAmplitude
	}

	out := make([]Circle, len(circles))
	for i, c := range circles {
		if c.Clicked {
			out[i] = c
			continue
		}

		x := c.X + c.DX*factor + driftX
		y := c.Y + c.DY*factor + driftY
		dx, dy := c.DX, c.DY

		if level >= constants.ErraticLevel && rng.Float64() < constants.ErraticChance {
			angle := rng.Float64() * math.Pi * 2
			dx = math.Cos(angle) * cfg.BaseSpeed
			dy = math.Sin(angle) * cfg.BaseSpeed
		}

		// Reflection is decided on the unclamped position
		if x <= constants.FieldMin || x >= constants.FieldMax {
			dx = -dx
		}
		if y <= constants.FieldMin || y >= constants.FieldMax {
			dy = -dy
		}

		c.X = clampField(x)
		c.Y = clampField(y)
		c.DX, c.DY = dx, dy
		out[i] = c
	}
	return out
}

func clampField(v float64) float64 {
	return math.Max(constants.FieldMin, math.Min(constants.FieldMax, v))
}
