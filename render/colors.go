package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orbit-recall/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 230) // Near white
	RgbTextMuted  = tcell.NewRGBColor(140, 140, 155) // Gray for secondary text
	RgbFieldFrame = tcell.NewRGBColor(90, 92, 110)   // Playfield border

	RgbCircleIdle   = tcell.NewRGBColor(59, 130, 246) // Blue
	RgbCircleTarget = tcell.NewRGBColor(250, 204, 21) // Yellow, revealed target
	RgbCircleFound  = tcell.NewRGBColor(34, 197, 94)  // Green, clicked target
	RgbCircleMiss   = tcell.NewRGBColor(239, 68, 68)  // Red, clicked non-target

	RgbTotalScore    = tcell.NewRGBColor(202, 138, 4)  // Dark yellow
	RgbProgressFill  = tcell.NewRGBColor(59, 130, 246) // Blue
	RgbProgressTrack = tcell.NewRGBColor(60, 62, 80)   // Dark gray
	RgbPerformance   = tcell.NewRGBColor(34, 197, 94)  // Green

	RgbButtonBg        = tcell.NewRGBColor(70, 72, 90)    // Neutral button
	RgbButtonPrimaryBg = tcell.NewRGBColor(37, 99, 235)   // Blue start/retry
	RgbButtonNextBg    = tcell.NewRGBColor(22, 163, 74)   // Green next level
	RgbButtonActiveBg  = tcell.NewRGBColor(120, 122, 145) // Held reveal button

	RgbMessageHint    = tcell.NewRGBColor(253, 224, 71) // Yellow hint text
	RgbMessageWarning = tcell.NewRGBColor(250, 204, 21) // Time's up
	RgbMessageSuccess = tcell.NewRGBColor(74, 222, 128) // Target found
)

// Base styles
var (
	StyleDefault = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleMuted   = StyleDefault.Foreground(RgbTextMuted)
	StyleFrame   = StyleDefault.Foreground(RgbFieldFrame)
)

// CircleColor returns the fill color of a circle
// Clicked state wins over the reveal highlight
func CircleColor(c engine.Circle, showTarget bool) tcell.Color {
	switch {
	case c.Clicked && c.IsTarget:
		return RgbCircleFound
	case c.Clicked:
		return RgbCircleMiss
	case c.IsTarget && showTarget:
		return RgbCircleTarget
	default:
		return RgbCircleIdle
	}
}

// Dim blends color toward the background by factor in [0,1]
func Dim(color tcell.Color, factor float64) tcell.Color {
	if factor <= 0 {
		return color
	}
	if factor > 1 {
		factor = 1
	}
	return blend(color, RgbBackground, factor)
}

func blend(from, to tcell.Color, t float64) tcell.Color {
	fr, fg, fb := from.RGB()
	tr, tg, tb := to.RGB()

	a := colorful.Color{R: float64(fr) / 255, G: float64(fg) / 255, B: float64(fb) / 255}
	b := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}

	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
