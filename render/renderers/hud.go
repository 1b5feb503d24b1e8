package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/constants"
	"github.com/lixenwraith/orbit-recall/engine"
	"github.com/lixenwraith/orbit-recall/render"
)

// Player facing messages
const (
	MessageRevealFirst = `Please press "Show Target" first to see your target.`
	MessageTimeUp      = "Time's up! Find the target circle."
	MessageFound       = "Target found!"
)

// HUDRenderer draws level, score, progress, timer, clicks and status messages
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible hides the HUD on the completion screen
func (h *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.Layout.Completed
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	s := ctx.Session
	l := ctx.Layout
	left, right := l.Panel.X, l.Panel.X+l.Panel.W

	// Title row
	x := render.DrawText(screen, left, l.HeaderY, render.StyleDefault.Bold(true),
		fmt.Sprintf("Level %d/%d", s.Level, constants.MaxLevel))
	render.DrawText(screen, x+2, l.HeaderY, render.StyleMuted,
		fmt.Sprintf("%d circles", engine.LevelFor(s.Level).CircleCount))
	render.DrawTextRight(screen, right, l.HeaderY, render.StyleDefault.Foreground(render.RgbTotalScore).Bold(true),
		fmt.Sprintf("%d Total", s.TotalScore))

	drawProgress(screen, render.Rect{X: left, Y: l.ProgressY, W: l.Panel.W, H: 1}, float64(s.Level)/constants.MaxLevel)

	render.DrawText(screen, left, l.TimerY, render.StyleDefault, fmt.Sprintf("Time: %ds", s.TimeLeft))
	render.DrawTextRight(screen, right, l.TimerY, render.StyleDefault, fmt.Sprintf("Level Points: %d", s.LevelScore))

	render.DrawText(screen, left, l.ClicksY, render.StyleMuted, fmt.Sprintf("Clicks: %d", s.Clicks))

	if msg, style, ok := statusMessage(s); ok {
		render.DrawText(screen, left, l.MessageY, style, msg)
	}
}

// statusMessage picks the single message shown under the controls
func statusMessage(s engine.Session) (string, tcell.Style, bool) {
	switch {
	case s.TargetFound:
		return fmt.Sprintf("%s  Level Points: %d", MessageFound, s.LevelScore), render.StyleDefault.Foreground(render.RgbMessageSuccess), true
	case s.TimeExpired:
		return MessageTimeUp, render.StyleDefault.Foreground(render.RgbMessageWarning), true
	case !s.HasSeenTarget && !s.IsPlaying:
		return MessageRevealFirst, render.StyleDefault.Foreground(render.RgbMessageHint), true
	default:
		return "", render.StyleDefault, false
	}
}

func drawProgress(screen tcell.Screen, r render.Rect, ratio float64) {
	filled := int(ratio * float64(r.W))
	fill := render.StyleDefault.Foreground(render.RgbProgressFill)
	track := render.StyleDefault.Foreground(render.RgbProgressTrack)
	for i := 0; i < r.W; i++ {
		style := track
		if i < filled {
			style = fill
		}
		screen.SetContent(r.X+i, r.Y, '▬', nil, style)
	}
}
