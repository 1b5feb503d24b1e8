package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/render"
)

const disabledDim = 0.6

// ControlsRenderer draws the button row, or the single Play Again button when completed
type ControlsRenderer struct{}

// NewControlsRenderer creates a controls renderer
func NewControlsRenderer() *ControlsRenderer {
	return &ControlsRenderer{}
}

// Render implements SystemRenderer
func (c *ControlsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	l := ctx.Layout
	for _, b := range []render.Button{render.ButtonReveal, render.ButtonPrimary, render.ButtonReset} {
		rect := l.Buttons[b]
		if rect.Empty() {
			continue
		}
		style := buttonStyle(l, b)
		render.FillRect(screen, rect, ' ', style)
		render.DrawText(screen, rect.X, rect.Y, style, "["+l.Label(b)+"]")
	}
}

func buttonStyle(l *render.Layout, b render.Button) tcell.Style {
	bg := render.RgbButtonBg
	if b == render.ButtonPrimary {
		bg = render.RgbButtonPrimaryBg
		if l.Primary == render.PrimaryNext {
			bg = render.RgbButtonNextBg
		}
	}
	if l.Pressed[b] {
		bg = render.RgbButtonActiveBg
	}

	fg := render.RgbText
	if !l.Enabled[b] {
		bg = render.Dim(bg, disabledDim)
		fg = render.Dim(fg, disabledDim)
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg)
}
