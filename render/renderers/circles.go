package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/render"
)

const circleGlyph = '●'

// CirclesRenderer draws every circle at its layout cell
// Once the session accepts clicks, circles 1-9 show their key digit instead of the glyph
type CirclesRenderer struct{}

// NewCirclesRenderer creates a circles renderer
func NewCirclesRenderer() *CirclesRenderer {
	return &CirclesRenderer{}
}

// IsVisible hides circles on the completion screen
func (c *CirclesRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.Layout.Completed
}

// Render implements SystemRenderer
func (c *CirclesRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	s := ctx.Session
	labelled := s.AcceptsClicks()

	for i, circle := range s.Circles {
		if i >= len(ctx.Layout.Circles) {
			break
		}
		cell := ctx.Layout.Circles[i]
		style := render.StyleDefault.Foreground(render.CircleColor(circle, s.ShowTarget))

		glyph := circleGlyph
		if labelled && !circle.Clicked && circle.ID < 9 {
			glyph = rune('1' + circle.ID)
			style = style.Bold(true)
		}
		screen.SetContent(cell.X, cell.Y, glyph, nil, style)
	}
}
