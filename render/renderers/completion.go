package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/constants"
	"github.com/lixenwraith/orbit-recall/render"
)

// CompletionRenderer draws the end of game summary card
type CompletionRenderer struct{}

// NewCompletionRenderer creates a completion renderer
func NewCompletionRenderer() *CompletionRenderer {
	return &CompletionRenderer{}
}

// IsVisible returns true once every level is won
func (c *CompletionRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Layout.Completed
}

// Render implements SystemRenderer
func (c *CompletionRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	s := ctx.Session
	card := ctx.Layout.Panel
	y := card.Y

	render.DrawCentered(screen, card, y, render.StyleDefault.Bold(true), "🎉 Congratulations! 🎉")
	render.DrawCentered(screen, card, y+1, render.StyleDefault, "You've mastered all levels!")

	render.DrawCentered(screen, card, y+3, render.StyleDefault.Bold(true), "Total Score")
	render.DrawCentered(screen, card, y+4, render.StyleDefault.Foreground(render.RgbProgressFill).Bold(true),
		fmt.Sprintf("%d", s.TotalScore))
	render.DrawCentered(screen, card, y+5, render.StyleMuted,
		fmt.Sprintf("out of %d possible points", constants.MaxTotalScore))

	render.DrawCentered(screen, card, y+6, render.StyleDefault.Bold(true), "Performance")
	render.DrawCentered(screen, card, y+7, render.StyleDefault.Foreground(render.RgbPerformance).Bold(true),
		fmt.Sprintf("%d%%", s.Performance()))
}
