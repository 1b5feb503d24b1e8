package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/render"
)

// FieldRenderer draws the playfield border
type FieldRenderer struct{}

// NewFieldRenderer creates a playfield renderer
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// IsVisible hides the field on the completion screen
func (f *FieldRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.Layout.Completed
}

// Render implements SystemRenderer
func (f *FieldRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	render.DrawBox(screen, ctx.Layout.Field, render.StyleFrame)
}
