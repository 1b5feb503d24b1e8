package render

import "github.com/gdamore/tcell/v2"

// SystemRenderer is implemented by systems that draw to the screen
type SystemRenderer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

// VisibilityToggle is an optional interface for renderers that can be skipped
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
