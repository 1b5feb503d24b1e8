package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/engine"
)

// rendererEntry pairs a renderer with its priority
type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	frame     int64
	layout    *Layout
}

// NewRenderOrchestrator creates an orchestrator drawing onto screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer with the given priority
// Renderers are sorted by priority on registration; equal priorities keep insertion order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority}

	i := len(o.renderers)
	o.renderers = append(o.renderers, entry)
	for i > 0 && o.renderers[i-1].priority > priority {
		o.renderers[i] = o.renderers[i-1]
		i--
	}
	o.renderers[i] = entry
}

// RenderFrame draws session and returns the layout used for hit testing
func (o *RenderOrchestrator) RenderFrame(session engine.Session) *Layout {
	width, height := o.screen.Size()
	o.frame++

	layout := ComputeLayout(width, height, session)
	ctx := RenderContext{
		Session: session,
		Layout:  layout,
		Width:   width,
		Height:  height,
		Frame:   o.frame,
	}

	o.screen.SetStyle(StyleDefault)
	o.screen.Clear()

	for _, entry := range o.renderers {
		if toggle, ok := entry.renderer.(VisibilityToggle); ok && !toggle.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
	o.layout = layout
	return layout
}

// Layout returns the layout of the last rendered frame, nil before the first
func (o *RenderOrchestrator) Layout() *Layout {
	return o.layout
}
