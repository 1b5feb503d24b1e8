package renderers

import (
	"github.com/lixenwraith/orbit-recall/render"
	"github.com/lixenwraith/orbit-recall/status"
)

// Pipeline registers the standard renderer set on o and returns the stats renderer for toggling
func Pipeline(o *render.RenderOrchestrator, registry *status.Registry, showStats bool) *StatsRenderer {
	stats := NewStatsRenderer(registry, showStats)

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{NewFieldRenderer(), render.PriorityField},
		{NewCirclesRenderer(), render.PriorityEntities},
		{NewHUDRenderer(), render.PriorityUI},
		{NewControlsRenderer(), render.PriorityUI},
		{NewCompletionRenderer(), render.PriorityOverlay},
		{stats, render.PriorityDebug},
	}

	for _, def := range rendererList {
		o.Register(def.renderer, def.priority)
	}
	return stats
}
