package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/render"
	"github.com/lixenwraith/orbit-recall/status"
)

// StatsRenderer draws the metrics registry on the bottom row
type StatsRenderer struct {
	registry *status.Registry
	enabled  bool
}

// NewStatsRenderer creates a stats renderer, drawn only when enabled
func NewStatsRenderer(registry *status.Registry, enabled bool) *StatsRenderer {
	return &StatsRenderer{registry: registry, enabled: enabled}
}

// SetEnabled toggles the stats line
func (r *StatsRenderer) SetEnabled(enabled bool) {
	r.enabled = enabled
}

// Enabled reports whether the stats line is drawn
func (r *StatsRenderer) Enabled() bool {
	return r.enabled
}

// IsVisible implements VisibilityToggle
func (r *StatsRenderer) IsVisible(ctx render.RenderContext) bool {
	return r.enabled && r.registry != nil && ctx.Height > 0
}

// Render implements SystemRenderer
func (r *StatsRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	metrics := r.registry.Snapshot()
	parts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		parts = append(parts, m.Name+"="+m.Value)
	}

	// Completion screen has no footer so the stats use the last row
	y := ctx.Height - 1
	if !ctx.Layout.Completed && ctx.Layout.StatsY < ctx.Height {
		y = ctx.Layout.StatsY
	}
	render.DrawText(screen, 0, y, render.StyleMuted, strings.Join(parts, " "))
}
