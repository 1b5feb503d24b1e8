package render

import "github.com/lixenwraith/orbit-recall/engine"

// RenderContext carries the frame being drawn
// Session is a snapshot; renderers never write back to it
type RenderContext struct {
	Session engine.Session
	Layout  *Layout
	Width   int
	Height  int
	Frame   int64
}
