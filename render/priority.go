package render

// RenderPriority determines render order. Lower values render first.
type RenderPriority int

const (
	PriorityBackground RenderPriority = 0
	PriorityField      RenderPriority = 100
	PriorityEntities   RenderPriority = 200
	PriorityUI         RenderPriority = 400
	PriorityOverlay    RenderPriority = 500
	PriorityDebug      RenderPriority = 1000
)
