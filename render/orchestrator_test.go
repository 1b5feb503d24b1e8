package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordingRenderer struct {
	name    string
	order   *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	*r.order = append(*r.order, r.name)
}

func (r *recordingRenderer) IsVisible(ctx RenderContext) bool {
	return r.visible
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	o := NewRenderOrchestrator(screen)

	var order []string
	o.Register(&recordingRenderer{name: "ui", order: &order, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "field", order: &order, visible: true}, PriorityField)
	o.Register(&recordingRenderer{name: "debug", order: &order, visible: true}, PriorityDebug)
	o.Register(&recordingRenderer{name: "ui2", order: &order, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "hidden", order: &order, visible: false}, PriorityEntities)

	layout := o.RenderFrame(newSession())

	want := []string{"field", "ui", "ui2", "debug"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], order[i])
		}
	}

	if layout == nil || o.Layout() != layout {
		t.Error("Expected RenderFrame layout to be retained")
	}
	if layout.Width != 80 || layout.Height != 30 {
		t.Errorf("Expected 80x30 layout, got %dx%d", layout.Width, layout.Height)
	}
}

func TestDrawTextClipsToScreen(t *testing.T) {
	screen := newTestScreen(t, 5, 1)

	next := DrawText(screen, 3, 0, StyleDefault, "abcd")
	if next != 7 {
		t.Errorf("Expected next column 7, got %d", next)
	}

	tests := []struct {
		x    int
		want rune
	}{
		{3, 'a'},
		{4, 'b'},
	}
	for _, tt := range tests {
		r, _, _, _ := screen.GetContent(tt.x, 0)
		if r != tt.want {
			t.Errorf("Column %d: expected %q, got %q", tt.x, tt.want, r)
		}
	}

	// Off-screen rows are ignored
	DrawText(screen, 0, 3, StyleDefault, "zz")
}

func TestDrawBox(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	DrawBox(screen, Rect{X: 1, Y: 1, W: 4, H: 3}, StyleFrame)

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 1, tcell.RuneULCorner},
		{4, 1, tcell.RuneURCorner},
		{1, 3, tcell.RuneLLCorner},
		{4, 3, tcell.RuneLRCorner},
		{2, 1, tcell.RuneHLine},
		{1, 2, tcell.RuneVLine},
	}
	for _, tt := range tests {
		r, _, _, _ := screen.GetContent(tt.x, tt.y)
		if r != tt.want {
			t.Errorf("Cell (%d,%d): expected %q, got %q", tt.x, tt.y, tt.want, r)
		}
	}
}
