package render

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/orbit-recall/engine"
)

func newSession() engine.Session {
	return engine.NewSession(rand.New(rand.NewSource(1)))
}

func TestComputeLayoutGeometry(t *testing.T) {
	l := ComputeLayout(80, 30, newSession())

	if l.Field != (Rect{X: 17, Y: 3, W: 46, H: 23}) {
		t.Errorf("Expected field {17 3 46 23}, got %+v", l.Field)
	}
	if l.ButtonsY != 26 || l.ClicksY != 27 || l.MessageY != 28 || l.StatsY != 29 {
		t.Errorf("Expected footer rows 26..29, got %d %d %d %d", l.ButtonsY, l.ClicksY, l.MessageY, l.StatsY)
	}

	tests := []struct {
		button Button
		want   Rect
	}{
		{ButtonReveal, Rect{X: 17, Y: 26, W: 13, H: 1}},
		{ButtonPrimary, Rect{X: 31, Y: 26, W: 7, H: 1}},
		{ButtonReset, Rect{X: 39, Y: 26, W: 7, H: 1}},
	}
	for _, tt := range tests {
		if got := l.Buttons[tt.button]; got != tt.want {
			t.Errorf("Button %d: expected %+v, got %+v", tt.button, tt.want, got)
		}
	}
}

func TestComputeLayoutSmallScreen(t *testing.T) {
	l := ComputeLayout(20, 8, newSession())

	if l.Field.W != 20 {
		t.Errorf("Expected field clamped to screen width 20, got %d", l.Field.W)
	}
	if l.Field.H != minFieldHeight {
		t.Errorf("Expected minimum field height %d, got %d", minFieldHeight, l.Field.H)
	}
	if l.Field.X != 0 {
		t.Errorf("Expected field at column 0, got %d", l.Field.X)
	}
}

func TestFieldCell(t *testing.T) {
	l := ComputeLayout(80, 30, newSession())

	tests := []struct {
		name   string
		px, py float64
		wantX  int
		wantY  int
	}{
		{"Min corner", 5, 5, 18, 4},
		{"Max corner", 95, 95, 61, 24},
		{"Centre", 50, 50, 40, 14},
		{"Below range clamps", -10, 0, 18, 4},
		{"Above range clamps", 200, 120, 61, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := l.FieldCell(tt.px, tt.py)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestPrimaryActionByPhase(t *testing.T) {
	base := newSession()

	ready := base.Reveal(true).Reveal(false)
	expired := ready
	expired.TimeExpired = true
	found := expired
	found.TargetFound = true
	playing, _ := ready.Start()

	tests := []struct {
		name        string
		session     engine.Session
		wantPrimary PrimaryAction
		wantEnabled bool
		wantReveal  bool
	}{
		{"Awaiting reveal", base, PrimaryStart, false, true},
		{"Ready", ready, PrimaryStart, true, true},
		{"Playing", playing, PrimaryStart, false, false},
		{"Expired", expired, PrimaryRetry, true, false},
		{"Found", found, PrimaryNext, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(80, 30, tt.session)
			if l.Primary != tt.wantPrimary {
				t.Errorf("Expected primary %q, got %q", tt.wantPrimary.Label(), l.Primary.Label())
			}
			if l.Enabled[ButtonPrimary] != tt.wantEnabled {
				t.Errorf("Expected primary enabled=%v, got %v", tt.wantEnabled, l.Enabled[ButtonPrimary])
			}
			if l.Enabled[ButtonReveal] != tt.wantReveal {
				t.Errorf("Expected reveal enabled=%v, got %v", tt.wantReveal, l.Enabled[ButtonReveal])
			}
			if !l.Enabled[ButtonReset] {
				t.Error("Expected reset always enabled")
			}
		})
	}
}

func TestButtonAt(t *testing.T) {
	l := ComputeLayout(80, 30, newSession())

	tests := []struct {
		x, y int
		want Button
	}{
		{17, 26, ButtonReveal},
		{29, 26, ButtonReveal},
		{30, 26, ButtonNone}, // Gap
		{31, 26, ButtonPrimary},
		{45, 26, ButtonReset},
		{46, 26, ButtonNone},
		{20, 25, ButtonNone},
	}
	for _, tt := range tests {
		if got := l.ButtonAt(tt.x, tt.y); got != tt.want {
			t.Errorf("ButtonAt(%d,%d): expected %d, got %d", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestCircleAt(t *testing.T) {
	l := &Layout{Circles: []CircleCell{
		{ID: 0, X: 10, Y: 10},
		{ID: 1, X: 13, Y: 10},
	}}

	tests := []struct {
		name   string
		x, y   int
		wantID int
		wantOK bool
	}{
		{"Exact", 10, 10, 0, true},
		{"Two columns slack", 12, 10, 1, true},
		{"One row slack", 10, 11, 0, true},
		{"Nearest wins", 11, 10, 0, true},
		{"Diagonal miss", 12, 11, 0, false},
		{"Far miss", 30, 30, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := l.CircleAt(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("Expected hit=%v, got %v (id %d)", tt.wantOK, ok, id)
			}
			if ok && id != tt.wantID {
				t.Errorf("Expected circle %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestCompletionLayout(t *testing.T) {
	s := newSession()
	s.GameCompleted = true

	l := ComputeLayout(80, 30, s)
	if !l.Completed {
		t.Fatal("Expected completed layout")
	}
	if l.Primary != PrimaryPlayAgain {
		t.Errorf("Expected Play Again, got %q", l.Primary.Label())
	}
	if !l.Buttons[ButtonReveal].Empty() || !l.Buttons[ButtonReset].Empty() {
		t.Error("Expected only the primary button on the completion screen")
	}
	if len(l.Circles) != 0 {
		t.Errorf("Expected no circle cells, got %d", len(l.Circles))
	}
	b := l.Buttons[ButtonPrimary]
	if got := l.ButtonAt(b.X, b.Y); got != ButtonPrimary {
		t.Errorf("Expected primary button hit at %d,%d, got %d", b.X, b.Y, got)
	}
}
