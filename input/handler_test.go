package input

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-recall/engine"
	"github.com/lixenwraith/orbit-recall/render"
)

// fakeController records commands and applies them to a real session
type fakeController struct {
	session engine.Session
	rng     *rand.Rand
	calls   []string
}

func newFakeController() *fakeController {
	rng := rand.New(rand.NewSource(3))
	return &fakeController{session: engine.NewSession(rng), rng: rng}
}

func (f *fakeController) Reveal(show bool) {
	if show {
		f.calls = append(f.calls, "reveal")
	} else {
		f.calls = append(f.calls, "hide")
	}
	f.session = f.session.Reveal(show)
}

func (f *fakeController) Start() bool {
	f.calls = append(f.calls, "start")
	var ok bool
	f.session, ok = f.session.Start()
	return ok
}

func (f *fakeController) Click(id int) engine.ClickResult {
	f.calls = append(f.calls, "click:"+string(rune('0'+id)))
	var res engine.ClickResult
	f.session, res = f.session.Click(id)
	return res
}

func (f *fakeController) NextLevel() bool {
	f.calls = append(f.calls, "next")
	var ok bool
	f.session, ok = f.session.NextLevel(f.rng)
	return ok
}

func (f *fakeController) Reset() {
	f.calls = append(f.calls, "reset")
	f.session = f.session.Reset(f.rng)
}

func (f *fakeController) layout() *render.Layout {
	return render.ComputeLayout(80, 30, f.session)
}

func newHandler(f *fakeController) *InputHandler {
	h := NewInputHandler(f, Toggles{}, nil)
	h.SetLayout(f.layout())
	return h
}

func expectCalls(t *testing.T, f *fakeController, want ...string) {
	t.Helper()
	if len(want) == 0 {
		want = nil
	}
	if !reflect.DeepEqual(f.calls, want) {
		t.Errorf("Expected calls %v, got %v", want, f.calls)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"Escape", tcell.KeyEscape, 0},
		{"Ctrl+C", tcell.KeyCtrlC, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeController()
			h := newHandler(f)
			if h.HandleKey(tt.key, tt.r) {
				t.Error("Expected quit key to end the loop")
			}
		})
	}

	f := newFakeController()
	if !newHandler(f).HandleKey(tcell.KeyRune, 'x') {
		t.Error("Expected unbound key to keep running")
	}
	expectCalls(t, f)
}

func TestKeyboardRevealToggle(t *testing.T) {
	f := newFakeController()
	h := newHandler(f)

	h.HandleKey(tcell.KeyRune, 't')
	if !f.session.ShowTarget {
		t.Fatal("Expected target shown after first toggle")
	}
	h.HandleKey(tcell.KeyRune, 't')
	if f.session.ShowTarget {
		t.Error("Expected target hidden after second toggle")
	}
	if !f.session.HasSeenTarget {
		t.Error("Expected target marked as seen")
	}
	expectCalls(t, f, "reveal", "hide")
}

func TestRevealToggleIgnoredWhileDisabled(t *testing.T) {
	f := newFakeController()
	f.session = f.session.Reveal(true).Reveal(false)
	f.session, _ = f.session.Start()
	h := newHandler(f)

	h.HandleKey(tcell.KeyRune, 't')
	expectCalls(t, f)
}

func TestStartClearsKeyboardReveal(t *testing.T) {
	f := newFakeController()
	h := newHandler(f)

	h.HandleKey(tcell.KeyRune, 't')
	h.HandleKey(tcell.KeyRune, 's')
	if !f.session.IsPlaying {
		t.Fatal("Expected attempt started")
	}
	if h.keyReveal {
		t.Error("Expected keyboard reveal cleared by start")
	}
	if f.session.ShowTarget {
		t.Error("Expected target hidden while playing")
	}
}

func TestSessionKeys(t *testing.T) {
	f := newFakeController()
	h := newHandler(f)

	h.HandleKey(tcell.KeyRune, 'n')
	h.HandleKey(tcell.KeyRune, 'r')
	h.HandleKey(tcell.KeyRune, '3')
	expectCalls(t, f, "next", "reset", "click:2")
}

func TestEnterFollowsPrimaryButton(t *testing.T) {
	f := newFakeController()
	f.session = f.session.Reveal(true).Reveal(false)
	f.session, _ = f.session.Start()
	for f.session.IsPlaying {
		f.session = f.session.Tick()
	}
	target, _ := f.session.Target()
	f.session, _ = f.session.Click(target.ID)

	h := newHandler(f)
	h.HandleKey(tcell.KeyEnter, 0)
	expectCalls(t, f, "next")
	if f.session.Level != 2 {
		t.Errorf("Expected level 2, got %d", f.session.Level)
	}

	f.calls = nil
	f.session.GameCompleted = true
	h.SetLayout(f.layout())
	h.HandleKey(tcell.KeyEnter, 0)
	expectCalls(t, f, "reset")
}

func TestMouseRevealHoldAndRelease(t *testing.T) {
	f := newFakeController()
	h := newHandler(f)
	b := h.layout.Buttons[render.ButtonReveal]

	h.HandleMouse(b.X, b.Y, tcell.Button1)
	if !f.session.ShowTarget {
		t.Fatal("Expected target shown while button held")
	}

	// Motion inside the button keeps it held
	h.HandleMouse(b.X+1, b.Y, tcell.Button1)
	if !f.session.ShowTarget {
		t.Error("Expected target still shown")
	}

	h.HandleMouse(b.X+1, b.Y, tcell.ButtonNone)
	if f.session.ShowTarget {
		t.Error("Expected target hidden on release")
	}
	expectCalls(t, f, "reveal", "hide")
}

func TestMouseRevealLeave(t *testing.T) {
	f := newFakeController()
	h := newHandler(f)
	b := h.layout.Buttons[render.ButtonReveal]

	h.HandleMouse(b.X, b.Y, tcell.Button1)
	h.HandleMouse(b.X, b.Y-5, tcell.Button1)
	if f.session.ShowTarget {
		t.Error("Expected target hidden when the pointer leaves the button")
	}

	// The later release does not send a second hide
	h.HandleMouse(b.X, b.Y-5, tcell.ButtonNone)
	expectCalls(t, f, "reveal", "hide")
}

func TestMouseButtons(t *testing.T) {
	f := newFakeController()
	f.session = f.session.Reveal(true).Reveal(false)
	h := newHandler(f)

	p := h.layout.Buttons[render.ButtonPrimary]
	h.HandleMouse(p.X, p.Y, tcell.Button1)
	h.HandleMouse(p.X, p.Y, tcell.ButtonNone)
	if !f.session.IsPlaying {
		t.Error("Expected primary button to start the attempt")
	}

	r := h.layout.Buttons[render.ButtonReset]
	h.HandleMouse(r.X, r.Y, tcell.Button1)
	h.HandleMouse(r.X, r.Y, tcell.ButtonNone)
	expectCalls(t, f, "start", "reset")
}

func TestMousePressClicksCircle(t *testing.T) {
	f := newFakeController()
	f.session = f.session.Reveal(true).Reveal(false)
	f.session, _ = f.session.Start()
	for f.session.IsPlaying {
		f.session = f.session.Tick()
	}
	h := newHandler(f)

	target, _ := f.session.Target()
	var cell render.CircleCell
	for _, c := range h.layout.Circles {
		if c.ID == target.ID {
			cell = c
		}
	}

	h.HandleMouse(cell.X, cell.Y, tcell.Button1)
	if !f.session.TargetFound {
		t.Errorf("Expected target found after clicking its cell, calls %v", f.calls)
	}

	// Holding the button does not repeat the click
	h.HandleMouse(cell.X, cell.Y, tcell.Button1)
	if len(f.calls) != 1 {
		t.Errorf("Expected a single click, got %v", f.calls)
	}
}

func TestToggleCallbacks(t *testing.T) {
	var mute, stats int
	f := newFakeController()
	h := NewInputHandler(f, Toggles{
		Mute:  func() { mute++ },
		Stats: func() { stats++ },
	}, nil)

	h.HandleKey(tcell.KeyRune, 'm')
	h.HandleKey(tcell.KeyCtrlS, 0)
	h.HandleKey(tcell.KeyCtrlS, 0)
	if mute != 1 || stats != 2 {
		t.Errorf("Expected mute=1 stats=2, got mute=%d stats=%d", mute, stats)
	}
	expectCalls(t, f)
}

func TestHandleEventDispatch(t *testing.T) {
	f := newFakeController()
	h := newHandler(f)

	if h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q event to quit")
	}
	if !h.HandleEvent(tcell.NewEventResize(100, 40)) {
		t.Error("Expected resize to keep running")
	}

	b := h.layout.Buttons[render.ButtonReveal]
	h.HandleEvent(tcell.NewEventMouse(b.X, b.Y, tcell.Button1, tcell.ModNone))
	if !f.session.ShowTarget {
		t.Error("Expected mouse event routed to reveal")
	}
}

func TestResolveDigits(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		r    rune
		want Intent
	}{
		{'1', Intent{Type: IntentClickCircle, Circle: 0}},
		{'9', Intent{Type: IntentClickCircle, Circle: 8}},
		{'0', Intent{Type: IntentNone}},
		{'t', Intent{Type: IntentToggleReveal}},
	}
	for _, tt := range tests {
		if got := kt.Resolve(tcell.KeyRune, tt.r); got != tt.want {
			t.Errorf("Resolve(%q): expected %+v, got %+v", tt.r, tt.want, got)
		}
	}
}
