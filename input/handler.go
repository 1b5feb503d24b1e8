package input

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit-recall/engine"
	"github.com/lixenwraith/orbit-recall/render"
)

// Controller receives session commands; engine.Driver implements it
type Controller interface {
	Reveal(show bool)
	Start() bool
	Click(id int) engine.ClickResult
	NextLevel() bool
	Reset()
}

// Toggles are optional callbacks for non-session intents
type Toggles struct {
	Mute  func()
	Stats func()
}

// InputHandler translates terminal events into controller commands
// Not safe for concurrent use; call from the event loop only
type InputHandler struct {
	ctrl    Controller
	keys    *KeyTable
	toggles Toggles
	logger  *zap.Logger

	layout *render.Layout

	buttons     tcell.ButtonMask // Mask of the previous mouse event
	mouseReveal bool             // Reveal held by the mouse button
	keyReveal   bool             // Reveal toggled on by the keyboard
}

// NewInputHandler creates a handler with the default key table
func NewInputHandler(ctrl Controller, toggles Toggles, logger *zap.Logger) *InputHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InputHandler{
		ctrl:    ctrl,
		keys:    DefaultKeyTable(),
		toggles: toggles,
		logger:  logger,
	}
}

// SetLayout installs the geometry of the last drawn frame for hit testing
func (h *InputHandler) SetLayout(l *render.Layout) {
	h.layout = l
}

// HandleEvent processes one terminal event and returns false when the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.HandleMouse(x, y, ev.Buttons())
		return true
	}
	return true
}

// HandleKey resolves and applies a key press
func (h *InputHandler) HandleKey(key tcell.Key, r rune) bool {
	intent := h.keys.Resolve(key, r)
	if intent.Type == IntentNone {
		return true
	}
	h.logger.Debug("key intent", zap.Stringer("intent", intent.Type), zap.Int("circle", intent.Circle))

	switch intent.Type {
	case IntentQuit:
		return false
	case IntentToggleMute:
		if h.toggles.Mute != nil {
			h.toggles.Mute()
		}
	case IntentToggleStats:
		if h.toggles.Stats != nil {
			h.toggles.Stats()
		}
	case IntentToggleReveal:
		h.toggleReveal()
	case IntentStart:
		h.start()
	case IntentPrimary:
		h.primary()
	case IntentNextLevel:
		h.ctrl.NextLevel()
	case IntentReset:
		h.reset()
	case IntentClickCircle:
		h.click(intent.Circle)
	}
	return true
}

// HandleMouse tracks the primary button and acts on press and release edges
func (h *InputHandler) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	wasDown := h.buttons&tcell.Button1 != 0
	isDown := buttons&tcell.Button1 != 0
	h.buttons = buttons

	switch {
	case isDown && !wasDown:
		h.press(x, y)
	case !isDown && wasDown:
		h.releaseReveal()
	case isDown && h.mouseReveal:
		// Dragging off the button counts as a release
		if h.layout == nil || h.layout.ButtonAt(x, y) != render.ButtonReveal {
			h.releaseReveal()
		}
	}
}

func (h *InputHandler) press(x, y int) {
	if h.layout == nil {
		return
	}

	switch h.layout.ButtonAt(x, y) {
	case render.ButtonReveal:
		h.mouseReveal = true
		h.ctrl.Reveal(true)
		return
	case render.ButtonPrimary:
		h.primary()
		return
	case render.ButtonReset:
		h.reset()
		return
	}

	if id, ok := h.layout.CircleAt(x, y); ok {
		h.click(id)
	}
}

func (h *InputHandler) releaseReveal() {
	if !h.mouseReveal {
		return
	}
	h.mouseReveal = false
	h.keyReveal = false
	h.ctrl.Reveal(false)
}

// toggleReveal stands in for press and hold; terminals report no key release
func (h *InputHandler) toggleReveal() {
	if h.keyReveal {
		h.keyReveal = false
		h.ctrl.Reveal(false)
		return
	}
	if h.layout != nil && !h.layout.Enabled[render.ButtonReveal] {
		return
	}
	h.keyReveal = true
	h.ctrl.Reveal(true)
}

// primary runs whatever the primary button shows in the last layout
func (h *InputHandler) primary() {
	action := render.PrimaryStart
	if h.layout != nil {
		action = h.layout.Primary
	}

	switch action {
	case render.PrimaryNext:
		h.ctrl.NextLevel()
	case render.PrimaryPlayAgain:
		h.reset()
	default:
		h.start()
	}
}

func (h *InputHandler) start() {
	if h.ctrl.Start() {
		h.keyReveal = false
		h.mouseReveal = false
	}
}

func (h *InputHandler) reset() {
	h.keyReveal = false
	h.mouseReveal = false
	h.ctrl.Reset()
}

func (h *InputHandler) click(id int) {
	res := h.ctrl.Click(id)
	if res.Accepted {
		h.logger.Debug("circle clicked", zap.Int("circle", id), zap.Bool("correct", res.Correct))
	}
}
