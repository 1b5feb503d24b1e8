package render

import (
	"math"

	"github.com/lixenwraith/orbit-recall/constants"
	"github.com/lixenwraith/orbit-recall/engine"
)

// Layout sizing
const (
	headerRows     = 3 // Title, progress, timer
	footerRows     = 4 // Buttons, clicks, message, stats
	minFieldWidth  = 24
	minFieldHeight = 6
	buttonGap      = 1
)

// Rect is a screen-cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Button identifies a clickable control
type Button int

const (
	ButtonNone Button = iota
	ButtonReveal
	ButtonPrimary
	ButtonReset
	buttonCount
)

// PrimaryAction is the behaviour of the primary button in the current phase
type PrimaryAction int

const (
	PrimaryStart PrimaryAction = iota
	PrimaryRetry
	PrimaryNext
	PrimaryPlayAgain
)

// Label returns the button caption
func (a PrimaryAction) Label() string {
	switch a {
	case PrimaryRetry:
		return "Retry"
	case PrimaryNext:
		return "Next Level"
	case PrimaryPlayAgain:
		return "Play Again"
	default:
		return "Start"
	}
}

// CircleCell is the screen position of a circle
type CircleCell struct {
	ID   int
	X, Y int
}

// Layout is the screen geometry of one frame, used for drawing and hit testing
type Layout struct {
	Width, Height int
	Completed     bool

	Panel Rect // Content column
	Field Rect // Playfield including its border

	HeaderY   int
	ProgressY int
	TimerY    int
	ButtonsY  int
	ClicksY   int
	MessageY  int
	StatsY    int

	Primary PrimaryAction
	Buttons [buttonCount]Rect
	Enabled [buttonCount]bool
	Pressed [buttonCount]bool

	Circles []CircleCell
}

// ComputeLayout derives frame geometry for a screen size and session
func ComputeLayout(width, height int, s engine.Session) *Layout {
	l := &Layout{Width: width, Height: height, Completed: s.GameCompleted}
	if s.GameCompleted {
		l.computeCompletion()
		return l
	}

	fieldH := height - headerRows - footerRows
	if fieldH < minFieldHeight {
		fieldH = minFieldHeight
	}
	// Terminal cells are roughly twice as tall as wide
	fieldW := fieldH * 2
	if fieldW > width {
		fieldW = width
	}
	if fieldW < minFieldWidth {
		fieldW = min(minFieldWidth, width)
	}

	x := max((width-fieldW)/2, 0)
	l.Panel = Rect{X: x, Y: 0, W: fieldW, H: height}
	l.HeaderY = 0
	l.ProgressY = 1
	l.TimerY = 2
	l.Field = Rect{X: x, Y: headerRows, W: fieldW, H: fieldH}
	l.ButtonsY = l.Field.Y + l.Field.H
	l.ClicksY = l.ButtonsY + 1
	l.MessageY = l.ButtonsY + 2
	l.StatsY = l.ButtonsY + 3

	switch {
	case s.TargetFound:
		l.Primary = PrimaryNext
		l.Enabled[ButtonPrimary] = s.CanAdvance()
	case s.TimeExpired:
		l.Primary = PrimaryRetry
		l.Enabled[ButtonPrimary] = s.CanStart()
	default:
		l.Primary = PrimaryStart
		l.Enabled[ButtonPrimary] = s.CanStart()
	}
	l.Enabled[ButtonReveal] = s.CanReveal()
	l.Enabled[ButtonReset] = true
	l.Pressed[ButtonReveal] = s.ShowTarget

	bx := x
	for _, b := range []Button{ButtonReveal, ButtonPrimary, ButtonReset} {
		w := len(l.Label(b)) + 2
		l.Buttons[b] = Rect{X: bx, Y: l.ButtonsY, W: w, H: 1}
		bx += w + buttonGap
	}

	l.Circles = make([]CircleCell, 0, len(s.Circles))
	for _, c := range s.Circles {
		cx, cy := l.FieldCell(c.X, c.Y)
		l.Circles = append(l.Circles, CircleCell{ID: c.ID, X: cx, Y: cy})
	}
	return l
}

// computeCompletion centres the summary card and its single button
func (l *Layout) computeCompletion() {
	const cardW, cardH = 40, 11

	w := min(cardW, l.Width)
	h := min(cardH, l.Height)
	x := max((l.Width-w)/2, 0)
	y := max((l.Height-h)/2, 0)
	l.Panel = Rect{X: x, Y: y, W: w, H: h}

	l.Primary = PrimaryPlayAgain
	label := len(l.Label(ButtonPrimary)) + 2
	l.Buttons[ButtonPrimary] = Rect{X: x + max((w-label)/2, 0), Y: y + h - 2, W: label, H: 1}
	l.Enabled[ButtonPrimary] = true
}

// Label returns the caption of button b in this layout
func (l *Layout) Label(b Button) string {
	switch b {
	case ButtonReveal:
		return "Show Target"
	case ButtonPrimary:
		return l.Primary.Label()
	case ButtonReset:
		return "Reset"
	default:
		return ""
	}
}

// FieldCell maps percentage coordinates into the playfield interior
// FieldMin lands on the first interior cell and FieldMax on the last
func (l *Layout) FieldCell(px, py float64) (int, int) {
	innerW := l.Field.W - 2
	innerH := l.Field.H - 2
	return l.Field.X + 1 + scaleAxis(px, innerW), l.Field.Y + 1 + scaleAxis(py, innerH)
}

func scaleAxis(p float64, cells int) int {
	if cells <= 1 {
		return 0
	}
	span := constants.FieldMax - constants.FieldMin
	t := (p - constants.FieldMin) / span
	t = math.Max(0, math.Min(1, t))
	return int(math.Round(t * float64(cells-1)))
}

// ButtonAt returns the button under cell (x, y), or ButtonNone
func (l *Layout) ButtonAt(x, y int) Button {
	for b := ButtonReveal; b < buttonCount; b++ {
		if !l.Buttons[b].Empty() && l.Buttons[b].Contains(x, y) {
			return b
		}
	}
	return ButtonNone
}

// CircleAt returns the id of the circle nearest to cell (x, y)
// A hit allows two columns or one row of slack; columns count half
func (l *Layout) CircleAt(x, y int) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for _, c := range l.Circles {
		dx := float64(x-c.X) * 0.5
		dy := float64(y - c.Y)
		d := dx*dx + dy*dy
		if d <= 1 && d < bestDist {
			best, bestDist = c.ID, d
		}
	}
	return best, best >= 0
}
