package engine

import (
	"math"

	"github.com/lixenwraith/orbit-recall/constants"
)

// Session is the complete state of one player's run through the levels
// Transitions are value methods returning the next Session; the receiver is left untouched
type Session struct {
	Level   int
	Circles []Circle

	// ===== REVEAL GATING =====
	ShowTarget    bool // True only while the reveal control is held
	HasSeenTarget bool // Start is refused until the target was revealed once

	// ===== ATTEMPT PHASE =====
	IsPlaying   bool
	TimeLeft    int // Seconds, floored at 0
	TimeExpired bool
	TargetFound bool

	// ===== SCORING =====
	LevelScore    int // May go negative
	TotalScore    int
	Clicks        int
	GameCompleted bool
}

// ClickResult describes how a click was interpreted
type ClickResult struct {
	Accepted bool
	Correct  bool
	Points   int // Signed change applied to LevelScore
}

// NewSession creates a session at level 1 with a fresh layout
func NewSession(rng Rand) Session {
	return Session{
		Level:    1,
		Circles:  InitializeLevel(1, rng),
		TimeLeft: constants.AttemptSeconds,
	}
}

// Clone returns a deep copy safe to hand to another goroutine
func (s Session) Clone() Session {
	s.Circles = cloneCircles(s.Circles)
	return s
}

// CanReveal reports whether the reveal control is enabled
func (s Session) CanReveal() bool {
	return !s.IsPlaying && !s.TimeExpired && !s.GameCompleted
}

// CanStart reports whether Start (or Retry after expiry) is enabled
func (s Session) CanStart() bool {
	return s.HasSeenTarget && !s.IsPlaying && !s.TargetFound && !s.GameCompleted
}

// CanAdvance reports whether the next level may be entered
func (s Session) CanAdvance() bool {
	return s.TargetFound && s.Level < constants.MaxLevel && !s.GameCompleted
}

// AcceptsClicks reports whether circle clicks are currently scored
func (s Session) AcceptsClicks() bool {
	return s.TimeExpired && !s.TargetFound
}

// Reveal presses or releases the reveal control
// Releasing always hides the target; pressing is ignored while disabled
func (s Session) Reveal(show bool) Session {
	if !show {
		s.ShowTarget = false
		return s
	}
	if !s.CanReveal() {
		return s
	}
	s.ShowTarget = true
	s.HasSeenTarget = true
	return s
}

// Start begins an attempt of the current level, or retries an expired one
// Circle positions and the target are kept; every circle is un-clicked
func (s Session) Start() (Session, bool) {
	if !s.CanStart() {
		return s, false
	}
	s.IsPlaying = true
	s.ShowTarget = false
	s.TimeLeft = constants.AttemptSeconds
	s.TimeExpired = false
	s.TargetFound = false
	s.Clicks = 0
	s.LevelScore = 0

	circles := cloneCircles(s.Circles)
	for i := range circles {
		circles[i].Clicked = false
	}
	s.Circles = circles
	return s, true
}

// Frame applies one motion step; it is a no-op unless playing and not expired
func (s Session) Frame(deltaMs, driftSeconds float64, rng Rand) Session {
	if !s.IsPlaying || s.TimeExpired {
		return s
	}
	s.Circles = StepCircles(s.Circles, s.Level, deltaMs, driftSeconds, rng)
	return s
}

// Tick applies one countdown second
// Reaching zero stops play and unlocks click scoring in the same transition
func (s Session) Tick() Session {
	if !s.IsPlaying {
		return s
	}
	if s.TimeLeft <= 1 {
		s.TimeLeft = 0
		s.IsPlaying = false
		s.TimeExpired = true
		return s
	}
	s.TimeLeft--
	return s
}

// Click interprets a click on circle id
// Only clicks after expiry and before the target is found are accepted
func (s Session) Click(id int) (Session, ClickResult) {
	if !s.AcceptsClicks() {
		return s, ClickResult{}
	}

	idx := -1
	for i := range s.Circles {
		if s.Circles[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, ClickResult{}
	}

	circles := cloneCircles(s.Circles)
	circles[idx].Clicked = true
	s.Circles = circles
	s.Clicks++

	if !circles[idx].IsTarget {
		penalty := constants.PenaltyPerLevel * s.Level
		s.LevelScore -= penalty
		return s, ClickResult{Accepted: true, Points: -penalty}
	}

	// Total receives the new points plus the pre-click level score
	points := constants.PointsPerLevel * s.Level
	s.TotalScore += points + s.LevelScore
	s.LevelScore += points
	s.TargetFound = true
	if s.Level == constants.MaxLevel {
		s.GameCompleted = true
	}
	return s, ClickResult{Accepted: true, Correct: true, Points: points}
}

// NextLevel enters the next level after a found target and lays out its circles
func (s Session) NextLevel(rng Rand) (Session, bool) {
	if !s.CanAdvance() {
		return s, false
	}
	s.Level++
	s.Circles = InitializeLevel(s.Level, rng)
	s.TimeLeft = constants.AttemptSeconds
	s.TimeExpired = false
	s.TargetFound = false
	s.Clicks = 0
	s.LevelScore = 0
	s.ShowTarget = false
	s.HasSeenTarget = false
	return s, true
}

// Reset returns to level 1 with zeroed scores and a fresh layout
func (s Session) Reset(rng Rand) Session {
	return NewSession(rng)
}

// Performance returns TotalScore as a rounded percentage of the perfect run
func (s Session) Performance() int {
	return int(math.Round(float64(s.TotalScore) / constants.MaxTotalScore * 100))
}

// Target returns the target circle
func (s Session) Target() (Circle, bool) {
	for _, c := range s.Circles {
		if c.IsTarget {
			return c, true
		}
	}
	return Circle{}, false
}
