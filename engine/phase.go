package engine

// Phase is the position of a level attempt in its lifecycle
type Phase int

const (
	PhaseAwaitingReveal Phase = iota
	PhaseReady
	PhasePlaying
	PhaseExpired
	PhaseResolved
	PhaseCompleted
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingReveal:
		return "AwaitingReveal"
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhaseExpired:
		return "Expired"
	case PhaseResolved:
		return "Resolved"
	case PhaseCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Phase derives the lifecycle phase from the session flags
func (s Session) Phase() Phase {
	switch {
	case s.GameCompleted:
		return PhaseCompleted
	case s.TargetFound:
		return PhaseResolved
	case s.TimeExpired:
		return PhaseExpired
	case s.IsPlaying:
		return PhasePlaying
	case s.HasSeenTarget:
		return PhaseReady
	default:
		return PhaseAwaitingReveal
	}
}
