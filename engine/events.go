package engine

// EventType identifies a session transition worth reacting to
type EventType int

const (
	EventAttemptStarted EventType = iota + 1
	EventTimeExpired
	EventMiss
	EventTargetFound
	EventLevelAdvanced
	EventGameCompleted
	EventReset
)

var eventNames = map[EventType]string{
	EventAttemptStarted: "AttemptStarted",
	EventTimeExpired:    "TimeExpired",
	EventMiss:           "Miss",
	EventTargetFound:    "TargetFound",
	EventLevelAdvanced:  "LevelAdvanced",
	EventGameCompleted:  "GameCompleted",
	EventReset:          "Reset",
}

// String returns the event name
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is emitted by the Driver after the transition it describes has been applied
type Event struct {
	Type       EventType
	Level      int
	CircleID   int // -1 when not click related
	Points     int
	TotalScore int
}

// Listener receives driver events on the driver goroutine
// Implementations must not block and must not call back into the Driver
type Listener interface {
	HandleEvent(ev Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev Event)

// HandleEvent calls f(ev)
func (f ListenerFunc) HandleEvent(ev Event) { f(ev) }
