package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentToggleMute  // m
	IntentToggleStats // Ctrl+S

	// Session commands
	IntentToggleReveal // t
	IntentStart        // s
	IntentPrimary      // Enter, whatever the primary button does
	IntentNextLevel    // n
	IntentReset        // r
	IntentClickCircle  // 1-9 after time expires
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentToggleMute:   "toggle_mute",
	IntentToggleStats:  "toggle_stats",
	IntentToggleReveal: "toggle_reveal",
	IntentStart:        "start",
	IntentPrimary:      "primary",
	IntentNextLevel:    "next_level",
	IntentReset:        "reset",
	IntentClickCircle:  "click_circle",
}

// String returns the canonical intent name
func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Intent is a resolved key press
type Intent struct {
	Type   IntentType
	Circle int // Circle id for IntentClickCircle
}
