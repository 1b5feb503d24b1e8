package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Escape)
	SpecialKeys map[tcell.Key]IntentType

	// Plain rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentToggleStats,
			tcell.KeyEnter:  IntentPrimary,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			't': IntentToggleReveal,
			's': IntentStart,
			'n': IntentNextLevel,
			'r': IntentReset,
		},
	}
}

// Resolve returns the intent bound to a key event
// Digits 1-9 select circles 0-8
func (kt *KeyTable) Resolve(key tcell.Key, r rune) Intent {
	if key != tcell.KeyRune {
		return Intent{Type: kt.SpecialKeys[key]}
	}
	if r >= '1' && r <= '9' {
		return Intent{Type: IntentClickCircle, Circle: int(r - '1')}
	}
	return Intent{Type: kt.Runes[r]}
}
