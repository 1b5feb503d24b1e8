package audio

import "errors"

// SoundType identifies a feedback effect
type SoundType int

const (
	SoundMiss     SoundType = iota // Wrong circle clicked
	SoundFound                     // Target clicked
	SoundTimeUp                    // Countdown reached zero
	SoundLevelUp                   // Next level entered
	SoundComplete                  // Level 10 found
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"miss", "found", "time_up", "level_up", "complete"}

// String returns the config key of the sound
func (t SoundType) String() string {
	if t < 0 || t >= soundTypeCount {
		return "unknown"
	}
	return soundNames[t]
}

// ParseSoundType resolves a config key
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// ErrNotInitialized is returned when playing before Initialize succeeded
var ErrNotInitialized = errors.New("audio: speaker not initialized")
