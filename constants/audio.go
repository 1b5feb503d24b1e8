package constants

import "time"

// Miss Sound Timing
const (
	MissSoundDuration = 120 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 40 * time.Millisecond
)

// Found Sound Timing
const (
	FoundSoundNote1Duration = 80 * time.Millisecond
	FoundSoundNote2Duration = 280 * time.Millisecond
	FoundSoundAttack        = 5 * time.Millisecond
	FoundSoundNote1Release  = 40 * time.Millisecond
	FoundSoundNote2Release  = 200 * time.Millisecond
)

// Time Up Sound Timing
const (
	TimeUpSoundDuration = 300 * time.Millisecond
	TimeUpSoundAttack   = 150 * time.Millisecond
	TimeUpSoundRelease  = 150 * time.Millisecond
)

// Level Up Sound Timing
const (
	LevelUpSoundDuration           = 600 * time.Millisecond
	LevelUpSoundAttack             = 5 * time.Millisecond
	LevelUpSoundFundamentalRelease = 550 * time.Millisecond
	LevelUpSoundOvertoneRelease    = 200 * time.Millisecond
)

// Completion Fanfare Timing
const (
	FanfareNoteDuration  = 150 * time.Millisecond
	FanfareFinalDuration = 450 * time.Millisecond
	FanfareAttack        = 5 * time.Millisecond
	FanfareRelease       = 60 * time.Millisecond
)

// SpeakerBuffer is the beep speaker buffer length
const SpeakerBuffer = 100 * time.Millisecond
