package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit-recall/constants"
	"github.com/lixenwraith/orbit-recall/engine"
)

// SoundManager plays feedback effects through a single speaker mixer
// It listens to driver events; a disabled or uninitialized manager stays silent
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	logger      *zap.Logger
	initialized bool
	muted       bool

	// initSpeaker is replaced in tests to avoid opening a device
	initSpeaker func(rate beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
}

// NewSoundManager creates a manager; cfg nil uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		config:      cfg,
		mixer:       &beep.Mixer{},
		logger:      logger,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled audio succeeds without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.initSpeaker(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	sm.play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all pending effects
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// Speaker has no close; clearing the mixer stops all output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues one effect
func (sm *SoundManager) Play(t SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return nil
	}

	s := GetSoundEffect(t, sm.config)
	if s == nil {
		return nil
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether playback is muted
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SoundFor maps a driver event to its effect
func SoundFor(ev engine.Event) (SoundType, bool) {
	switch ev.Type {
	case engine.EventMiss:
		return SoundMiss, true
	case engine.EventTargetFound:
		return SoundFound, true
	case engine.EventTimeExpired:
		return SoundTimeUp, true
	case engine.EventLevelAdvanced:
		return SoundLevelUp, true
	case engine.EventGameCompleted:
		return SoundComplete, true
	default:
		return 0, false
	}
}

// HandleEvent implements engine.Listener
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	t, ok := SoundFor(ev)
	if !ok {
		return
	}
	if err := sm.Play(t); err != nil && err != ErrNotInitialized {
		sm.logger.Warn("sound playback failed", zap.Stringer("sound", t), zap.Error(err))
	}
}
