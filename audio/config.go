package audio

// AudioConfig controls effect synthesis and playback
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   48000,
		EffectVolumes: map[SoundType]float64{
			SoundMiss:     0.4,
			SoundFound:    0.6,
			SoundTimeUp:   0.3,
			SoundLevelUp:  0.5,
			SoundComplete: 0.7,
		},
	}
}

// volume returns the effective volume of a sound, missing entries play at full effect volume
func (c *AudioConfig) volume(t SoundType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
