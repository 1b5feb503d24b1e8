package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orbit-recall/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64 // [0, 1)
	duration int     // Samples
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a mono wave duplicated on both channels
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; sustain fills whatever attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; 0 maps to silence since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateMissSound generates a short low buzz
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := tone(100.0, WaveSaw, constants.MissSoundDuration, constants.MissSoundAttack, constants.MissSoundRelease, rate)
	return newVolume(buzz, cfg.volume(SoundMiss))
}

// CreateFoundSound generates a rising two-note chime (B5, E6)
func CreateFoundSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(987.77, WaveSquare, constants.FoundSoundNote1Duration, constants.FoundSoundAttack, constants.FoundSoundNote1Release, rate)
	n2 := tone(1318.51, WaveSquare, constants.FoundSoundNote2Duration, constants.FoundSoundAttack, constants.FoundSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(SoundFound))
}

// CreateTimeUpSound generates a noise swell
func CreateTimeUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := tone(0, WaveNoise, constants.TimeUpSoundDuration, constants.TimeUpSoundAttack, constants.TimeUpSoundRelease, rate)
	return newVolume(noise, cfg.volume(SoundTimeUp))
}

// CreateLevelUpSound generates a bell: A5 fundamental with an octave overtone
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := tone(880.0, WaveSine, constants.LevelUpSoundDuration, constants.LevelUpSoundAttack, constants.LevelUpSoundFundamentalRelease, rate)
	over := tone(1760.0, WaveSine, constants.LevelUpSoundDuration, constants.LevelUpSoundAttack, constants.LevelUpSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.volume(SoundLevelUp))
}

// CreateCompleteSound generates a C major arpeggio ending on a held top note
func CreateCompleteSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{1046.50, 1318.51, 1567.98}
	parts := make([]beep.Streamer, 0, len(notes)+1)
	for _, f := range notes {
		parts = append(parts, tone(f, WaveSquare, constants.FanfareNoteDuration, constants.FanfareAttack, constants.FanfareRelease, rate))
	}
	parts = append(parts, tone(2093.0, WaveSine, constants.FanfareFinalDuration, constants.FanfareAttack, constants.FanfareFinalDuration/2, rate))

	return newVolume(beep.Seq(parts...), cfg.volume(SoundComplete))
}

// GetSoundEffect returns a fresh streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundMiss:
		return CreateMissSound(cfg)
	case SoundFound:
		return CreateFoundSound(cfg)
	case SoundTimeUp:
		return CreateTimeUpSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundComplete:
		return CreateCompleteSound(cfg)
	default:
		return nil
	}
}
