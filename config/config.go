// Package config loads the TOML settings file and its environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/orbit-recall/audio"
)

// Environment overrides
const (
	EnvAudioEnabled = "ORBIT_RECALL_AUDIO_ENABLED"
	EnvSeed         = "ORBIT_RECALL_SEED"
)

// Config is the full application configuration
type Config struct {
	// Seed for circle layout and motion; 0 derives one from the clock
	Seed      int64  `toml:"seed"`
	FrameRate int    `toml:"frame_rate"`
	Debug     bool   `toml:"debug"`
	LogDir    string `toml:"log_dir"`
	ShowStats bool   `toml:"show_stats"`

	Audio AudioSection `toml:"audio"`
}

// AudioSection mirrors audio.AudioConfig with config file keys
type AudioSection struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	a := audio.DefaultAudioConfig()
	return &Config{
		FrameRate: 60,
		LogDir:    "logs",
		Audio: AudioSection{
			Enabled:      a.Enabled,
			MasterVolume: a.MasterVolume,
			SampleRate:   a.SampleRate,
		},
	}
}

// Load reads path over the defaults and applies environment overrides
// A missing file is not an error; path "" skips the file entirely
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		default:
			if undec := md.Undecoded(); len(undec) > 0 {
				return nil, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = enabled
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate rejects unusable values and clamps volumes into [0, 1]
func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	c.Audio.MasterVolume = clampUnit(c.Audio.MasterVolume)
	for name, v := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("audio.volumes: unknown sound %q", name)
		}
		c.Audio.Volumes[name] = clampUnit(v)
	}
	return nil
}

// AudioConfig converts the audio section for the sound manager
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		if st, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = v
		}
	}
	return ac
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
