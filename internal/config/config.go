// Package config handles reading ~/.pomo/config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Config holds the tunables for a pomo run. Everything has a working
// default; the config file only overrides what it names.
type Config struct {
	WorkMinutes       int     `yaml:"work_minutes"`
	ShortBreakMinutes int     `yaml:"short_break_minutes"`
	LongBreakMinutes  int     `yaml:"long_break_minutes"`
	LongBreakEvery    int     `yaml:"long_break_every"`
	Volume            float64 `yaml:"volume"`
	SampleRate        int     `yaml:"sample_rate"`
	LoopSeconds       int     `yaml:"loop_seconds"`
	Sound             bool    `yaml:"sound"`
	Notifications     bool    `yaml:"notifications"`
}

// Default returns the classic Pomodoro configuration.
func Default() Config {
	return Config{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakEvery:    4,
		Volume:            1.0,
		SampleRate:        48000,
		LoopSeconds:       10,
		Sound:             true,
		Notifications:     true,
	}
}

// Dir returns the pomo state directory: POMO_HOME when set, otherwise
// ~/.pomo. The directory is not created here.
func Dir() (string, error) {
	if dir := os.Getenv("POMO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".pomo"), nil
}

// Load reads config.yaml from dir, layered over Default. A missing file
// yields the defaults; a file that exists but cannot be parsed, or one
// holding unusable values, is an error. Bad timer arithmetic inputs are
// not worth degrading around.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.WorkMinutes <= 0:
		return fmt.Errorf("work_minutes must be positive, got %d", c.WorkMinutes)
	case c.ShortBreakMinutes <= 0:
		return fmt.Errorf("short_break_minutes must be positive, got %d", c.ShortBreakMinutes)
	case c.LongBreakMinutes <= 0:
		return fmt.Errorf("long_break_minutes must be positive, got %d", c.LongBreakMinutes)
	case c.LongBreakEvery <= 0:
		return fmt.Errorf("long_break_every must be positive, got %d", c.LongBreakEvery)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("volume must be within [0, 1], got %g", c.Volume)
	case c.SampleRate <= 0:
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	case c.LoopSeconds <= 0:
		return fmt.Errorf("loop_seconds must be positive, got %d", c.LoopSeconds)
	}
	return nil
}
