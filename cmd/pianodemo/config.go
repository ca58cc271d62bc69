package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hatkit/pianohat/sdk/contracts"
	"github.com/hatkit/pianohat/sdk/modes"
)

// Config is the demo's YAML configuration. Every field has a default, so an
// absent or partial file still yields a runnable setup.
type Config struct {
	SoundDir string   `yaml:"sound_dir"`
	Patterns []string `yaml:"patterns"`
	LogLevel string   `yaml:"log_level"`

	Audio AudioConfig  `yaml:"audio"`
	HAT   HATConfig    `yaml:"hat"`
	Modes []ModeConfig `yaml:"modes"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
	PoolSize   int `yaml:"pool_size"`
}

type HATConfig struct {
	Bus          string   `yaml:"bus"`
	Threshold    uint8    `yaml:"threshold"`
	PollInterval Duration `yaml:"poll_interval"`
}

// Duration wraps time.Duration so YAML values like "10ms" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// ModeConfig describes one entry of the mode cycle. Type is "piano" or
// "melody". Melody entries name a built-in melody or carry explicit notes.
type ModeConfig struct {
	Type      string `yaml:"type"`
	Octave    int    `yaml:"octave"`
	Melody    string `yaml:"melody"`
	Notes     []int  `yaml:"notes"`
	Transpose int    `yaml:"transpose"`
	Reward    string `yaml:"reward"`
}

func defaultConfig() Config {
	return Config{
		SoundDir: "sounds",
		Patterns: []string{"*.wav", "*.ogg"},
		LogLevel: "info",
		Audio: AudioConfig{
			SampleRate: 44100,
			Channels:   1,
			PoolSize:   16,
		},
		HAT: HATConfig{
			Threshold:    40,
			PollInterval: Duration(10 * time.Millisecond),
		},
		Modes: []ModeConfig{
			{Type: "piano", Octave: 2},
			{Type: "melody", Melody: "alle_meine_entchen", Octave: 4, Reward: "sounds/reward.ogg"},
			{Type: "melody", Melody: "zeiss", Octave: 4, Reward: "sounds/reward.ogg"},
		},
	}
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(cfg.Modes) == 0 {
		return cfg, fmt.Errorf("config: %s defines no modes", path)
	}
	return cfg, nil
}

func (c Config) logLevel() (contracts.LogLevel, error) {
	switch c.LogLevel {
	case "", "info":
		return contracts.InfoLevel, nil
	case "debug":
		return contracts.DebugLevel, nil
	case "warn":
		return contracts.WarnLevel, nil
	case "error":
		return contracts.ErrorLevel, nil
	}
	return contracts.InfoLevel, fmt.Errorf("config: unknown log level %q", c.LogLevel)
}

// notes resolves a melody entry to its note sequence, preferring explicit
// notes over the built-in table.
func (mc ModeConfig) notes() ([]int, error) {
	if len(mc.Notes) > 0 {
		for i, n := range mc.Notes {
			if n < 0 || n >= contracts.NoteChannels {
				return nil, fmt.Errorf("config: melody note %d = %d, outside pad range", i, n)
			}
		}
		return mc.Notes, nil
	}
	melody, ok := modes.Builtin[mc.Melody]
	if !ok {
		return nil, fmt.Errorf("config: unknown melody %q", mc.Melody)
	}
	return melody, nil
}

// name labels the mode for logs and the mode cycle.
func (mc ModeConfig) name() string {
	if mc.Melody != "" {
		return mc.Melody
	}
	return mc.Type
}
