package contracts

import "time"

// HATConfig holds the I²C parameters for the touch controller board.
type HATConfig struct {
	Bus          string        // I²C bus name; empty selects the first available bus.
	Addresses    [2]uint16     // Addresses of the low and high touch controllers.
	Threshold    uint8         // Per-input touch threshold; zero keeps the chip default.
	PollInterval time.Duration // Touch polling interval.
}

// MIDIFallbackConfig configures the MIDI-backed keyboards used on hosts
// without the board attached. BaseNote is the MIDI note mapped to pad
// channel 0 (the keyboard's low C).
type MIDIFallbackConfig struct {
	ClientName string
	BaseNote   uint8
}

// ClientOptions defines the configuration options for the keyboard client.
type ClientOptions struct {
	Logger       Logger              // Logger for logging events and errors.
	LogLevel     LogLevel            // Level of logging to use.
	HAT          *HATConfig          // I²C configuration for the real board.
	MIDIFallback *MIDIFallbackConfig // Configuration for the MIDI fallback keyboards.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the keyboard client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the keyboard client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithHATConfig sets the I²C configuration for the keyboard client.
func WithHATConfig(config HATConfig) Option {
	return func(opts *ClientOptions) {
		opts.HAT = &config
	}
}

// WithMIDIFallback sets the MIDI fallback configuration for the keyboard client.
func WithMIDIFallback(config MIDIFallbackConfig) Option {
	return func(opts *ClientOptions) {
		opts.MIDIFallback = &config
	}
}
