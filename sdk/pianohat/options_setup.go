package pianohat

import (
	"time"

	"github.com/hatkit/pianohat/internal/logger"
	"github.com/hatkit/pianohat/sdk/contracts"
)

// Defaults for the HAT driver: the two CAP1188s sit at 0x28 and 0x2B on the
// Pi's primary bus, and 10ms polling keeps key-to-sound latency inaudible.
const (
	defaultAddressLow   = 0x28
	defaultAddressHigh  = 0x2B
	defaultThreshold    = 40
	defaultPollInterval = 10 * time.Millisecond

	defaultClientName = "Piano HAT Keyboard"
	defaultBaseNote   = 60 // middle C maps to pad channel 0
)

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized client options with defaults applied.
//   - error: An error if there was an issue applying the options.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}

	if options.HAT == nil {
		options.HAT = &contracts.HATConfig{}
	}
	if options.HAT.Addresses == [2]uint16{} {
		options.HAT.Addresses = [2]uint16{defaultAddressLow, defaultAddressHigh}
	}
	if options.HAT.Threshold == 0 {
		options.HAT.Threshold = defaultThreshold
	}
	if options.HAT.PollInterval == 0 {
		options.HAT.PollInterval = defaultPollInterval
	}

	if options.MIDIFallback == nil {
		options.MIDIFallback = &contracts.MIDIFallbackConfig{}
	}
	if options.MIDIFallback.ClientName == "" {
		options.MIDIFallback.ClientName = defaultClientName
	}
	if options.MIDIFallback.BaseNote == 0 {
		options.MIDIFallback.BaseNote = defaultBaseNote
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
