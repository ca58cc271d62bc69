package pianohat

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hatkit/pianohat/internal/hat/hatdarwin"
	"github.com/hatkit/pianohat/internal/hat/hatlinux"
	"github.com/hatkit/pianohat/internal/hat/hatwindows"
	"github.com/hatkit/pianohat/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system is not supported by the keyboard client.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// driverInitializers maps OS names to corresponding keyboard initializers.
// Linux gets the real I²C board driver; macOS and Windows get MIDI-backed
// fallback keyboards so the demo modes can run without the hardware.
var driverInitializers = map[string]func(*contracts.ClientOptions) (contracts.Keyboard, error){
	"linux":   hatlinux.NewKeyboard,
	"darwin":  hatdarwin.NewKeyboard,
	"windows": hatwindows.NewKeyboard,
}

// NewClient initializes a keyboard driver based on the current operating
// system, returning ErrUnsupportedOS if the OS is unsupported.
//
// opts *contracts.ClientOptions: Configuration options for the keyboard client.
//
// Returns:
//   - contracts.Keyboard: An instance of the keyboard client.
//   - error: An error if the operating system is unsupported or if initialization fails.
func NewClient(opts *contracts.ClientOptions) (contracts.Keyboard, error) {
	if initializer, exists := driverInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
