package modes

import (
	"errors"

	"github.com/hatkit/pianohat/sdk/contracts"
)

// ErrNoModes is returned when a registry is created without any modes.
var ErrNoModes = errors.New("mode registry needs at least one mode")

// Registry owns the ordered list of modes and tracks which one is active.
// The current index is always in [0, len(modes)) and wraps on advance.
//
// The registry is not internally synchronized: it relies on the driver
// contract that events are delivered serially. Start must be called before
// the keyboard starts delivering events.
type Registry struct {
	keyboard contracts.Keyboard
	logger   contracts.Logger
	modes    []Mode
	index    int
}

// NewRegistry creates a registry over the given modes in order.
func NewRegistry(keyboard contracts.Keyboard, logger contracts.Logger, m ...Mode) (*Registry, error) {
	if len(m) == 0 {
		return nil, ErrNoModes
	}
	return &Registry{keyboard: keyboard, logger: logger, modes: m}, nil
}

// Start binds the instrument pad, which stays bound across mode switches,
// and activates the first mode.
func (r *Registry) Start() {
	r.keyboard.OnInstrument(r.HandleInstrument)
	r.activate(0)
}

// HandleInstrument advances to the next mode cyclically on a press.
func (r *Registry) HandleInstrument(channel int, pressed bool) {
	if !pressed {
		return
	}
	r.activate((r.index + 1) % len(r.modes))
}

// Active returns the currently active mode.
func (r *Registry) Active() Mode {
	return r.modes[r.index]
}

// Index returns the index of the active mode.
func (r *Registry) Index() int {
	return r.index
}

func (r *Registry) activate(i int) {
	r.index = i
	m := r.modes[i]
	r.logger.Info("selecting mode", r.logger.Field().String("mode", m.Name()))

	// Re-binding the handlers on every activation guarantees events can
	// never reach a mode that is no longer active.
	r.keyboard.OnNote(m.HandleNote)
	r.keyboard.OnOctaveUp(m.HandleOctaveUp)
	r.keyboard.OnOctaveDown(m.HandleOctaveDown)

	for pad := 0; pad < contracts.NumPads; pad++ {
		if err := r.keyboard.SetLED(pad, false); err != nil {
			r.logger.Warn("failed to clear LED", r.logger.Field().Error("error", err))
		}
	}
	if err := r.keyboard.AutoLEDs(m.AutoLED()); err != nil {
		r.logger.Warn("failed to set auto-LED mode", r.logger.Field().Error("error", err))
	}

	m.Activate()
}
