//go:build !darwin
// +build !darwin

package hatdarwin

import (
	"fmt"

	"github.com/hatkit/pianohat/sdk/contracts"
)

type dummyKeyboard struct {
	logger contracts.Logger
}

func NewKeyboard(options *contracts.ClientOptions) (contracts.Keyboard, error) {
	options.Logger.Info("Using dummy MIDI fallback keyboard for non-macOS system")
	return &dummyKeyboard{logger: options.Logger}, nil
}

func (k *dummyKeyboard) OnNote(handler contracts.TouchHandler)       {}
func (k *dummyKeyboard) OnOctaveUp(handler contracts.TouchHandler)   {}
func (k *dummyKeyboard) OnOctaveDown(handler contracts.TouchHandler) {}
func (k *dummyKeyboard) OnInstrument(handler contracts.TouchHandler) {}

func (k *dummyKeyboard) SetLED(index int, on bool) error { return nil }

func (k *dummyKeyboard) AutoLEDs(enabled bool) error { return nil }

func (k *dummyKeyboard) Start() error {
	k.logger.Warn("Start called on dummy MIDI fallback keyboard")
	return fmt.Errorf("MIDI fallback keyboard is not available on this platform")
}

func (k *dummyKeyboard) Stop() error {
	k.logger.Warn("Stop called on dummy MIDI fallback keyboard")
	return nil
}
