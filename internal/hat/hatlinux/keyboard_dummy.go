//go:build !linux
// +build !linux

package hatlinux

import (
	"fmt"

	"github.com/hatkit/pianohat/sdk/contracts"
)

type dummyKeyboard struct {
	logger contracts.Logger
}

// NewKeyboard returns a stub for non-Linux systems; the board's I²C bus only
// exists on Linux hosts.
func NewKeyboard(options *contracts.ClientOptions) (contracts.Keyboard, error) {
	options.Logger.Info("Using dummy HAT keyboard for non-Linux system")
	return &dummyKeyboard{logger: options.Logger}, nil
}

func (k *dummyKeyboard) OnNote(handler contracts.TouchHandler)       {}
func (k *dummyKeyboard) OnOctaveUp(handler contracts.TouchHandler)   {}
func (k *dummyKeyboard) OnOctaveDown(handler contracts.TouchHandler) {}
func (k *dummyKeyboard) OnInstrument(handler contracts.TouchHandler) {}

func (k *dummyKeyboard) SetLED(index int, on bool) error {
	return nil
}

func (k *dummyKeyboard) AutoLEDs(enabled bool) error {
	return nil
}

func (k *dummyKeyboard) Start() error {
	k.logger.Warn("Start called on dummy HAT keyboard")
	return fmt.Errorf("HAT keyboard is not available on this platform")
}

func (k *dummyKeyboard) Stop() error {
	k.logger.Warn("Stop called on dummy HAT keyboard")
	return nil
}
