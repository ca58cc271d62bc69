//go:build linux
// +build linux

// Package hatlinux implements the keyboard driver for the real board: two
// CAP1188 touch controllers on the Pi's I²C bus, polled for touch state.
package hatlinux

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/hatkit/pianohat/internal/hat"
	"github.com/hatkit/pianohat/internal/hat/cap1188"
	"github.com/hatkit/pianohat/sdk/contracts"
)

// ErrNotStarted is returned by Stop when the keyboard was never started.
var ErrNotStarted = errors.New("keyboard not started")

// Keyboard drives the board's sixteen pads and LEDs. The low controller
// carries pads 0-7, the high one pads 8-15.
type Keyboard struct {
	logger   contracts.Logger
	cfg      *contracts.HATConfig
	bus      i2c.BusCloser
	chips    [2]*cap1188.Dev
	handlers hat.Handlers

	mu       sync.Mutex
	running  bool
	stop     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewKeyboard opens the I²C bus and both touch controllers.
func NewKeyboard(options *contracts.ClientOptions) (contracts.Keyboard, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing periph host: %w", err)
	}
	bus, err := i2creg.Open(options.HAT.Bus)
	if err != nil {
		return nil, fmt.Errorf("opening I²C bus %q: %w", options.HAT.Bus, err)
	}

	k := &Keyboard{
		logger: options.Logger,
		cfg:    options.HAT,
		bus:    bus,
	}
	for i, addr := range options.HAT.Addresses {
		dev, err := cap1188.New(bus, addr, cap1188.Opts{Threshold: options.HAT.Threshold})
		if err != nil {
			bus.Close()
			return nil, fmt.Errorf("touch controller at 0x%02X: %w", addr, err)
		}
		k.chips[i] = dev
	}
	options.Logger.Info("keyboard opened",
		options.Logger.Field().String("bus", options.HAT.Bus))
	return k, nil
}

func (k *Keyboard) OnNote(handler contracts.TouchHandler)       { k.handlers.SetNote(handler) }
func (k *Keyboard) OnOctaveUp(handler contracts.TouchHandler)   { k.handlers.SetOctaveUp(handler) }
func (k *Keyboard) OnOctaveDown(handler contracts.TouchHandler) { k.handlers.SetOctaveDown(handler) }
func (k *Keyboard) OnInstrument(handler contracts.TouchHandler) { k.handlers.SetInstrument(handler) }

// SetLED switches a single pad LED. Out-of-range indexes are ignored.
func (k *Keyboard) SetLED(index int, on bool) error {
	if index < 0 || index >= contracts.NumPads {
		return nil
	}
	return k.chips[index/8].SetLED(index%8, on)
}

// AutoLEDs toggles the controllers' touch-linked LED mode on both chips.
func (k *Keyboard) AutoLEDs(enabled bool) error {
	for _, chip := range k.chips {
		if err := chip.LinkLEDs(enabled); err != nil {
			return err
		}
	}
	return nil
}

// Start launches the polling goroutine. Events are synthesized by diffing
// the combined 16-bit touch mask against the previous poll.
func (k *Keyboard) Start() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.running {
		return nil
	}
	k.running = true
	k.stop = make(chan struct{})
	k.wg.Add(1)
	go k.poll()
	k.logger.Info("touch polling started")
	return nil
}

func (k *Keyboard) poll() {
	defer k.wg.Done()
	ticker := time.NewTicker(k.cfg.PollInterval)
	defer ticker.Stop()

	var prev uint16
	for {
		select {
		case <-k.stop:
			return
		case <-ticker.C:
			mask, err := k.readMask()
			if err != nil {
				k.logger.Warn("touch poll failed", k.logger.Field().Error("error", err))
				continue
			}
			diff := mask ^ prev
			for ch := 0; ch < contracts.NumPads; ch++ {
				if diff&(1<<uint(ch)) != 0 {
					k.handlers.Dispatch(ch, mask&(1<<uint(ch)) != 0)
				}
			}
			prev = mask
		}
	}
}

func (k *Keyboard) readMask() (uint16, error) {
	lo, err := k.chips[0].Touched()
	if err != nil {
		return 0, err
	}
	hi, err := k.chips[1].Touched()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Stop halts polling, clears the LEDs and closes the bus. Safe to call more
// than once; only the first call takes effect.
func (k *Keyboard) Stop() error {
	var err error
	k.stopOnce.Do(func() {
		k.mu.Lock()
		defer k.mu.Unlock()
		if !k.running {
			err = ErrNotStarted
			return
		}
		close(k.stop)
		k.wg.Wait()
		k.running = false
		for _, chip := range k.chips {
			if lerr := chip.AllLEDsOff(); lerr != nil {
				k.logger.Warn("failed to clear LEDs", k.logger.Field().Error("error", lerr))
			}
		}
		err = k.bus.Close()
		k.logger.Info("keyboard stopped")
	})
	return err
}
