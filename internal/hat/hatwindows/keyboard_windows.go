//go:build windows
// +build windows

// Package hatwindows implements a fallback keyboard for Windows hosts
// without the board attached, mapping a winmm MIDI input device's notes onto
// the pad channels.
package hatwindows

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hatkit/pianohat/internal/hat"
	"github.com/hatkit/pianohat/sdk/contracts"
)

// Type definitions for MIDI handles
type HMIDIIN windows.Handle

// Constants for callback flags
const (
	CALLBACK_FUNCTION = 0x00030000 // Indicates that the callback is a function
	MIDI_IO_STATUS    = 0x00000020 // MIDI input/output status
)

// Constants for MIDI message types
const (
	MIM_OPEN      = 0x3C1 // MIDI device opened
	MIM_CLOSE     = 0x3C2 // MIDI device closed
	MIM_DATA      = 0x3C3 // MIDI data received
	MIM_ERROR     = 0x3C5 // MIDI error
	MIM_LONGERROR = 0x3C6 // Long MIDI error
	MIM_MOREDATA  = 0x3CC // More MIDI data available
)

// MIDI status nibbles understood by the fallback keyboard.
const (
	noteOn  = 0x90
	noteOff = 0x80
)

// ErrNoMIDIDevices is returned by Start when no input devices are present.
var ErrNoMIDIDevices = errors.New("no MIDI devices found")

// Load the winmm.dll library and required functions
var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmm.NewProc("midiInGetNumDevs")
	procMidiInOpen       = winmm.NewProc("midiInOpen")
	procMidiInStart      = winmm.NewProc("midiInStart")
	procMidiInStop       = winmm.NewProc("midiInStop")
	procMidiInClose      = winmm.NewProc("midiInClose")
)

// Keyboard adapts a winmm MIDI input to the Keyboard contract. LED
// operations are no-ops: a plain MIDI keyboard has nothing to illuminate.
type Keyboard struct {
	logger   contracts.Logger
	cfg      *contracts.MIDIFallbackConfig
	handlers hat.Handlers

	handle   HMIDIIN
	callback uintptr

	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// NewKeyboard creates a MIDI fallback keyboard for Windows.
func NewKeyboard(options *contracts.ClientOptions) (contracts.Keyboard, error) {
	options.Logger.Info("MIDI fallback keyboard created for Windows")
	return &Keyboard{
		logger: options.Logger,
		cfg:    options.MIDIFallback,
	}, nil
}

func (k *Keyboard) OnNote(handler contracts.TouchHandler)       { k.handlers.SetNote(handler) }
func (k *Keyboard) OnOctaveUp(handler contracts.TouchHandler)   { k.handlers.SetOctaveUp(handler) }
func (k *Keyboard) OnOctaveDown(handler contracts.TouchHandler) { k.handlers.SetOctaveDown(handler) }
func (k *Keyboard) OnInstrument(handler contracts.TouchHandler) { k.handlers.SetInstrument(handler) }

// SetLED is a no-op: MIDI keyboards have no pad LEDs.
func (k *Keyboard) SetLED(index int, on bool) error { return nil }

// AutoLEDs is a no-op for the same reason.
func (k *Keyboard) AutoLEDs(enabled bool) error { return nil }

// Start opens the first MIDI input device and begins capture.
func (k *Keyboard) Start() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.running {
		return nil
	}

	r0, _, _ := procMidiInGetNumDevs.Call()
	if uint32(r0) == 0 {
		k.logger.Error(ErrNoMIDIDevices.Error())
		return ErrNoMIDIDevices
	}

	k.callback = windows.NewCallback(midiInCallback)
	fdwOpen := CALLBACK_FUNCTION | MIDI_IO_STATUS

	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&k.handle)),
		0, // first device
		k.callback,
		uintptr(unsafe.Pointer(k)),
		uintptr(fdwOpen),
	)
	if r1 != 0 {
		k.logger.Error(fmt.Sprintf("Failed to open MIDI device: %v", err))
		return fmt.Errorf("failed to open MIDI device: %v", err)
	}

	r1, _, err = procMidiInStart.Call(uintptr(k.handle))
	if r1 != 0 {
		procMidiInClose.Call(uintptr(k.handle))
		k.handle = 0
		k.logger.Error(fmt.Sprintf("Failed to start MIDI capture: %v", err))
		return fmt.Errorf("failed to start MIDI capture: %v", err)
	}

	k.running = true
	k.logger.Info("MIDI fallback keyboard connected")
	return nil
}

// midiInCallback translates incoming MIDI messages into pad events.
func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	k := (*Keyboard)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case MIM_OPEN:
		k.logger.Info("MIDI device opened")
	case MIM_CLOSE:
		k.logger.Info("MIDI device closed")
	case MIM_DATA:
		if dwParam2 == 0 {
			return 0
		}

		status := byte(dwParam1 & 0xFF)
		note := byte((dwParam1 >> 8) & 0xFF)
		velocity := byte((dwParam1 >> 16) & 0xFF)
		command := status & 0xF0

		var pressed bool
		switch {
		case command == noteOn && velocity > 0:
			pressed = true
		case command == noteOff || (command == noteOn && velocity == 0):
			pressed = false
		default:
			return 0
		}

		channel, ok := hat.PadFromNote(k.cfg.BaseNote, note)
		if !ok {
			k.logger.Debug(fmt.Sprintf("unmapped MIDI note %d", note))
			return 0
		}
		k.handlers.Dispatch(channel, pressed)
	case MIM_ERROR, MIM_LONGERROR:
		k.logger.Error(fmt.Sprintf("MIDI error: msg=0x%X", wMsg))
	case MIM_MOREDATA:
		k.logger.Debug("Received MIM_MOREDATA message; ignored")
	default:
		k.logger.Warn(fmt.Sprintf("Unknown MIDI message: 0x%X", wMsg))
	}

	return 0
}

// Stop terminates capture and closes the device. Only the first call takes
// effect.
func (k *Keyboard) Stop() error {
	var err error
	k.stopOnce.Do(func() {
		k.mu.Lock()
		defer k.mu.Unlock()
		if !k.running || k.handle == 0 {
			return
		}
		k.running = false

		if r1, _, cerr := procMidiInStop.Call(uintptr(k.handle)); r1 != 0 {
			k.logger.Error(fmt.Sprintf("Failed to stop MIDI capture: %v", cerr))
			err = cerr
			return
		}
		if r1, _, cerr := procMidiInClose.Call(uintptr(k.handle)); r1 != 0 {
			k.logger.Error(fmt.Sprintf("Failed to close MIDI device: %v", cerr))
			err = cerr
			return
		}
		k.handle = 0
		k.logger.Info("MIDI fallback keyboard stopped")
	})
	return err
}
