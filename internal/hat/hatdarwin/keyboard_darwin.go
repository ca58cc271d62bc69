//go:build darwin
// +build darwin

// Package hatdarwin implements a fallback keyboard for macOS hosts without
// the board attached: a MIDI keyboard's notes are mapped onto the pad
// channels so the demo modes stay usable.
package hatdarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/youpy/go-coremidi"

	"github.com/hatkit/pianohat/internal/hat"
	"github.com/hatkit/pianohat/sdk/contracts"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices        = errors.New("no MIDI devices found")
	ErrMIDIConnectionError  = errors.New("error connecting to MIDI device")
	ErrCreateInputPort      = errors.New("error creating input port")
	ErrIncompleteMIDIPacket = errors.New("incomplete MIDI packet")
)

// MIDI status nibbles understood by the fallback keyboard.
const (
	noteOn  = 0x90
	noteOff = 0x80
)

// internalPortConnection is an interface for handling disconnection from a
// MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// Keyboard adapts a CoreMIDI input source to the Keyboard contract. LED
// operations are no-ops: a plain MIDI keyboard has nothing to illuminate.
type Keyboard struct {
	logger   contracts.Logger
	cfg      *contracts.MIDIFallbackConfig
	handlers hat.Handlers

	client    coremidi.Client
	inputPort coremidi.InputPort
	portConn  internalPortConnection

	mu       sync.Mutex
	running  bool
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewKeyboard creates the CoreMIDI client. The input source is attached on
// Start so the process can come up before the keyboard is plugged in.
func NewKeyboard(options *contracts.ClientOptions) (contracts.Keyboard, error) {
	client, err := coremidi.NewClient(options.MIDIFallback.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI fallback keyboard created")

	return &Keyboard{
		logger: options.Logger,
		cfg:    options.MIDIFallback,
		client: client,
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

// Start connects to the first available MIDI source and begins delivering
// pad events.
func (k *Keyboard) Start() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.running {
		return nil
	}

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		k.logger.Error(ErrNoMIDIDevices.Error())
		return ErrNoMIDIDevices
	}
	source := sources[0]

	k.inputPort, err = coremidi.NewInputPort(k.client, "Input Port", k.handleMIDIMessage)
	if err != nil {
		k.logger.Error(ErrCreateInputPort.Error())
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}
	k.portConn, err = k.inputPort.Connect(source)
	if err != nil {
		k.logger.Error(ErrMIDIConnectionError.Error())
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	k.running = true
	k.logger.Info("MIDI fallback keyboard connected",
		k.logger.Field().String("source", source.Name()))
	return nil
}

// handleMIDIMessage translates an incoming packet into a pad event. CoreMIDI
// delivers packets serially per port, which preserves the one-event-at-a-time
// contract.
func (k *Keyboard) handleMIDIMessage(source coremidi.Source, packet coremidi.Packet) {
	k.wg.Add(1)
	defer k.wg.Done()

	if len(packet.Data) < 3 {
		k.logger.Warn(ErrIncompleteMIDIPacket.Error())
		return
	}
	command := packet.Data[0] & 0xF0
	note := packet.Data[1]
	velocity := packet.Data[2]

	var pressed bool
	switch {
	case command == noteOn && velocity > 0:
		pressed = true
	case command == noteOff || (command == noteOn && velocity == 0):
		pressed = false
	default:
		return
	}

	channel, ok := hat.PadFromNote(k.cfg.BaseNote, note)
	if !ok {
		k.logger.Debug("unmapped MIDI note", k.logger.Field().Uint8("note", note))
		return
	}
	k.handlers.Dispatch(channel, pressed)
}

// Stop disconnects from the source and waits for in-flight packet handling.
// Only the first call takes effect.
func (k *Keyboard) Stop() error {
	k.stopOnce.Do(func() {
		k.mu.Lock()
		defer k.mu.Unlock()
		if !k.running {
			return
		}
		k.running = false
		if k.portConn != nil {
			k.portConn.Disconnect()
			k.portConn = nil
		}
		k.wg.Wait()
		k.logger.Info("MIDI fallback keyboard stopped")
	})
	return nil
}
