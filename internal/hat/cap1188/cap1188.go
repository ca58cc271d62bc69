// Package cap1188 drives a CAP1188 8-channel capacitive touch controller
// with integrated LED drivers over I²C. The keyboard board carries two of
// them, one per half of the pad strip.
package cap1188

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// Register map (CAP1188 datasheet).
const (
	regMainControl     = 0x00
	regInputStatus     = 0x03
	regSensitivity     = 0x1F
	regInputEnable     = 0x21
	regInterruptEnable = 0x27
	regRepeatEnable    = 0x28
	regMultiTouch      = 0x2A
	regThresholdBase   = 0x30 // 0x30..0x37, one threshold per input
	regLEDLinking      = 0x72
	regLEDPolarity     = 0x73
	regLEDOutput       = 0x74
	regProductID       = 0xFD
	regManufacturerID  = 0xFE

	productID      = 0x50
	manufacturerID = 0x5D

	// INT bit in the main control register. It latches on any touch state
	// change and must be cleared for the status register to track releases.
	mainControlInt = 0x01
)

// ErrWrongDevice is returned when the chip at the given address does not
// identify as a CAP1188.
var ErrWrongDevice = errors.New("cap1188: unexpected product or manufacturer ID")

// Opts holds the chip configuration applied at open time.
type Opts struct {
	// Threshold is the per-input touch threshold. Lower is more sensitive.
	// Zero keeps the chip's power-on default.
	Threshold uint8
}

// Dev is an opened CAP1188.
type Dev struct {
	c i2c.Dev
}

// New opens and configures a CAP1188 on the given bus and address. The chip
// identity is verified, all eight inputs are enabled with multi-touch
// allowed, key repeat is disabled and the LEDs start unlinked and off.
func New(bus i2c.Bus, addr uint16, opts Opts) (*Dev, error) {
	d := &Dev{c: i2c.Dev{Bus: bus, Addr: addr}}

	pid, err := d.readReg(regProductID)
	if err != nil {
		return nil, fmt.Errorf("cap1188: reading product ID: %w", err)
	}
	mid, err := d.readReg(regManufacturerID)
	if err != nil {
		return nil, fmt.Errorf("cap1188: reading manufacturer ID: %w", err)
	}
	if pid != productID || mid != manufacturerID {
		return nil, fmt.Errorf("%w: product 0x%02X manufacturer 0x%02X", ErrWrongDevice, pid, mid)
	}

	if opts.Threshold != 0 {
		for i := uint8(0); i < 8; i++ {
			if err := d.writeReg(regThresholdBase+i, opts.Threshold); err != nil {
				return nil, fmt.Errorf("cap1188: setting threshold %d: %w", i, err)
			}
		}
	}
	setup := []struct{ reg, val uint8 }{
		{regInputEnable, 0xFF},
		{regInterruptEnable, 0xFF},
		{regRepeatEnable, 0x00}, // one event per touch, no auto-repeat
		{regMultiTouch, 0x00},   // allow simultaneous touches
		{regLEDLinking, 0x00},
		{regLEDPolarity, 0x00},
		{regLEDOutput, 0x00},
	}
	for _, s := range setup {
		if err := d.writeReg(s.reg, s.val); err != nil {
			return nil, fmt.Errorf("cap1188: writing register 0x%02X: %w", s.reg, err)
		}
	}
	return d, nil
}

// Touched returns the current touch state as a bitmask, bit i for input i.
// The latched interrupt bit is cleared afterwards so the next read reflects
// releases as well.
func (d *Dev) Touched() (uint8, error) {
	status, err := d.readReg(regInputStatus)
	if err != nil {
		return 0, fmt.Errorf("cap1188: reading input status: %w", err)
	}
	main, err := d.readReg(regMainControl)
	if err != nil {
		return 0, fmt.Errorf("cap1188: reading main control: %w", err)
	}
	if main&mainControlInt != 0 {
		if err := d.writeReg(regMainControl, main&^mainControlInt); err != nil {
			return 0, fmt.Errorf("cap1188: clearing interrupt: %w", err)
		}
	}
	return status, nil
}

// SetLED switches a single LED output on or off. The LED must not be linked
// to its sensor input for this to take effect.
func (d *Dev) SetLED(index int, on bool) error {
	if index < 0 || index > 7 {
		return fmt.Errorf("cap1188: LED index %d out of range", index)
	}
	cur, err := d.readReg(regLEDOutput)
	if err != nil {
		return fmt.Errorf("cap1188: reading LED output: %w", err)
	}
	if on {
		cur |= 1 << uint(index)
	} else {
		cur &^= 1 << uint(index)
	}
	return d.writeReg(regLEDOutput, cur)
}

// LinkLEDs links or unlinks all eight LEDs to their sensor inputs. Linked
// LEDs illuminate while their pad is touched without host writes.
func (d *Dev) LinkLEDs(link bool) error {
	var v uint8
	if link {
		v = 0xFF
	}
	return d.writeReg(regLEDLinking, v)
}

// AllLEDsOff clears every LED output.
func (d *Dev) AllLEDsOff() error {
	return d.writeReg(regLEDOutput, 0x00)
}

func (d *Dev) readReg(reg uint8) (uint8, error) {
	var buf [1]byte
	if err := d.c.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Dev) writeReg(reg, val uint8) error {
	return d.c.Tx([]byte{reg, val}, nil)
}
