// Package modes implements the keyboard's interaction modes and the
// dispatcher that routes pad events to whichever mode is active.
package modes

import "github.com/hatkit/pianohat/sdk/contracts"

// Mode is one named interaction behavior of the keyboard. Exactly one mode
// is active at a time; the Registry re-binds the keyboard's note and octave
// handlers to the active mode on every switch, so a mode only ever sees
// events produced while it is active.
type Mode interface {
	Name() string
	// AutoLED reports whether the hardware should illuminate pressed pads
	// by itself while this mode is active. Modes that return false manage
	// the LEDs manually.
	AutoLED() bool
	// Activate resets mode-local state. Called every time the mode becomes
	// active, after its handlers have been bound.
	Activate()
	HandleNote(channel int, pressed bool)
	HandleOctaveUp(channel int, pressed bool)
	HandleOctaveDown(channel int, pressed bool)
}

// SampleBank is the subset of the sample bank the modes need.
type SampleBank interface {
	Sample(i int) (contracts.Sample, bool)
	File(i int) string
	Octaves() int
}

// NoteOffset shifts pad channel 0 relative to the octave base so the bank's
// C lines up with the keyboard's leftmost key.
const NoteOffset = -9
