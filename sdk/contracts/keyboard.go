package contracts

// Pad channel layout of the keyboard. The board exposes thirteen note pads
// (a full octave plus the next C) followed by three control pads.
const (
	// NoteChannels is the number of note pads; note events carry a channel
	// in [0, NoteChannels).
	NoteChannels = 13
	// ChannelOctaveDown is the pad channel of the octave-down control.
	ChannelOctaveDown = 13
	// ChannelOctaveUp is the pad channel of the octave-up control.
	ChannelOctaveUp = 14
	// ChannelInstrument is the pad channel of the instrument control.
	ChannelInstrument = 15
	// NumPads is the total pad (and LED) count.
	NumPads = 16
)

// TouchHandler receives a single pad event. channel identifies the pad that
// produced the event and pressed distinguishes a touch from a release.
// Drivers invoke handlers serially, one event at a time, from a single
// dispatch goroutine.
type TouchHandler func(channel int, pressed bool)

// Keyboard defines the hardware driver boundary of the touch keyboard.
//
// The four On* registration hooks may be called at any time, including while
// events are being delivered; the new handler takes effect for the next
// event. Passing nil unbinds the hook.
type Keyboard interface {
	// OnNote binds the handler for the thirteen note pads.
	OnNote(handler TouchHandler)
	// OnOctaveUp binds the handler for the octave-up pad.
	OnOctaveUp(handler TouchHandler)
	// OnOctaveDown binds the handler for the octave-down pad.
	OnOctaveDown(handler TouchHandler)
	// OnInstrument binds the handler for the instrument pad.
	OnInstrument(handler TouchHandler)

	// SetLED switches a single pad LED on or off. Out-of-range indexes are
	// ignored.
	SetLED(index int, on bool) error
	// AutoLEDs enables or disables the controller's touch-linked LED mode,
	// where pressed pads illuminate without host intervention.
	AutoLEDs(enabled bool) error

	// Start begins event delivery. Stop halts delivery and releases the
	// underlying device; it is safe to call more than once.
	Start() error
	Stop() error
}
