package hat

import "github.com/hatkit/pianohat/sdk/contracts"

// PadFromNote maps a MIDI note number onto a pad channel for the MIDI-backed
// fallback keyboards. base is the note mapped to pad channel 0.
//
// Layout relative to base: 0..12 are the thirteen note pads, -2 is the
// octave-down pad, +14 the octave-up pad and -4 the instrument pad. With the
// default base of 60 (middle C) that puts the controls on B♭3, D5 and A♭3,
// just outside the playable octave. Anything else is unmapped.
func PadFromNote(base, note uint8) (int, bool) {
	n := int(note) - int(base)
	switch {
	case n >= 0 && n < contracts.NoteChannels:
		return n, true
	case n == -2:
		return contracts.ChannelOctaveDown, true
	case n == 14:
		return contracts.ChannelOctaveUp, true
	case n == -4:
		return contracts.ChannelInstrument, true
	}
	return 0, false
}
