package hat

import (
	"testing"

	"github.com/hatkit/pianohat/sdk/contracts"
)

type event struct {
	channel int
	pressed bool
}

func recorder(dst *[]event) contracts.TouchHandler {
	return func(channel int, pressed bool) {
		*dst = append(*dst, event{channel, pressed})
	}
}

func TestDispatchRouting(t *testing.T) {
	var notes, ups, downs, instruments []event
	h := &Handlers{}
	h.SetNote(recorder(&notes))
	h.SetOctaveUp(recorder(&ups))
	h.SetOctaveDown(recorder(&downs))
	h.SetInstrument(recorder(&instruments))

	for ch := 0; ch < contracts.NumPads; ch++ {
		h.Dispatch(ch, true)
	}
	h.Dispatch(5, false)

	if len(notes) != contracts.NoteChannels+1 {
		t.Errorf("note events = %d, want %d", len(notes), contracts.NoteChannels+1)
	}
	if notes[5].channel != 5 || !notes[5].pressed {
		t.Errorf("note event 5 = %+v", notes[5])
	}
	last := notes[len(notes)-1]
	if last.channel != 5 || last.pressed {
		t.Errorf("release event = %+v", last)
	}
	if len(downs) != 1 || downs[0].channel != contracts.ChannelOctaveDown {
		t.Errorf("octave-down events = %v", downs)
	}
	if len(ups) != 1 || ups[0].channel != contracts.ChannelOctaveUp {
		t.Errorf("octave-up events = %v", ups)
	}
	if len(instruments) != 1 || instruments[0].channel != contracts.ChannelInstrument {
		t.Errorf("instrument events = %v", instruments)
	}
}

func TestDispatchUnboundAndOutOfRange(t *testing.T) {
	h := &Handlers{}
	// No handlers bound: must not panic.
	h.Dispatch(0, true)
	h.Dispatch(contracts.ChannelInstrument, true)

	var notes []event
	h.SetNote(recorder(&notes))
	h.Dispatch(-1, true)
	h.Dispatch(contracts.NumPads, true)
	if len(notes) != 0 {
		t.Errorf("out-of-range channels dispatched: %v", notes)
	}

	// Rebinding to nil unbinds.
	h.SetNote(nil)
	h.Dispatch(0, true)
	if len(notes) != 0 {
		t.Errorf("nil handler dispatched: %v", notes)
	}
}

func TestDispatchRebind(t *testing.T) {
	var first, second []event
	h := &Handlers{}
	h.SetNote(recorder(&first))
	h.Dispatch(3, true)
	h.SetNote(recorder(&second))
	h.Dispatch(4, true)

	if len(first) != 1 || first[0].channel != 3 {
		t.Errorf("first handler events = %v", first)
	}
	if len(second) != 1 || second[0].channel != 4 {
		t.Errorf("second handler events = %v", second)
	}
}

func TestPadFromNote(t *testing.T) {
	const base = 60
	cases := []struct {
		note   uint8
		pad    int
		mapped bool
	}{
		{60, 0, true},
		{72, 12, true},
		{58, contracts.ChannelOctaveDown, true},
		{74, contracts.ChannelOctaveUp, true},
		{56, contracts.ChannelInstrument, true},
		{73, 0, false},
		{59, 0, false},
		{57, 0, false},
		{75, 0, false},
		{0, 0, false},
	}
	for _, c := range cases {
		pad, ok := PadFromNote(base, c.note)
		if ok != c.mapped || (ok && pad != c.pad) {
			t.Errorf("PadFromNote(%d, %d) = (%d, %v), want (%d, %v)",
				base, c.note, pad, ok, c.pad, c.mapped)
		}
	}
}
