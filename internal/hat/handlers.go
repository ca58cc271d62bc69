// Package hat holds the pieces shared by the platform keyboard drivers:
// atomic handler bindings and the MIDI note to pad channel mapping used by
// the fallback keyboards.
package hat

import (
	"sync/atomic"

	"github.com/hatkit/pianohat/sdk/contracts"
)

// handlerBox wraps a handler so atomic.Value always stores one concrete type,
// including a nil (unbound) handler.
type handlerBox struct {
	fn contracts.TouchHandler
}

// Handlers holds the four event bindings of a keyboard. Bindings are stored
// atomically so they can be replaced while the dispatch goroutine is running;
// the new handler takes effect for the next event.
type Handlers struct {
	note       atomic.Value
	octaveUp   atomic.Value
	octaveDown atomic.Value
	instrument atomic.Value
}

func (h *Handlers) SetNote(fn contracts.TouchHandler)       { h.note.Store(handlerBox{fn}) }
func (h *Handlers) SetOctaveUp(fn contracts.TouchHandler)   { h.octaveUp.Store(handlerBox{fn}) }
func (h *Handlers) SetOctaveDown(fn contracts.TouchHandler) { h.octaveDown.Store(handlerBox{fn}) }
func (h *Handlers) SetInstrument(fn contracts.TouchHandler) { h.instrument.Store(handlerBox{fn}) }

// Dispatch routes a pad event to the handler bound for its channel group.
// Events on channels outside the pad layout are dropped.
func (h *Handlers) Dispatch(channel int, pressed bool) {
	switch {
	case channel >= 0 && channel < contracts.NoteChannels:
		call(&h.note, channel, pressed)
	case channel == contracts.ChannelOctaveDown:
		call(&h.octaveDown, channel, pressed)
	case channel == contracts.ChannelOctaveUp:
		call(&h.octaveUp, channel, pressed)
	case channel == contracts.ChannelInstrument:
		call(&h.instrument, channel, pressed)
	}
}

func call(v *atomic.Value, channel int, pressed bool) {
	if box, ok := v.Load().(handlerBox); ok && box.fn != nil {
		box.fn(channel, pressed)
	}
}
