package modes

import "github.com/hatkit/pianohat/sdk/contracts"

// FreePlayMode plays the bank sample for every pressed note pad and lets the
// octave pads shift the playable window through the bank. LEDs follow the
// hardware's touch-linked lighting.
type FreePlayMode struct {
	logger contracts.Logger
	bank   SampleBank
	octave int
}

// NewFreePlayMode creates a free-play mode starting at the given octave.
// A starting octave outside the bank's range is logged and reset to zero.
func NewFreePlayMode(logger contracts.Logger, bank SampleBank, octave int) *FreePlayMode {
	if octave < 0 || (bank.Octaves() > 0 && octave >= bank.Octaves()) {
		logger.Warn("starting octave out of range, using 0",
			logger.Field().Int("octave", octave),
			logger.Field().Int("octaves", bank.Octaves()))
		octave = 0
	}
	return &FreePlayMode{logger: logger, bank: bank, octave: octave}
}

func (m *FreePlayMode) Name() string  { return "piano" }
func (m *FreePlayMode) AutoLED() bool { return true }

// Activate keeps the current octave so switching modes and back does not
// lose the player's position.
func (m *FreePlayMode) Activate() {}

// Octave returns the current octave shift.
func (m *FreePlayMode) Octave() int { return m.octave }

func (m *FreePlayMode) HandleNote(channel int, pressed bool) {
	if !pressed {
		return
	}
	idx := channel + 12*m.octave + NoteOffset
	sample, ok := m.bank.Sample(idx)
	if !ok {
		m.logger.Debug("no sample for pad",
			m.logger.Field().Int("channel", channel),
			m.logger.Field().Int("index", idx))
		return
	}
	if err := sample.Play(); err != nil {
		m.logger.Warn("sample playback failed",
			m.logger.Field().String("file", m.bank.File(idx)),
			m.logger.Field().Error("error", err))
	}
}

func (m *FreePlayMode) HandleOctaveUp(channel int, pressed bool) {
	if !pressed {
		return
	}
	if m.octave < m.bank.Octaves()-1 {
		m.octave++
	}
	m.logger.Info("octave", m.logger.Field().Int("octave", m.octave))
}

func (m *FreePlayMode) HandleOctaveDown(channel int, pressed bool) {
	if !pressed {
		return
	}
	if m.octave > 0 {
		m.octave--
	}
	m.logger.Info("octave", m.logger.Field().Int("octave", m.octave))
}
