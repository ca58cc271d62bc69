package modes

import (
	"time"

	"github.com/hatkit/pianohat/sdk/contracts"
)

// MelodyConfig describes one teaching melody.
type MelodyConfig struct {
	// Name identifies the melody in logs and mode listings.
	Name string
	// Melody is the sequence of semitone offsets within the octave,
	// relative to pad channel 0.
	Melody []int
	// Octave places the melody within the bank. Zero means octave 4.
	Octave int
	// Transpose shifts the whole melody by semitones.
	Transpose int
	// Reward, when set, is played after the melody has been completed and
	// can be replayed or paused with the octave pads.
	Reward contracts.Clip
}

// MelodyMode lights the next expected pad and only advances when that pad is
// pressed. Completing the melody runs an LED sweep and starts the reward
// clip, if any. While the mode is active the octave pads act as transport
// controls for the reward.
type MelodyMode struct {
	logger     contracts.Logger
	keyboard   contracts.Keyboard
	bank       SampleBank
	cfg        MelodyConfig
	noteOffset int
	cursor     int

	// sweepStep is the delay between LED steps of the completion sweep.
	// Tests shorten it.
	sweepStep time.Duration
}

// NewMelodyMode creates a melody mode over the given bank and keyboard.
func NewMelodyMode(logger contracts.Logger, keyboard contracts.Keyboard, bank SampleBank, cfg MelodyConfig) *MelodyMode {
	octave := cfg.Octave
	if octave == 0 {
		octave = 4
	}
	return &MelodyMode{
		logger:     logger,
		keyboard:   keyboard,
		bank:       bank,
		cfg:        cfg,
		noteOffset: 12*octave + cfg.Transpose + NoteOffset,
		sweepStep:  10 * time.Millisecond,
	}
}

func (m *MelodyMode) Name() string  { return m.cfg.Name }
func (m *MelodyMode) AutoLED() bool { return false }

// Activate restarts the melody from its first note.
func (m *MelodyMode) Activate() {
	m.cursor = 0
	if len(m.cfg.Melody) > 0 {
		m.setLED(m.cfg.Melody[m.cursor], true)
	}
}

// Cursor returns the position of the next expected note.
func (m *MelodyMode) Cursor() int { return m.cursor }

func (m *MelodyMode) HandleNote(channel int, pressed bool) {
	if !pressed || len(m.cfg.Melody) == 0 {
		return
	}
	expected := m.cfg.Melody[m.cursor]
	if channel != expected {
		m.logger.Debug("wrong pad",
			m.logger.Field().Int("channel", channel),
			m.logger.Field().Int("expected", expected))
		return
	}

	idx := m.noteOffset + channel
	if sample, ok := m.bank.Sample(idx); ok {
		if err := sample.Play(); err != nil {
			m.logger.Warn("sample playback failed",
				m.logger.Field().String("file", m.bank.File(idx)),
				m.logger.Field().Error("error", err))
		}
	}

	m.setLED(expected, false)
	m.cursor = (m.cursor + 1) % len(m.cfg.Melody)
	if m.cursor == 0 {
		m.celebrate()
	}
	m.setLED(m.cfg.Melody[m.cursor], true)
}

// HandleOctaveUp resumes a paused reward clip.
func (m *MelodyMode) HandleOctaveUp(channel int, pressed bool) {
	if !pressed || m.cfg.Reward == nil {
		return
	}
	m.cfg.Reward.Resume()
}

// HandleOctaveDown pauses a playing reward, or stops a paused one.
func (m *MelodyMode) HandleOctaveDown(channel int, pressed bool) {
	if !pressed || m.cfg.Reward == nil {
		return
	}
	if m.cfg.Reward.Playing() {
		m.cfg.Reward.Pause()
	} else {
		m.cfg.Reward.Stop()
	}
}

func (m *MelodyMode) celebrate() {
	m.logger.Info("melody complete", m.logger.Field().String("melody", m.cfg.Name))
	for pad := 0; pad < contracts.NumPads; pad++ {
		m.setLED(pad, true)
		time.Sleep(m.sweepStep)
		m.setLED(pad, false)
	}
	if m.cfg.Reward != nil {
		if err := m.cfg.Reward.Play(); err != nil {
			m.logger.Warn("reward playback failed", m.logger.Field().Error("error", err))
		}
	}
}

func (m *MelodyMode) setLED(pad int, on bool) {
	if err := m.keyboard.SetLED(pad, on); err != nil {
		m.logger.Warn("failed to set LED",
			m.logger.Field().Int("pad", pad),
			m.logger.Field().Error("error", err))
	}
}
