package modes

import (
	"errors"
	"testing"
	"time"

	"github.com/hatkit/pianohat/sdk/contracts"
)

type nopField struct{}

func (f nopField) Bool(string, bool) contracts.Field       { return f }
func (f nopField) Int(string, int) contracts.Field         { return f }
func (f nopField) Float64(string, float64) contracts.Field { return f }
func (f nopField) String(string, string) contracts.Field   { return f }
func (f nopField) Time(string, time.Time) contracts.Field  { return f }
func (f nopField) Int64(string, int64) contracts.Field     { return f }
func (f nopField) Error(string, error) contracts.Field     { return f }
func (f nopField) Uint64(string, uint64) contracts.Field   { return f }
func (f nopField) Uint8(string, uint8) contracts.Field     { return f }

type nopLogger struct{}

func (nopLogger) Info(string, ...contracts.Field)                    {}
func (nopLogger) Error(string, ...contracts.Field)                   {}
func (nopLogger) Debug(string, ...contracts.Field)                   {}
func (nopLogger) Warn(string, ...contracts.Field)                    {}
func (nopLogger) Fatal(string, ...contracts.Field)                   {}
func (nopLogger) Field() contracts.Field                             { return nopField{} }
func (nopLogger) SetLevel(contracts.LogLevel)                        {}
func (nopLogger) SetDestination(contracts.LogDestination, ...string) {}

// fakeKeyboard records LED state and lets tests feed events through the
// currently bound handlers, the way a driver would.
type fakeKeyboard struct {
	note       contracts.TouchHandler
	octaveUp   contracts.TouchHandler
	octaveDown contracts.TouchHandler
	instrument contracts.TouchHandler

	leds    [contracts.NumPads]bool
	autoLED bool
}

func (k *fakeKeyboard) OnNote(h contracts.TouchHandler)       { k.note = h }
func (k *fakeKeyboard) OnOctaveUp(h contracts.TouchHandler)   { k.octaveUp = h }
func (k *fakeKeyboard) OnOctaveDown(h contracts.TouchHandler) { k.octaveDown = h }
func (k *fakeKeyboard) OnInstrument(h contracts.TouchHandler) { k.instrument = h }

func (k *fakeKeyboard) SetLED(index int, on bool) error {
	if index < 0 || index >= contracts.NumPads {
		return errors.New("led index out of range")
	}
	k.leds[index] = on
	return nil
}

func (k *fakeKeyboard) AutoLEDs(enabled bool) error {
	k.autoLED = enabled
	return nil
}

func (k *fakeKeyboard) Start() error { return nil }
func (k *fakeKeyboard) Stop() error  { return nil }

func (k *fakeKeyboard) press(channel int) {
	k.note(channel, true)
	k.note(channel, false)
}

type playedSample struct {
	plays *[]int
	index int
	err   error
}

func (s *playedSample) Play() error {
	*s.plays = append(*s.plays, s.index)
	return s.err
}

// fakeBank exposes size*12 samples and records every play by bank index.
type fakeBank struct {
	octaves int
	plays   []int
}

func (b *fakeBank) Sample(i int) (contracts.Sample, bool) {
	if i < 0 || i >= b.octaves*12 {
		return nil, false
	}
	return &playedSample{plays: &b.plays, index: i}, true
}

func (b *fakeBank) File(i int) string { return "" }
func (b *fakeBank) Octaves() int      { return b.octaves }

type fakeClip struct {
	playCalls   int
	resumeCalls int
	pauseCalls  int
	stopCalls   int
	playing     bool
}

func (c *fakeClip) Play() error {
	c.playCalls++
	c.playing = true
	return nil
}
func (c *fakeClip) Pause()        { c.pauseCalls++; c.playing = false }
func (c *fakeClip) Resume()       { c.resumeCalls++; c.playing = true }
func (c *fakeClip) Stop()         { c.stopCalls++; c.playing = false }
func (c *fakeClip) Playing() bool { return c.playing }

// countingMode records how many events reached it.
type countingMode struct {
	name      string
	activated int
	notes     int
}

func (m *countingMode) Name() string               { return m.name }
func (m *countingMode) AutoLED() bool              { return false }
func (m *countingMode) Activate()                  { m.activated++ }
func (m *countingMode) HandleNote(int, bool)       { m.notes++ }
func (m *countingMode) HandleOctaveUp(int, bool)   {}
func (m *countingMode) HandleOctaveDown(int, bool) {}

func TestRegistryRequiresModes(t *testing.T) {
	if _, err := NewRegistry(&fakeKeyboard{}, nopLogger{}); !errors.Is(err, ErrNoModes) {
		t.Fatalf("NewRegistry() error = %v, want ErrNoModes", err)
	}
}

func TestRegistryCyclesThroughModes(t *testing.T) {
	kb := &fakeKeyboard{}
	a := &countingMode{name: "a"}
	b := &countingMode{name: "b"}
	c := &countingMode{name: "c"}
	reg, err := NewRegistry(kb, nopLogger{}, a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	reg.Start()
	if reg.Active() != a {
		t.Fatalf("active after Start = %q, want a", reg.Active().Name())
	}
	for i, want := range []Mode{b, c, a} {
		kb.instrument(15, true)
		kb.instrument(15, false)
		if reg.Active() != want {
			t.Fatalf("active after press %d = %q, want %q", i+1, reg.Active().Name(), want.Name())
		}
	}
	if a.activated != 2 {
		t.Errorf("mode a activated %d times, want 2", a.activated)
	}
}

func TestRegistryReleaseDoesNotAdvance(t *testing.T) {
	kb := &fakeKeyboard{}
	reg, err := NewRegistry(kb, nopLogger{}, &countingMode{name: "a"}, &countingMode{name: "b"})
	if err != nil {
		t.Fatal(err)
	}
	reg.Start()
	kb.instrument(15, false)
	if reg.Index() != 0 {
		t.Fatalf("Index = %d after release, want 0", reg.Index())
	}
}

func TestRegistryRebindsHandlers(t *testing.T) {
	kb := &fakeKeyboard{}
	a := &countingMode{name: "a"}
	b := &countingMode{name: "b"}
	reg, err := NewRegistry(kb, nopLogger{}, a, b)
	if err != nil {
		t.Fatal(err)
	}
	reg.Start()
	kb.press(0)
	kb.instrument(15, true)
	kb.press(0)
	if a.notes != 2 {
		t.Errorf("mode a saw %d note events, want 2", a.notes)
	}
	if b.notes != 2 {
		t.Errorf("mode b saw %d note events, want 2", b.notes)
	}
}

func TestRegistryClearsLEDsOnActivate(t *testing.T) {
	kb := &fakeKeyboard{}
	for i := range kb.leds {
		kb.leds[i] = true
	}
	reg, err := NewRegistry(kb, nopLogger{}, &countingMode{name: "a"})
	if err != nil {
		t.Fatal(err)
	}
	reg.Start()
	for i, on := range kb.leds {
		if on {
			t.Errorf("LED %d still on after activation", i)
		}
	}
}

func TestFreePlayNoteIndex(t *testing.T) {
	bank := &fakeBank{octaves: 6}
	m := NewFreePlayMode(nopLogger{}, bank, 2)

	m.HandleNote(9, true)
	m.HandleNote(9, false)
	want := 9 + 12*2 + NoteOffset
	if len(bank.plays) != 1 || bank.plays[0] != want {
		t.Fatalf("plays = %v, want [%d]", bank.plays, want)
	}
}

func TestFreePlayOctaveClamping(t *testing.T) {
	bank := &fakeBank{octaves: 3}
	m := NewFreePlayMode(nopLogger{}, bank, 0)

	m.HandleOctaveDown(13, true)
	if m.Octave() != 0 {
		t.Fatalf("octave after down at floor = %d, want 0", m.Octave())
	}
	for i := 0; i < 5; i++ {
		m.HandleOctaveUp(14, true)
	}
	if m.Octave() != 2 {
		t.Fatalf("octave after repeated up = %d, want 2", m.Octave())
	}
	m.HandleOctaveDown(13, true)
	if m.Octave() != 1 {
		t.Fatalf("octave after down = %d, want 1", m.Octave())
	}
	m.HandleOctaveUp(14, false)
	if m.Octave() != 1 {
		t.Fatalf("octave changed on release, got %d", m.Octave())
	}
}

func TestFreePlayBadStartingOctave(t *testing.T) {
	bank := &fakeBank{octaves: 2}
	if m := NewFreePlayMode(nopLogger{}, bank, 9); m.Octave() != 0 {
		t.Fatalf("Octave = %d, want 0", m.Octave())
	}
}

func TestFreePlayOutOfRangeIndexIsSilent(t *testing.T) {
	bank := &fakeBank{octaves: 1}
	m := NewFreePlayMode(nopLogger{}, bank, 0)
	m.HandleNote(0, true) // index NoteOffset, below the bank
	if len(bank.plays) != 0 {
		t.Fatalf("plays = %v, want none", bank.plays)
	}
}

func newTestMelody(t *testing.T, melody []int, reward contracts.Clip) (*MelodyMode, *fakeKeyboard, *fakeBank) {
	t.Helper()
	kb := &fakeKeyboard{}
	bank := &fakeBank{octaves: 6}
	m := NewMelodyMode(nopLogger{}, kb, bank, MelodyConfig{
		Name:   "test",
		Melody: melody,
		Octave: 4,
		Reward: reward,
	})
	m.sweepStep = 0
	m.Activate()
	return m, kb, bank
}

func TestMelodyAdvanceAndLEDs(t *testing.T) {
	m, kb, bank := newTestMelody(t, []int{0, 2, 4}, nil)

	if !kb.leds[0] {
		t.Fatal("first expected pad not lit after Activate")
	}
	m.HandleNote(0, true)
	if m.Cursor() != 1 {
		t.Fatalf("Cursor = %d, want 1", m.Cursor())
	}
	if kb.leds[0] || !kb.leds[2] {
		t.Fatalf("LEDs after advance: pad0=%v pad2=%v", kb.leds[0], kb.leds[2])
	}
	want := 12*4 + NoteOffset
	if len(bank.plays) != 1 || bank.plays[0] != want {
		t.Fatalf("plays = %v, want [%d]", bank.plays, want)
	}
}

func TestMelodyWrongNoteIgnored(t *testing.T) {
	m, kb, bank := newTestMelody(t, []int{5, 7}, nil)

	m.HandleNote(7, true)
	if m.Cursor() != 0 {
		t.Fatalf("Cursor = %d after wrong note, want 0", m.Cursor())
	}
	if len(bank.plays) != 0 {
		t.Fatalf("plays = %v after wrong note, want none", bank.plays)
	}
	if !kb.leds[5] {
		t.Fatal("expected pad no longer lit after wrong note")
	}
}

func TestMelodyReleaseIgnored(t *testing.T) {
	m, _, bank := newTestMelody(t, []int{3}, nil)
	m.HandleNote(3, false)
	if m.Cursor() != 0 || len(bank.plays) != 0 {
		t.Fatalf("release advanced melody: cursor=%d plays=%v", m.Cursor(), bank.plays)
	}
}

func TestMelodyCompletionPlaysReward(t *testing.T) {
	reward := &fakeClip{}
	m, kb, _ := newTestMelody(t, []int{0, 2}, reward)

	m.HandleNote(0, true)
	m.HandleNote(2, true)
	if m.Cursor() != 0 {
		t.Fatalf("Cursor after completion = %d, want 0", m.Cursor())
	}
	if reward.playCalls != 1 {
		t.Fatalf("reward played %d times, want 1", reward.playCalls)
	}
	if !kb.leds[0] {
		t.Fatal("first pad not re-lit after wrap")
	}
}

func TestMelodyActivateResetsCursor(t *testing.T) {
	m, _, _ := newTestMelody(t, []int{0, 2, 4}, nil)
	m.HandleNote(0, true)
	m.Activate()
	if m.Cursor() != 0 {
		t.Fatalf("Cursor after Activate = %d, want 0", m.Cursor())
	}
}

func TestMelodyRewardTransport(t *testing.T) {
	reward := &fakeClip{}
	m, _, _ := newTestMelody(t, []int{0}, reward)

	m.HandleOctaveUp(14, true)
	if reward.resumeCalls != 1 {
		t.Fatalf("Resume calls = %d, want 1", reward.resumeCalls)
	}
	m.HandleOctaveDown(13, true) // playing, so pause
	if reward.pauseCalls != 1 {
		t.Fatalf("Pause calls = %d, want 1", reward.pauseCalls)
	}
	m.HandleOctaveDown(13, true) // paused, so stop
	if reward.stopCalls != 1 {
		t.Fatalf("Stop calls = %d, want 1", reward.stopCalls)
	}
	m.HandleOctaveUp(14, false)
	if reward.resumeCalls != 1 {
		t.Fatal("release triggered transport")
	}
}

func TestMelodyWithoutRewardTransportIsInert(t *testing.T) {
	m, _, _ := newTestMelody(t, []int{0}, nil)
	m.HandleOctaveUp(14, true)
	m.HandleOctaveDown(13, true)
}

func TestBuiltinMelodiesInRange(t *testing.T) {
	for name, melody := range Builtin {
		if len(melody) == 0 {
			t.Errorf("melody %q is empty", name)
		}
		for i, n := range melody {
			if n < 0 || n >= contracts.NoteChannels {
				t.Errorf("melody %q note %d = %d, out of pad range", name, i, n)
			}
		}
	}
}
