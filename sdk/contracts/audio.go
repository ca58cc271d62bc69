package contracts

// Sample is a fully decoded, memory-resident sound. Play is fire-and-forget:
// it never blocks the caller, and overlapping playback is mixed by the
// engine's channel pool.
type Sample interface {
	Play() error
}

// Clip is a longer music track with transport control. A clip holds at most
// one player: Play restarts from the beginning, Pause/Resume toggle the
// current position and Stop discards it.
type Clip interface {
	Play() error
	Pause()
	Resume()
	Stop()
	// Playing reports whether the clip is currently audible (started and
	// not paused or stopped).
	Playing() bool
}

// Engine defines the audio engine boundary. Samples and clips are decoded
// eagerly at load time; a load failure is an error, there is no partial
// recovery.
type Engine interface {
	LoadSample(path string) (Sample, error)
	LoadClip(path string) (Clip, error)
	Close() error
}

// EngineConfig holds the fixed parameters the engine is initialized with.
// Zero values select the defaults noted per field.
type EngineConfig struct {
	SampleRate      int // output sample rate in Hz (default 44100)
	ChannelCount    int // output channels, 1 or 2 (default 1)
	BitDepthInBytes int // output sample width (default 2, 16-bit)
	PoolSize        int // max concurrent sample players (default 16)
}
