// Package otoengine implements the audio engine contract on top of oto's
// mixing context. Samples are decoded to the output format at load time and
// playback is fire-and-forget through a bounded pool of players.
package otoengine

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/hatkit/pianohat/sdk/contracts"
)

const (
	defaultSampleRate   = 44100
	defaultChannelCount = 1
	defaultBitDepth     = 2
	defaultPoolSize     = 16
)

// Engine holds the process-wide oto context. oto permits a single context
// per process, so one Engine serves all samples and clips.
type Engine struct {
	logger contracts.Logger
	cfg    contracts.EngineConfig
	ctx    *oto.Context
	ready  chan struct{}
	pool   chan struct{}
}

// New creates the audio context with the given parameters. Zero-valued
// fields fall back to 44.1kHz mono 16-bit with a 16 player pool.
func New(logger contracts.Logger, cfg contracts.EngineConfig) (*Engine, error) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = defaultSampleRate
	}
	if cfg.ChannelCount == 0 {
		cfg.ChannelCount = defaultChannelCount
	}
	if cfg.BitDepthInBytes == 0 {
		cfg.BitDepthInBytes = defaultBitDepth
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = defaultPoolSize
	}
	if cfg.BitDepthInBytes != 2 {
		return nil, fmt.Errorf("audio engine: only 16-bit output is supported, got %d bytes", cfg.BitDepthInBytes)
	}
	if cfg.ChannelCount != 1 && cfg.ChannelCount != 2 {
		return nil, fmt.Errorf("audio engine: channel count must be 1 or 2, got %d", cfg.ChannelCount)
	}

	ctx, ready, err := oto.NewContext(cfg.SampleRate, cfg.ChannelCount, cfg.BitDepthInBytes)
	if err != nil {
		return nil, fmt.Errorf("audio engine: initializing context: %w", err)
	}

	logger.Info("audio engine initialized",
		logger.Field().Int("sampleRate", cfg.SampleRate),
		logger.Field().Int("channels", cfg.ChannelCount),
		logger.Field().Int("pool", cfg.PoolSize))

	return &Engine{
		logger: logger,
		cfg:    cfg,
		ctx:    ctx,
		ready:  ready,
		pool:   make(chan struct{}, cfg.PoolSize),
	}, nil
}

// LoadSample eagerly decodes the file into output-format PCM.
func (e *Engine) LoadSample(path string) (contracts.Sample, error) {
	pcm, err := decodeFile(path, e.cfg)
	if err != nil {
		return nil, err
	}
	return &sample{engine: e, path: path, pcm: pcm}, nil
}

// LoadClip eagerly decodes a music file into output-format PCM.
func (e *Engine) LoadClip(path string) (contracts.Clip, error) {
	pcm, err := decodeFile(path, e.cfg)
	if err != nil {
		return nil, err
	}
	return &clip{engine: e, path: path, pcm: pcm}, nil
}

// Close suspends the audio context. oto contexts cannot be torn down, so
// suspension is the closest clean-shutdown equivalent.
func (e *Engine) Close() error {
	return e.ctx.Suspend()
}

// sample is a memory-resident sound effect.
type sample struct {
	engine *Engine
	path   string
	pcm    []byte
}

// Play starts playback without blocking. If the player pool is exhausted the
// event is dropped with a warning rather than delaying the caller.
func (s *sample) Play() error {
	e := s.engine
	select {
	case e.pool <- struct{}{}:
	default:
		e.logger.Warn("sample pool exhausted; playback dropped",
			e.logger.Field().String("file", s.path))
		return nil
	}
	go func() {
		defer func() { <-e.pool }()
		<-e.ready
		p := e.ctx.NewPlayer(bytes.NewReader(s.pcm))
		p.Play()
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
	return nil
}
