package otoengine

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/oto/v2"
)

// clip is a music track with transport control. Unlike samples a clip keeps
// a single player so it can be paused, resumed and stopped; Play restarts it
// from the beginning.
type clip struct {
	engine *Engine
	path   string
	pcm    []byte

	mu     sync.Mutex
	player oto.Player
}

func (c *clip) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.player != nil {
		c.player.Close()
	}
	<-c.engine.ready
	c.player = c.engine.ctx.NewPlayer(bytes.NewReader(c.pcm))
	c.player.Play()
	c.engine.logger.Debug("clip started",
		c.engine.logger.Field().String("file", c.path))
	return nil
}

func (c *clip) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.player != nil {
		c.player.Pause()
	}
}

func (c *clip) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.player != nil {
		c.player.Play()
	}
}

func (c *clip) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.player != nil {
		c.player.Close()
		c.player = nil
	}
}

func (c *clip) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player != nil && c.player.IsPlaying()
}
