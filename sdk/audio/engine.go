// Package audio provides the audio engine factory.
package audio

import (
	"github.com/hatkit/pianohat/internal/audio/otoengine"
	"github.com/hatkit/pianohat/internal/logger"
	"github.com/hatkit/pianohat/sdk/contracts"
)

// NewEngine creates the process-wide audio engine. A nil logger falls back
// to the default zap logger; zero-valued config fields use the engine
// defaults (44.1kHz mono 16-bit, 16 player pool).
func NewEngine(log contracts.Logger, cfg contracts.EngineConfig) (contracts.Engine, error) {
	if log == nil {
		log = logger.NewZapLogger()
	}
	return otoengine.New(log, cfg)
}
