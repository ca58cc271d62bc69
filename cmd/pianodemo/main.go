// Command pianodemo runs the sample-based piano on a Piano HAT: thirteen
// note pads play samples from a sound bank, the octave pads shift or control
// reward playback and the instrument pad cycles between free play and the
// configured teaching melodies.
//
// Usage:
//
//	pianodemo [config.yaml]
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hatkit/pianohat/internal/logger"
	"github.com/hatkit/pianohat/sdk/audio"
	"github.com/hatkit/pianohat/sdk/contracts"
	"github.com/hatkit/pianohat/sdk/modes"
	"github.com/hatkit/pianohat/sdk/pianohat"
	"github.com/hatkit/pianohat/sdk/samplebank"
)

func main() {
	log := logger.NewZapLogger()

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal("failed to load configuration", log.Field().Error("error", err))
	}
	level, err := cfg.logLevel()
	if err != nil {
		log.Fatal("failed to load configuration", log.Field().Error("error", err))
	}
	log.SetLevel(level)

	engine, err := audio.NewEngine(log, contracts.EngineConfig{
		SampleRate:      cfg.Audio.SampleRate,
		ChannelCount:    cfg.Audio.Channels,
		BitDepthInBytes: 2,
		PoolSize:        cfg.Audio.PoolSize,
	})
	if err != nil {
		log.Fatal("failed to start audio engine", log.Field().Error("error", err))
	}
	defer engine.Close()

	keyboard, err := pianohat.NewKeyboard(
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
		contracts.WithHATConfig(contracts.HATConfig{
			Bus:          cfg.HAT.Bus,
			Addresses:    [2]uint16{0x28, 0x2B},
			Threshold:    cfg.HAT.Threshold,
			PollInterval: time.Duration(cfg.HAT.PollInterval),
		}),
	)
	if err != nil {
		log.Fatal("failed to open keyboard", log.Field().Error("error", err))
	}
	for pad := 0; pad < contracts.NumPads; pad++ {
		if err := keyboard.SetLED(pad, false); err != nil {
			log.Warn("failed to clear LED", log.Field().Error("error", err))
		}
	}

	bank, err := samplebank.Load(engine, log, cfg.SoundDir, cfg.Patterns)
	if err != nil {
		log.Fatal("failed to load sample bank", log.Field().Error("error", err))
	}
	log.Info("sample bank ready",
		log.Field().Int("samples", bank.Len()),
		log.Field().Int("octaves", bank.Octaves()))

	modeList, err := buildModes(log, engine, keyboard, bank, cfg.Modes)
	if err != nil {
		log.Fatal("failed to build modes", log.Field().Error("error", err))
	}

	registry, err := modes.NewRegistry(keyboard, log, modeList...)
	if err != nil {
		log.Fatal("failed to build mode registry", log.Field().Error("error", err))
	}
	registry.Start()

	if err := keyboard.Start(); err != nil {
		log.Fatal("failed to start keyboard", log.Field().Error("error", err))
	}
	defer func() {
		if err := keyboard.Stop(); err != nil {
			log.Warn("keyboard stop failed", log.Field().Error("error", err))
		}
	}()

	log.Info("ready", log.Field().Int("modes", len(modeList)))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down")
}

// buildModes turns the configured mode list into live modes, loading reward
// clips through the engine. Reward paths are shared, so each distinct file
// is only decoded once.
func buildModes(log contracts.Logger, engine contracts.Engine, keyboard contracts.Keyboard, bank *samplebank.Bank, configs []ModeConfig) ([]modes.Mode, error) {
	clips := make(map[string]contracts.Clip)
	out := make([]modes.Mode, 0, len(configs))
	for _, mc := range configs {
		switch mc.Type {
		case "piano":
			out = append(out, modes.NewFreePlayMode(log, bank, mc.Octave))
		case "melody":
			melody, err := mc.notes()
			if err != nil {
				return nil, err
			}
			var reward contracts.Clip
			if mc.Reward != "" {
				clip, ok := clips[mc.Reward]
				if !ok {
					clip, err = engine.LoadClip(mc.Reward)
					if err != nil {
						return nil, err
					}
					clips[mc.Reward] = clip
				}
				reward = clip
			}
			out = append(out, modes.NewMelodyMode(log, keyboard, bank, modes.MelodyConfig{
				Name:      mc.name(),
				Melody:    melody,
				Octave:    mc.Octave,
				Transpose: mc.Transpose,
				Reward:    reward,
			}))
		default:
			log.Warn("skipping unknown mode type", log.Field().String("type", mc.Type))
		}
	}
	return out, nil
}
