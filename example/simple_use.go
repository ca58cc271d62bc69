package main

import (
	"fmt"

	"github.com/hatkit/pianohat/internal/logger"
	"github.com/hatkit/pianohat/sdk/contracts"
	"github.com/hatkit/pianohat/sdk/pianohat"
)

func main() {
	log := logger.NewZapLogger()

	keyboard, err := pianohat.NewKeyboard(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		log.Error("Failed to initialize keyboard", log.Field().Error("error", err))
		return
	}

	keyboard.OnNote(func(channel int, pressed bool) {
		log.Info("Note pad",
			log.Field().Int("Channel", channel),
			log.Field().Bool("Pressed", pressed),
		)
	})
	keyboard.OnInstrument(func(channel int, pressed bool) {
		if pressed {
			log.Info("Instrument pad pressed")
		}
	})

	if err := keyboard.Start(); err != nil {
		log.Error("Failed to start keyboard", log.Field().Error("error", err))
		return
	}
	defer keyboard.Stop()

	fmt.Println("Watching pads... Press Ctrl+C to exit.")
	select {} // Run indefinitely
}
