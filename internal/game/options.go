package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	clock  quartz.Clock
	logger *log.Logger
}

// WithClock sets the clock used to time the game. Defaults to the real clock.
func WithClock(clock quartz.Clock) Option {
	return func(cfg *gameConfig) {
		cfg.clock = clock
	}
}

// WithLogger sets the logger. Defaults to discarding all output.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *gameConfig) {
		cfg.logger = logger
	}
}

func defaultGameConfig() *gameConfig {
	return &gameConfig{
		clock:  quartz.NewReal(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
}
