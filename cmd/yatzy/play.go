package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/yatzy/internal/config"
	"github.com/lox/yatzy/internal/console"
	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/internal/game"
	"github.com/lox/yatzy/internal/prompt"
	"github.com/lox/yatzy/internal/randutil"
	"github.com/lox/yatzy/internal/tui"
)

// PlayCmd runs an interactive game
type PlayCmd struct {
	Config  string   `kong:"default='yatzy.hcl',type='path',help='HCL configuration file'"`
	Player  []string `kong:"short='p',help='Player name, repeatable; skips interactive setup'"`
	Seed    *int64   `kong:"help='Deterministic RNG seed (optional)'"`
	TUI     bool     `kong:"name='tui',help='Use the full-screen interface'"`
	NoColor bool     `kong:"help='Disable coloured output'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
}

// frontend is everything a game needs from its user interface.
type frontend interface {
	game.Prompter
	game.SetupPrompter
	game.Reporter
}

func (c *PlayCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	level := cfg.LogLevel()
	if c.Debug {
		level = log.DebugLevel
	}
	logger, closeLog, err := setupFileLogger(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	display.SetColor(cfg.ColorEnabled())

	clock := quartz.NewReal()
	seed := randutil.Seed(cfg.Game.Seed, clock)
	logger.Info("Using seed", "seed", seed)
	roller := dice.NewRoller(randutil.New(seed))

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	render := display.NewRenderer(display.NewStyles())

	var ui frontend
	var wait func()
	switch cfg.UI.Mode {
	case config.ModeTUI:
		agent := tui.NewAgent(render, logger)
		agent.Start()
		defer func() {
			if err := agent.Close(); err != nil {
				logger.Error("Failed to close interface", "error", err)
			}
		}()
		ui, wait = agent, agent.WaitForExit
	default:
		con, closeTerm, err := console.NewReadline(render, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeTerm(); err != nil {
				logger.Error("Failed to close terminal", "error", err)
			}
		}()
		con.Title()
		ui, wait = con, func() {}
	}

	names := game.WithExtraPlayer(c.Player, cfg.Game.ExtraPlayer)
	if len(c.Player) == 0 {
		names, err = game.CollectPlayers(ui, cfg.Game.ExtraPlayer)
		if errors.Is(err, prompt.ErrAborted) {
			logger.Info("Setup aborted")
			return nil
		}
		if err != nil {
			return err
		}
	}

	g, err := game.New(roller, names, game.WithClock(clock), game.WithLogger(logger))
	if err != nil {
		return err
	}

	if _, err := g.Play(ctx, ui, ui); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			logger.Info("Game aborted", "turns", g.Turns())
			return nil
		}
		return fmt.Errorf("game failed: %w", err)
	}

	wait()
	return nil
}

// loadConfig reads the configuration file and applies flag overrides.
func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.TUI {
		cfg.UI.Mode = config.ModeTUI
	}
	if c.NoColor {
		color := false
		cfg.UI.Color = &color
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
