// Package config loads the HCL configuration file for the yatzy command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/yatzy/internal/game"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "yatzy.hcl"

// UI modes
const (
	ModeConsole = "console"
	ModeTUI     = "tui"
)

// Config represents the complete configuration file. Every block is optional.
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
	Log  *LogSettings  `hcl:"log,block"`
}

// GameSettings contains game rules that may be configured
type GameSettings struct {
	ExtraPlayer string `hcl:"extra_player,optional"`
	Seed        int64  `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	Mode  string `hcl:"mode,optional"`
	Color *bool  `hcl:"color,optional"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration.
func Default() *Config {
	color := true
	return &Config{
		Game: &GameSettings{
			ExtraPlayer: game.DefaultExtraPlayer,
		},
		UI: &UISettings{
			Mode:  ModeConsole,
			Color: &color,
		},
		Log: &LogSettings{
			Level: "info",
			File:  "yatzy.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills any block or value missing from the file.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.Game.ExtraPlayer == "" {
		c.Game.ExtraPlayer = defaults.Game.ExtraPlayer
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.Mode == "" {
		c.UI.Mode = defaults.UI.Mode
	}
	if c.UI.Color == nil {
		c.UI.Color = defaults.UI.Color
	}

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Game.ExtraPlayer) == "" {
		return fmt.Errorf("game: extra_player cannot be blank")
	}

	switch c.UI.Mode {
	case ModeConsole, ModeTUI:
	default:
		return fmt.Errorf("ui: invalid mode %q (want %q or %q)", c.UI.Mode, ModeConsole, ModeTUI)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}

	return nil
}

// ColorEnabled reports whether styled output is enabled.
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
