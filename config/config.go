// Package config loads the immutable startup configuration: board size,
// cell size, fall speed and host options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/blockfall/board"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BLOCKFALL_"

const (
	FrontendGUI  = "gui"
	FrontendTerm = "term"
)

// BoardConfig sizes the playfield.
type BoardConfig struct {
	Width    int `yaml:"width" env:"WIDTH"`
	Height   int `yaml:"height" env:"HEIGHT"`
	CellSize int `yaml:"cell_size" env:"CELL_SIZE"`
}

type Config struct {
	Board BoardConfig `yaml:"board" envPrefix:"BOARD_"`
	// Speed is slow, normal or fast. Empty shows the speed menu.
	Speed    string `yaml:"speed" env:"SPEED"`
	Frontend string `yaml:"frontend" env:"FRONTEND"`
	Sound    bool   `yaml:"sound" env:"SOUND"`
	DebugUI  bool   `yaml:"debug_ui" env:"DEBUG_UI"`
	LogFile  string `yaml:"log_file" env:"LOG_FILE"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    10,
			Height:   20,
			CellSize: 30,
		},
		Frontend: FrontendGUI,
		Sound:    true,
		LogFile:  "blockfall.log",
	}
}

// Load builds a configuration from the defaults, the YAML file at path
// (skipped when path is empty) and BLOCKFALL_* environment variables, in
// that order, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays YAML data onto cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ParseEnv overlays BLOCKFALL_* environment variables onto cfg.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects configurations the game cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.Board.CellSize))
	}
	if c.Speed != "" {
		if _, err := ParseSpeed(c.Speed); err != nil {
			errs = append(errs, err)
		}
	}
	switch c.Frontend {
	case FrontendGUI, FrontendTerm:
	default:
		errs = append(errs, fmt.Errorf("unknown frontend %q", c.Frontend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// TickRate returns the configured rate and whether one was set.
func (c Config) TickRate() (TickRate, bool) {
	if c.Speed == "" {
		return 0, false
	}
	rate, err := ParseSpeed(c.Speed)
	return rate, err == nil
}

// Engine returns the engine dimensions.
func (c Config) Engine() board.Config {
	return board.Config{Rows: c.Board.Height, Cols: c.Board.Width}
}

// ScreenSize returns the playfield size in pixels.
func (c Config) ScreenSize() (width, height int) {
	return c.Board.Width * c.Board.CellSize, c.Board.Height * c.Board.CellSize
}
