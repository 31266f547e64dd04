// Package config holds the animation settings, loaded from an optional TOML file and validated before use.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/snowfall/constant"
	"github.com/lixenwraith/snowfall/scene"
	"github.com/lixenwraith/snowfall/terminal"
)

// Display backends
const (
	DisplayANSI   = "ansi"
	DisplayScreen = "screen"
)

// Sentinel errors
var (
	ErrInvalidHeight    = errors.New("height must be at least 1")
	ErrInvalidSnowCount = errors.New("snow count must not be negative")
	ErrInvalidDelay     = errors.New("frame delay must be positive")
	ErrInvalidDisplay   = errors.New("unknown display")
	ErrUnknownKey       = errors.New("unknown config key")
)

// Config is the complete runtime configuration
type Config struct {
	Height     int           `toml:"height"`
	SnowCount  int           `toml:"snow_count"`
	FrameDelay time.Duration `toml:"frame_delay"`
	Color      string        `toml:"color"`
	Display    string        `toml:"display"`
	Sound      bool          `toml:"sound"`
	Seed       uint64        `toml:"seed"` // 0 seeds from the clock
	Caption    string        `toml:"caption"`
	Farewell   string        `toml:"farewell"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Height:     constant.DefaultTreeHeight,
		SnowCount:  constant.DefaultSnowCount,
		FrameDelay: constant.DefaultFrameDelay,
		Color:      "auto",
		Display:    DisplayANSI,
		Caption:    constant.DefaultCaption,
		Farewell:   constant.DefaultFarewell,
	}
}

// Load reads path over the defaults
// An empty path or a missing file yields the defaults without error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks every field and returns the first violation
func (c *Config) Validate() error {
	if c.Height < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHeight, c.Height)
	}
	if c.SnowCount < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSnowCount, c.SnowCount)
	}
	if c.FrameDelay <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDelay, c.FrameDelay)
	}
	if _, _, err := terminal.ParseColorMode(c.Color); err != nil {
		return err
	}
	switch c.Display {
	case DisplayANSI, DisplayScreen:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDisplay, c.Display)
	}
	return nil
}

// Rows returns the canvas height
func (c *Config) Rows() int {
	return scene.Rows(c.Height)
}

// Cols returns the canvas width
func (c *Config) Cols() int {
	return scene.Cols(c.Height)
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
