package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/snowfall/terminal"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snowfall.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Height != 12 || cfg.SnowCount != 60 || cfg.FrameDelay != 120*time.Millisecond {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.Rows() != 18 || cfg.Cols() != 36 {
		t.Errorf("Expected 18x36 canvas, got %dx%d", cfg.Rows(), cfg.Cols())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.Height != Default().Height {
		t.Errorf("Expected default height, got %d", cfg.Height)
	}

	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Expected defaults for empty path, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, `
height = 8
snow_count = 0
frame_delay = "250ms"
color = "basic"
display = "screen"
seed = 99
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Height != 8 {
		t.Errorf("Expected height 8, got %d", cfg.Height)
	}
	if cfg.SnowCount != 0 {
		t.Errorf("Expected snow 0, got %d", cfg.SnowCount)
	}
	if cfg.FrameDelay != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", cfg.FrameDelay)
	}
	if cfg.Display != DisplayScreen || cfg.Color != "basic" || cfg.Seed != 99 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	// Untouched keys keep defaults
	if cfg.Caption != Default().Caption {
		t.Errorf("Expected default caption, got %q", cfg.Caption)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeFile(t, "height = 5\nsnowcount = 3\n")

	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Expected ErrUnknownKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "snowcount") {
		t.Errorf("Expected error to name the key, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "height = = 3\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero height", func(c *Config) { c.Height = 0 }, ErrInvalidHeight},
		{"negative snow", func(c *Config) { c.SnowCount = -1 }, ErrInvalidSnowCount},
		{"zero delay", func(c *Config) { c.FrameDelay = 0 }, ErrInvalidDelay},
		{"bad color", func(c *Config) { c.Color = "sepia" }, terminal.ErrUnknownColorMode},
		{"bad display", func(c *Config) { c.Display = "gl" }, ErrInvalidDisplay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestWriteLoadsBack(t *testing.T) {
	cfg := Default()
	cfg.Height = 20
	cfg.Sound = true

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Load(writeFile(t, buf.String()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Height != 20 || !loaded.Sound {
		t.Errorf("Expected written values back, got %+v", loaded)
	}
}
