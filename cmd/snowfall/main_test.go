package main

import (
	"context"
	"errors"
	"log"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/terminal"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, opts, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg.Height != 12 || cfg.SnowCount != 60 || cfg.FrameDelay != 120*time.Millisecond {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if opts.debug || opts.once || opts.dumpConfig {
		t.Errorf("Expected switches off, got %+v", opts)
	}
}

func TestParseArgsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snowfall.toml")
	if err := os.WriteFile(path, []byte("height = 5\nsnow_count = 10\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, opts, err := parseArgs([]string{"-config", path, "-snow", "3", "-display", "screen", "-once"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}

	if cfg.Height != 5 {
		t.Errorf("Expected height from file, got %d", cfg.Height)
	}
	if cfg.SnowCount != 3 {
		t.Errorf("Expected snow from flag, got %d", cfg.SnowCount)
	}
	if cfg.Display != config.DisplayScreen {
		t.Errorf("Expected screen display, got %q", cfg.Display)
	}
	if !opts.once {
		t.Error("Expected -once")
	}
}

func TestParseArgsInvalid(t *testing.T) {
	if _, _, err := parseArgs([]string{"-height", "0"}, io.Discard); !errors.Is(err, config.ErrInvalidHeight) {
		t.Errorf("Expected ErrInvalidHeight, got %v", err)
	}
	if _, _, err := parseArgs([]string{"-bogus"}, io.Discard); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

func TestNewCompositorSeeded(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7

	a := newCompositor(cfg, terminal.ColorModeNone, terminal.DefaultPalette())
	b := newCompositor(cfg, terminal.ColorModeNone, terminal.DefaultPalette())

	for i := 0; i < 10; i++ {
		if a.ComposeFrame() != b.ComposeFrame() {
			t.Fatalf("Frame %d differs for the same seed", i)
		}
		a.AdvanceParticles()
		b.AdvanceParticles()
	}

	lines := strings.Split(a.ComposeFrame(), "\n")
	if len(lines) != 18 {
		t.Errorf("Expected 18 lines, got %d", len(lines))
	}
}

// stubRun swaps the animation entry point for the duration of a test
func stubRun(t *testing.T, fn func(context.Context, context.CancelFunc, *config.Config, options) error) {
	t.Helper()
	prev := runFn
	runFn = fn
	t.Cleanup(func() { runFn = prev })
}

func TestRealMainExitCodes(t *testing.T) {
	useTempLogDir(t)
	stubRun(t, func(context.Context, context.CancelFunc, *config.Config, options) error { return nil })

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", nil, 0},
		{"invalid height", []string{"-height", "0"}, 1},
		{"unknown flag", []string{"-bogus"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := realMain(tt.args); got != tt.want {
				t.Errorf("Expected exit code %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRealMainRunErrorClosesLog(t *testing.T) {
	useTempLogDir(t)

	var ranCtx context.Context
	stubRun(t, func(ctx context.Context, _ context.CancelFunc, _ *config.Config, _ options) error {
		ranCtx = ctx
		return errors.New("display failed")
	})

	if got := realMain([]string{"-debug"}); got != 1 {
		t.Fatalf("Expected exit code 1, got %d", got)
	}

	f, ok := log.Writer().(*os.File)
	if !ok {
		t.Fatalf("Expected log output to be a file, got %T", log.Writer())
	}
	if _, err := f.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Expected log file closed after realMain returned, got %v", err)
	}

	if ranCtx == nil || ranCtx.Err() == nil {
		t.Error("Expected signal context stopped after realMain returned")
	}

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "display failed") {
		t.Errorf("Expected run error in log, got %q", data)
	}
}
