package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowfall/audio"
	"github.com/lixenwraith/snowfall/config"
	"github.com/lixenwraith/snowfall/engine"
	"github.com/lixenwraith/snowfall/scene"
	"github.com/lixenwraith/snowfall/screen"
	"github.com/lixenwraith/snowfall/terminal"
)

// options holds command-line only switches
type options struct {
	debug      bool
	once       bool
	dumpConfig bool
}

// parseArgs loads the config file named by -config, then applies every flag that was set explicitly
func parseArgs(args []string, stderr io.Writer) (*config.Config, options, error) {
	fs := flag.NewFlagSet("snowfall", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	configPath := fs.String("config", "", "Path to TOML config file")
	height := fs.Int("height", def.Height, "Tree height in rows")
	snow := fs.Int("snow", def.SnowCount, "Number of snowflakes")
	delay := fs.Duration("delay", def.FrameDelay, "Delay between frames")
	color := fs.String("color", def.Color, "Color mode: auto, never, basic, 256, truecolor")
	display := fs.String("display", def.Display, "Display: ansi, screen")
	sound := fs.Bool("sound", def.Sound, "Play a jingle on start")
	seed := fs.Uint64("seed", def.Seed, "Random seed, 0 for time-based")

	var opts options
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to logs/snowfall.log")
	fs.BoolVar(&opts.once, "once", false, "Print a single frame without clearing and exit")
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective config as TOML and exit")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "height":
			cfg.Height = *height
		case "snow":
			cfg.SnowCount = *snow
		case "delay":
			cfg.FrameDelay = *delay
		case "color":
			cfg.Color = *color
		case "display":
			cfg.Display = *display
		case "sound":
			cfg.Sound = *sound
		case "seed":
			cfg.Seed = *seed
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

// newRand seeds the snowfall generator; seed 0 uses the clock
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newCompositor builds the frame compositor for cfg with glyphs decorated for mode
func newCompositor(cfg *config.Config, mode terminal.ColorMode, palette terminal.Palette) *scene.Compositor {
	return scene.NewCompositor(scene.Settings{
		Height:    cfg.Height,
		SnowCount: cfg.SnowCount,
		Decorate:  palette.Decorator(mode),
	}, newRand(cfg.Seed))
}

// newDisplay opens the configured display; the screen display cancels ctx on its quit keys
func newDisplay(cfg *config.Config, mode terminal.ColorMode, palette terminal.Palette, clock engine.Clock, cancel context.CancelFunc) (engine.Display, error) {
	switch cfg.Display {
	case config.DisplayScreen:
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("screen: %w", err)
		}
		d, err := screen.New(s, screen.Options{
			Palette: palette,
			Mode:    mode,
			Caption: cfg.Caption,
			Out:     os.Stdout,
			Now:     clock.Now,
		})
		if err != nil {
			return nil, err
		}
		d.Listen(cancel)
		return d, nil
	default:
		return terminal.NewConsole(os.Stdout, mode, palette, cfg.Caption), nil
	}
}

func startChime() func() {
	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return func() {}
	}
	if _, err := player.PlayChime(); err != nil {
		log.Printf("Chime failed: %v", err)
	}
	return player.Close
}

func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, opts options) error {
	mode, err := terminal.ResolveColorMode(cfg.Color, os.Stdout)
	if err != nil {
		return err
	}
	palette := terminal.DefaultPalette()
	comp := newCompositor(cfg, mode, palette)

	if opts.once {
		fmt.Fprintln(os.Stdout, comp.ComposeFrame())
		return nil
	}

	clock := engine.NewSystemClock()
	display, err := newDisplay(cfg, mode, palette, clock, cancel)
	if err != nil {
		return err
	}

	if cfg.Sound {
		defer startChime()()
	}

	runner := engine.NewRunner(comp, display, engine.RunnerConfig{
		Delay:    cfg.FrameDelay,
		Farewell: cfg.Farewell,
		Clock:    clock,
	})
	return runner.Run(ctx)
}

// runFn is the animation entry point used by realMain
var runFn = run

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code; every deferred cleanup has run by the time it returns
func realMain(args []string) (code int) {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNOWFALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	cfg, opts, err := parseArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "snowfall: %v\n", err)
		return 1
	}

	if opts.dumpConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "snowfall: %v\n", err)
			return 1
		}
		return 0
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runFn(ctx, stop, cfg, opts); err != nil {
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "snowfall: %v\n", err)
		return 1
	}
	return 0
}
