// Package engine drives the animation: compose a frame, present it, advance the snowfall, wait, repeat.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/snowfall/constant"
	"github.com/lixenwraith/snowfall/scene"
)

// statsInterval is the frame interval between debug log lines
const statsInterval = 100

// Display receives composed frames
type Display interface {
	// Present shows one complete frame
	Present(g *scene.Grid) error

	// Close performs the final clear and prints farewell
	Close(farewell string) error
}

// RunnerConfig configures a Runner; zero fields take defaults
type RunnerConfig struct {
	Delay    time.Duration
	Farewell string
	Clock    Clock
}

// Runner owns the frame loop
type Runner struct {
	comp     *scene.Compositor
	display  Display
	clock    Clock
	delay    time.Duration
	farewell string

	frames uint64
}

// NewRunner creates a runner presenting comp on display
func NewRunner(comp *scene.Compositor, display Display, cfg RunnerConfig) *Runner {
	if cfg.Delay <= 0 {
		cfg.Delay = constant.DefaultFrameDelay
	}
	if cfg.Clock == nil {
		cfg.Clock = NewSystemClock()
	}
	return &Runner{
		comp:     comp,
		display:  display,
		clock:    cfg.Clock,
		delay:    cfg.Delay,
		farewell: cfg.Farewell,
	}
}

// Frames returns the number of frames presented
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Run loops until ctx is cancelled, then closes the display once
// A display error stops the loop; the display is still closed
func (r *Runner) Run(ctx context.Context) error {
	start := r.clock.Now()
	log.Printf("animation start: %dx%d canvas, %d flakes, %v delay",
		r.comp.Cols(), r.comp.Rows(), r.comp.Snow().Len(), r.delay)

	err := r.loop(ctx)

	log.Printf("animation stop: %d frames in %v", r.frames, r.clock.Now().Sub(start).Round(time.Millisecond))

	if closeErr := r.display.Close(r.farewell); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("close display: %w", closeErr))
	}
	return err
}

func (r *Runner) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := r.display.Present(r.comp.Compose()); err != nil {
			return fmt.Errorf("present frame %d: %w", r.frames, err)
		}
		r.frames++
		r.comp.AdvanceParticles()

		if r.frames%statsInterval == 0 {
			log.Printf("frame %d: %d flakes respawned", r.frames, r.comp.Snow().Respawned())
		}

		select {
		case <-ctx.Done():
			return nil
		case <-r.clock.After(r.delay):
		}
	}
}
