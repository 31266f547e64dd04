// Package screen presents frames through a tcell screen, centred in the window with per-glyph styles.
package screen

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snowfall/constant"
	"github.com/lixenwraith/snowfall/scene"
	"github.com/lixenwraith/snowfall/terminal"
)

// Options configures a Display; zero fields take defaults
type Options struct {
	Palette terminal.Palette
	Mode    terminal.ColorMode // ColorModeNone draws every glyph in the default style
	Caption string
	Out     io.Writer        // farewell target once the screen is finalized
	Now     func() time.Time // drives the apex pulse, nil means time.Now
}

// Display draws grids on a tcell.Screen
type Display struct {
	screen  tcell.Screen
	palette terminal.Palette
	mode    terminal.ColorMode
	caption string
	out     io.Writer

	twinkle  *Twinkle
	now      func() time.Time
	lastDraw time.Time
}

// New initializes s and returns a display drawing on it
func New(s tcell.Screen, opts Options) (*Display, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	s.HideCursor()
	s.Clear()

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Display{
		screen:  s,
		palette: opts.Palette,
		mode:    opts.Mode,
		caption: opts.Caption,
		out:     opts.Out,
		twinkle: NewTwinkle(constant.TwinkleLow, constant.TwinkleHigh, constant.TwinklePeriod),
		now:     now,
	}, nil
}

// Present draws g centred with the caption below it
func (d *Display) Present(g *scene.Grid) error {
	now := d.now()
	if !d.lastDraw.IsZero() {
		d.twinkle.Update(now.Sub(d.lastDraw))
	}
	d.lastDraw = now

	s := d.screen
	s.Clear()

	w, h := s.Size()
	ox := max((w-g.Cols())/2, 0)
	oy := max((h-g.Rows()-2)/2, 0)

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			r, _ := g.At(x, y)
			if r == constant.GlyphEmpty {
				continue
			}
			s.SetContent(ox+x, oy+y, r, nil, d.style(r))
		}
	}

	d.drawCaption(w, oy+g.Rows()+1)
	s.Show()
	return nil
}

// Close finalizes the screen and prints farewell on the restored terminal
func (d *Display) Close(farewell string) error {
	d.screen.Fini()
	if farewell == "" || d.out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(d.out, farewell); err != nil {
		return fmt.Errorf("farewell: %w", err)
	}
	return nil
}

// Listen cancels the run on q, Esc or Ctrl-C and resyncs on resize
// Returns when the screen is finalized
func (d *Display) Listen(cancel context.CancelFunc) {
	go func() {
		defer d.finiOnPanic()
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			d.handleEvent(ev, cancel)
		}
	}()
}

func (d *Display) handleEvent(ev tcell.Event, cancel context.CancelFunc) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			cancel()
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
}

// finiOnPanic restores the terminal before re-panicking
// Panics on the event goroutine are out of reach of main's recover
func (d *Display) finiOnPanic() {
	if r := recover(); r != nil {
		d.screen.Fini()
		panic(r)
	}
}

func (d *Display) style(r rune) tcell.Style {
	kind := scene.KindOf(r)
	sw, ok := d.palette.Swatch(kind)
	if !ok {
		return tcell.StyleDefault
	}

	st := tcell.StyleDefault
	if kind == scene.KindApex {
		st = st.Bold(true)
	}
	if d.mode == terminal.ColorModeNone {
		return st
	}

	c := sw.RGB
	if kind == scene.KindApex {
		c = scale(c, d.twinkle.Value())
	}
	return st.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (d *Display) drawCaption(width, y int) {
	if d.caption == "" {
		return
	}
	st := tcell.StyleDefault
	if d.mode != terminal.ColorModeNone {
		c := d.palette.Caption.RGB
		st = st.Bold(true).Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}

	x := max((width-runewidth.StringWidth(d.caption))/2, 0)
	for _, r := range d.caption {
		d.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

func scale(c terminal.RGB, f float64) terminal.RGB {
	f = min(max(f, 0), 1)
	return terminal.RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}
