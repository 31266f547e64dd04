package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lixenwraith/snowfall/scene"
)

// Console prints whole frames to a line-oriented terminal
// Each frame is a complete text block preceded by home+clear, so an interrupted frame is overwritten by the next
type Console struct {
	w        *bufio.Writer
	mode     ColorMode
	palette  Palette
	decorate scene.Decorator
	caption  string
	started  bool
}

// NewConsole creates a console writing to w
func NewConsole(w io.Writer, mode ColorMode, palette Palette, caption string) *Console {
	return &Console{
		w:        bufio.NewWriterSize(w, 16384),
		mode:     mode,
		palette:  palette,
		decorate: palette.Decorator(mode),
		caption:  caption,
	}
}

// Mode returns the color mode in use
func (c *Console) Mode() ColorMode {
	return c.mode
}

// Present clears the screen and writes the grid followed by the caption
func (c *Console) Present(g *scene.Grid) error {
	w := c.w
	if !c.started && c.mode != ColorModeNone {
		w.Write(csiCursorHide)
	}
	c.started = true

	w.Write(csiHomeClear)
	w.WriteString(g.Render(c.decorate))
	w.WriteString("\n\n")
	w.WriteString(c.palette.CaptionText(c.mode, c.caption))
	w.WriteByte('\n')

	if err := w.Flush(); err != nil {
		return fmt.Errorf("console flush: %w", err)
	}
	return nil
}

// Close performs the final clear, prints farewell and restores the cursor
func (c *Console) Close(farewell string) error {
	w := c.w
	w.Write(csiHomeClear)
	if c.mode != ColorModeNone {
		w.Write(csiReset)
		w.Write(csiCursorShow)
	}
	if farewell != "" {
		w.WriteString(farewell)
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("console flush: %w", err)
	}
	return nil
}
