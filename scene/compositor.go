// Package scene composes animation frames: a blank grid, a snowfall layer and the tree motif on top.
package scene

import "github.com/lixenwraith/snowfall/constant"

// Settings configures a Compositor
type Settings struct {
	Height    int
	SnowCount int

	// Decorate is applied by ComposeFrame; nil means Plain
	Decorate Decorator
}

// Rows returns the canvas height for a tree of the given height
func Rows(height int) int {
	return height + constant.TreeExtraRows
}

// Cols returns the canvas width for a tree of the given height
func Cols(height int) int {
	return 2*height + constant.TreeExtraCols
}

// Compositor owns the frame state: canvas size, tree height and the snowfall
type Compositor struct {
	height   int
	rows     int
	cols     int
	snow     *Snowfall
	decorate Decorator
}

// NewCompositor creates a compositor and seeds its snowfall from rng
func NewCompositor(s Settings, rng Source) *Compositor {
	rows, cols := Rows(s.Height), Cols(s.Height)
	decorate := s.Decorate
	if decorate == nil {
		decorate = Plain
	}
	return &Compositor{
		height:   s.Height,
		rows:     rows,
		cols:     cols,
		snow:     NewSnowfall(s.SnowCount, rows, cols, rng),
		decorate: decorate,
	}
}

// Height returns the tree height
func (c *Compositor) Height() int {
	return c.height
}

// Rows returns the canvas height
func (c *Compositor) Rows() int {
	return c.rows
}

// Cols returns the canvas width
func (c *Compositor) Cols() int {
	return c.cols
}

// Snow returns the particle layer
func (c *Compositor) Snow() *Snowfall {
	return c.snow
}

// Compose builds a fresh grid with snow stamped first and the motif over it
func (c *Compositor) Compose() *Grid {
	g := NewGrid(c.rows, c.cols)
	c.snow.Stamp(g)
	RenderMotif(g, c.height)
	return g
}

// ComposeFrame returns the current frame serialized through the configured decorator
func (c *Compositor) ComposeFrame() string {
	return c.Compose().Render(c.decorate)
}

// AdvanceParticles steps the snowfall by one frame
func (c *Compositor) AdvanceParticles() {
	c.snow.Advance()
}
