package scene

import (
	"strings"

	"github.com/lixenwraith/snowfall/constant"
)

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Grid is one frame of single-rune cells, row-major
type Grid struct {
	rows  int
	cols  int
	cells []rune
}

// NewGrid creates a grid with every cell set to GlyphEmpty
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	cells := make([]rune, rows*cols)
	for i := range cells {
		cells[i] = constant.GlyphEmpty
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the grid height
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (x, y) addresses a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the rune at (x, y), false when out of bounds
func (g *Grid) At(x, y int) (rune, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[y*g.cols+x], true
}

// Set writes r at (x, y); out-of-bounds writes are dropped and return false
func (g *Grid) Set(x, y int, r rune) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.cols+x] = r
	return true
}

// Row returns a copy of row y
func (g *Grid) Row(y int) []rune {
	if y < 0 || y >= g.rows {
		return nil
	}
	row := make([]rune, g.cols)
	copy(row, g.cells[y*g.cols:(y+1)*g.cols])
	return row
}

// Lines returns every row as an undecorated string
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for y := 0; y < g.rows; y++ {
		lines[y] = string(g.cells[y*g.cols : (y+1)*g.cols])
	}
	return lines
}

// Render serializes the grid, passing each cell through decorate and joining rows with newlines
func (g *Grid) Render(decorate Decorator) string {
	if decorate == nil {
		decorate = Plain
	}

	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range g.cells[y*g.cols : (y+1)*g.cols] {
			sb.WriteString(decorate(r))
		}
	}
	return sb.String()
}

// Equal reports whether both grids have the same size and content
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, r := range g.cells {
		if other.cells[i] != r {
			return false
		}
	}
	return true
}
