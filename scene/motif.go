package scene

import "github.com/lixenwraith/snowfall/constant"

// RenderMotif stamps the tree centered on the grid: apex, triangular body of height rows, trunk
// Output depends only on the grid width and height; cells outside the grid are skipped
func RenderMotif(g *Grid, height int) {
	cx := g.Cols() / 2

	g.Set(cx, constant.TreeApexRow, constant.GlyphApex)

	for i := 0; i < height; i++ {
		y := constant.TreeBodyTop + i
		for x := cx - i; x <= cx+i; x++ {
			g.Set(x, y, BodyGlyph(i, x))
		}
	}

	trunkTop := constant.TreeBodyTop + height
	trunkEnd := min(trunkTop+constant.TreeTrunkRows, g.Rows()-1)
	for y := trunkTop; y < trunkEnd; y++ {
		for x := cx - constant.TreeTrunkHalfWidth; x <= cx+constant.TreeTrunkHalfWidth; x++ {
			g.Set(x, y, constant.GlyphTrunk)
		}
	}
}

// BodyGlyph returns the body glyph for body row i at column x
// OrnamentModA takes precedence over OrnamentModB
func BodyGlyph(i, x int) rune {
	switch n := i + x; {
	case mod(n, constant.OrnamentModA) == 0:
		return constant.GlyphOrnamentA
	case mod(n, constant.OrnamentModB) == 0:
		return constant.GlyphOrnamentB
	default:
		return constant.GlyphLeaf
	}
}

// mod returns the non-negative remainder of a / m
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
