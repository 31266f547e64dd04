package scene

import (
	"slices"

	"github.com/lixenwraith/snowfall/constant"
)

// Source is the randomness consumed by the snowfall
// *rand.Rand from math/rand/v2 satisfies it
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Particle is a single snowflake
type Particle struct {
	X, Y  int
	Glyph rune
}

// Snowfall owns a fixed set of flakes that fall one row per Advance and respawn at the top
type Snowfall struct {
	rows   int
	cols   int
	flakes []Particle
	rng    Source

	respawned uint64
}

// NewSnowfall scatters count flakes uniformly over a rows x cols area
func NewSnowfall(count, rows, cols int, rng Source) *Snowfall {
	s := &Snowfall{
		rows: rows,
		cols: cols,
		rng:  rng,
	}
	if count <= 0 || rows <= 0 || cols <= 0 {
		return s
	}

	s.flakes = make([]Particle, count)
	for i := range s.flakes {
		s.flakes[i] = Particle{
			X:     rng.IntN(cols),
			Y:     rng.IntN(rows),
			Glyph: s.spawnGlyph(),
		}
	}
	return s
}

// Len returns the number of flakes
func (s *Snowfall) Len() int {
	return len(s.flakes)
}

// Particles returns a snapshot of the flakes
func (s *Snowfall) Particles() []Particle {
	return slices.Clone(s.flakes)
}

// Respawned returns how many flakes have been recycled since creation
func (s *Snowfall) Respawned() uint64 {
	return s.respawned
}

// Advance moves every flake down one row with occasional sideways drift
// Flakes that pass the bottom respawn at row 0 in the same call; x wraps horizontally
func (s *Snowfall) Advance() {
	for i := range s.flakes {
		f := &s.flakes[i]
		f.Y++

		if s.rng.Float64() < constant.SnowDriftChance {
			f.X += s.rng.IntN(3) - 1
		}

		if f.Y >= s.rows {
			f.Y = 0
			f.X = s.rng.IntN(s.cols)
			f.Glyph = s.spawnGlyph()
			s.respawned++
		}

		f.X = mod(f.X, s.cols)
	}
}

// Stamp writes every flake onto g
func (s *Snowfall) Stamp(g *Grid) {
	for _, f := range s.flakes {
		g.Set(f.X, f.Y, f.Glyph)
	}
}

func (s *Snowfall) spawnGlyph() rune {
	if s.rng.Float64() < constant.SnowLightChance {
		return constant.GlyphSnowLight
	}
	return constant.GlyphSnowHeavy
}
