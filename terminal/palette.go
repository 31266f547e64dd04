package terminal

import (
	"github.com/lixenwraith/snowfall/constant"
	"github.com/lixenwraith/snowfall/scene"
)

// Swatch is one color expressed for every supported mode
type Swatch struct {
	Basic uint8 // 16-color SGR foreground code
	Index uint8 // 256-palette index, 0 derives from RGB
	RGB   RGB
}

// sgr returns the foreground sequence for mode, empty when mode emits no color
func (s Swatch) sgr(mode ColorMode) string {
	switch mode {
	case ColorModeBasic:
		return sgrBasic(s.Basic)
	case ColorMode256:
		idx := s.Index
		if idx == 0 {
			idx = RGBTo256(s.RGB)
		}
		return sgr256(idx)
	case ColorModeTrueColor:
		return sgrRGB(s.RGB)
	default:
		return ""
	}
}

// Palette assigns a swatch to each glyph kind and to the caption
type Palette struct {
	Apex      Swatch
	Leaf      Swatch
	OrnamentA Swatch
	OrnamentB Swatch
	Trunk     Swatch
	Snow      Swatch
	Caption   Swatch
}

// DefaultPalette returns the classic scheme: yellow star and trunk, green leaves, red and blue ornaments, white snow
func DefaultPalette() Palette {
	return Palette{
		Apex:      Swatch{Basic: 93, Index: P256Gold, RGB: RGB{R: 255, G: 215, B: 0}},
		Leaf:      Swatch{Basic: 92, Index: P256Green, RGB: RGB{R: 40, G: 200, B: 70}},
		OrnamentA: Swatch{Basic: 91, Index: P256Red, RGB: RGB{R: 235, G: 40, B: 40}},
		OrnamentB: Swatch{Basic: 94, Index: P256LightBlue, RGB: RGB{R: 90, G: 170, B: 255}},
		Trunk:     Swatch{Basic: 93, Index: P256Amber, RGB: RGB{R: 180, G: 120, B: 50}},
		Snow:      Swatch{Basic: 97, Index: P256White, RGB: RGB{R: 245, G: 245, B: 255}},
		Caption:   Swatch{Basic: 91, Index: P256Red, RGB: RGB{R: 235, G: 40, B: 40}},
	}
}

// Swatch returns the swatch for a glyph kind; false for empty and unknown glyphs
func (p Palette) Swatch(k scene.Kind) (Swatch, bool) {
	switch k {
	case scene.KindApex:
		return p.Apex, true
	case scene.KindLeaf:
		return p.Leaf, true
	case scene.KindOrnamentA:
		return p.OrnamentA, true
	case scene.KindOrnamentB:
		return p.OrnamentB, true
	case scene.KindTrunk:
		return p.Trunk, true
	case scene.KindSnow:
		return p.Snow, true
	default:
		return Swatch{}, false
	}
}

var paletteGlyphs = []rune{
	constant.GlyphApex,
	constant.GlyphLeaf,
	constant.GlyphOrnamentA,
	constant.GlyphOrnamentB,
	constant.GlyphTrunk,
	constant.GlyphSnowLight,
	constant.GlyphSnowHeavy,
}

// Decorator returns a pure glyph transform for mode
// Sequences are built once; ColorModeNone yields scene.Plain
func (p Palette) Decorator(mode ColorMode) scene.Decorator {
	if mode == ColorModeNone {
		return scene.Plain
	}

	table := make(map[rune]string, len(paletteGlyphs))
	for _, r := range paletteGlyphs {
		sw, ok := p.Swatch(scene.KindOf(r))
		if !ok {
			continue
		}
		table[r] = sw.sgr(mode) + string(r) + sgrReset
	}

	return func(r rune) string {
		if s, ok := table[r]; ok {
			return s
		}
		return string(r)
	}
}

// CaptionText wraps text in the caption color for mode
func (p Palette) CaptionText(mode ColorMode, text string) string {
	if mode == ColorModeNone || text == "" {
		return text
	}
	return p.Caption.sgr(mode) + text + sgrReset
}
