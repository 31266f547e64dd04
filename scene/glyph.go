package scene

import "github.com/lixenwraith/snowfall/constant"

// Decorator maps a glyph to its display form
// Implementations must be pure so that frames stay reproducible
type Decorator func(r rune) string

// Plain returns the glyph unchanged
func Plain(r rune) string {
	return string(r)
}

// Kind classifies a glyph for styling
type Kind uint8

const (
	KindEmpty Kind = iota
	KindApex
	KindLeaf
	KindOrnamentA
	KindOrnamentB
	KindTrunk
	KindSnow
	KindOther
)

// KindOf returns the class of r
func KindOf(r rune) Kind {
	switch r {
	case constant.GlyphEmpty:
		return KindEmpty
	case constant.GlyphApex:
		return KindApex
	case constant.GlyphLeaf:
		return KindLeaf
	case constant.GlyphOrnamentA:
		return KindOrnamentA
	case constant.GlyphOrnamentB:
		return KindOrnamentB
	case constant.GlyphTrunk:
		return KindTrunk
	case constant.GlyphSnowLight, constant.GlyphSnowHeavy:
		return KindSnow
	default:
		return KindOther
	}
}

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindApex:
		return "apex"
	case KindLeaf:
		return "leaf"
	case KindOrnamentA:
		return "ornament-a"
	case KindOrnamentB:
		return "ornament-b"
	case KindTrunk:
		return "trunk"
	case KindSnow:
		return "snow"
	default:
		return "other"
	}
}
