package constant

import "time"

// Tree Geometry
const (
	// DefaultTreeHeight is the number of body rows in the tree
	DefaultTreeHeight = 12

	// TreeExtraRows pads the canvas above and below the tree: apex, margin, trunk
	TreeExtraRows = 6

	// TreeExtraCols widens the canvas past the widest body row
	TreeExtraCols = 12

	// TreeApexRow is the row holding the apex star
	TreeApexRow = 1

	// TreeBodyTop is the first body row
	TreeBodyTop = 2

	// TreeTrunkRows is the maximum trunk height, clipped above the last canvas row
	TreeTrunkRows = 3

	// TreeTrunkHalfWidth spans the trunk across center-1..center+1
	TreeTrunkHalfWidth = 1
)

// Ornament pattern moduli, evaluated on (row + column)
// OrnamentModA wins when both divide
const (
	OrnamentModA = 11
	OrnamentModB = 7
)

// Glyphs
const (
	GlyphEmpty     = ' '
	GlyphApex      = '^'
	GlyphLeaf      = '*'
	GlyphOrnamentA = 'o'
	GlyphOrnamentB = '+'
	GlyphTrunk     = '|'
	GlyphSnowLight = '.'
	GlyphSnowHeavy = 'x'
)

// Snow
const (
	// DefaultSnowCount is the number of flakes alive at any time
	DefaultSnowCount = 60

	// SnowDriftChance is the per-frame probability of horizontal drift
	SnowDriftChance = 0.3

	// SnowLightChance is the probability a new flake uses GlyphSnowLight
	SnowLightChance = 0.7
)

// Animation
const (
	DefaultFrameDelay = 120 * time.Millisecond

	DefaultCaption  = "Merry Christmas!  🎄"
	DefaultFarewell = "Stopped. Merry Christmas! 🎄"
)

// Twinkle drives the apex pulse on the screen display
const (
	TwinklePeriod = 900 * time.Millisecond
	TwinkleLow    = 0.45
	TwinkleHigh   = 1.0
)
