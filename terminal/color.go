package terminal

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeNone      ColorMode = iota // no escape sequences
	ColorModeBasic                      // 16-color bright foreground codes
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ErrUnknownColorMode is returned by ParseColorMode for unrecognized names
var ErrUnknownColorMode = errors.New("unknown color mode")

// String returns the flag name of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorModeNone:
		return "never"
	case ColorModeBasic:
		return "basic"
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
}

// ParseColorMode resolves a mode name; auto reports true for "auto" and "" so the caller can detect
func ParseColorMode(name string) (mode ColorMode, auto bool, err error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return ColorModeNone, true, nil
	case "never", "none", "off", "false":
		return ColorModeNone, false, nil
	case "basic", "16":
		return ColorModeBasic, false, nil
	case "256":
		return ColorMode256, false, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, false, nil
	}
	return ColorModeNone, false, fmt.Errorf("%w: %q", ErrUnknownColorMode, name)
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts RGB to the nearest 256-color palette index
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := 232 + (gray-8)/10
		if grayIdx > 255 {
			grayIdx = 255
		}

		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)

		cubeDist := abs(int(r)-int(cubeValues[cubeIndex[r]])) +
			abs(int(g)-int(cubeValues[cubeIndex[g]])) +
			abs(int(b)-int(cubeValues[cubeIndex[b]]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// DetectColorMode determines terminal color capability from the process environment
func DetectColorMode() ColorMode {
	return detectColorMode(osLookup)
}

// detectColorMode reads capability hints through getenv
func detectColorMode(getenv func(string) string) ColorMode {
	// https://no-color.org
	if getenv("NO_COLOR") != "" {
		return ColorModeNone
	}

	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if getenv("KITTY_WINDOW_ID") != "" ||
		getenv("KONSOLE_VERSION") != "" ||
		getenv("ITERM_SESSION_ID") != "" ||
		getenv("ALACRITTY_WINDOW_ID") != "" ||
		getenv("ALACRITTY_LOG") != "" ||
		getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return ColorModeNone
	case strings.Contains(term, "truecolor"),
		strings.Contains(term, "24bit"),
		strings.Contains(term, "direct"):
		return ColorModeTrueColor
	case strings.Contains(term, "256"):
		return ColorMode256
	}

	return ColorModeBasic
}
