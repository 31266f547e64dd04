package terminal

import (
	"strconv"
)

// Pre-allocated ANSI sequence fragments
var (
	// CSI sequences
	csiReset     = []byte("\x1b[0m")
	csiHomeClear = []byte("\x1b[H\x1b[J") // cursor home, clear to end of screen
	csiRIS       = []byte("\x1bc")        // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// DECAWM: Auto-Wrap Mode
	csiAutoWrapOn = []byte("\x1b[?7h")
)

const sgrReset = "\x1b[0m"

// sgrBasic returns the SGR sequence for a 16-color foreground code (30-37, 90-97)
func sgrBasic(code uint8) string {
	b := make([]byte, 0, 8)
	b = append(b, "\x1b["...)
	b = strconv.AppendUint(b, uint64(code), 10)
	b = append(b, 'm')
	return string(b)
}

// sgr256 returns the SGR sequence for a 256-palette foreground index
func sgr256(index uint8) string {
	b := make([]byte, 0, 12)
	b = append(b, "\x1b[38;5;"...)
	b = strconv.AppendUint(b, uint64(index), 10)
	b = append(b, 'm')
	return string(b)
}

// sgrRGB returns the SGR sequence for a 24-bit foreground color
func sgrRGB(c RGB) string {
	b := make([]byte, 0, 20)
	b = append(b, "\x1b[38;2;"...)
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.B), 10)
	b = append(b, 'm')
	return string(b)
}
