package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var osLookup = os.Getenv

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ResolveColorMode turns a mode name into a concrete mode for out
// "auto" detects from the environment, and degrades to ColorModeNone when out is not a terminal
func ResolveColorMode(name string, out *os.File) (ColorMode, error) {
	mode, auto, err := ParseColorMode(name)
	if err != nil {
		return ColorModeNone, err
	}
	if !auto {
		return mode, nil
	}
	if out == nil || !IsTerminal(out) {
		return ColorModeNone, nil
	}
	return DetectColorMode(), nil
}

// EmergencyReset restores cursor, attributes and line discipline after a crash
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiReset)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
