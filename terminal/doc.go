// Package terminal writes frames to a plain ANSI terminal.
//
// Features:
//   - Basic (16), 256-color palette and true color (24-bit) glyph decoration
//   - Color capability detection from environment and TTY state
//   - Frame-at-a-time console output with clear, caption and farewell
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
