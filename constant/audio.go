package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime
const (
	ChimeNoteDuration = 180 * time.Millisecond
	ChimeNoteGap      = 20 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 60 * time.Millisecond
	ChimeVolume       = 0.25
)

// ChimeMelody is the opening of Jingle Bells as MIDI note numbers
var ChimeMelody = []int{76, 76, 76, 76, 76, 76, 76, 79, 72, 74, 76}
