// Package audio plays a short start-up jingle through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snowfall/constant"
)

// ErrNotInitialized is returned when playing before Init
var ErrNotInitialized = errors.New("audio not initialized")

// SampleRate is the speaker rate used by the chime
var SampleRate = beep.SampleRate(constant.AudioSampleRate)

// NewChime returns a streamer playing melody as enveloped sine notes separated by short gaps
func NewChime(melody []int, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(melody)*2)
	for _, note := range melody {
		osc := NewSine(NoteFreq(note), constant.ChimeNoteDuration, rate)
		parts = append(parts,
			NewEnvelope(osc, constant.ChimeNoteDuration, constant.ChimeAttack, constant.ChimeRelease, rate),
			beep.Silence(rate.N(constant.ChimeNoteGap)),
		)
	}
	return newVolume(beep.Seq(parts...), constant.ChimeVolume)
}

// ChimeSamples returns the length of the chime for melody in samples
func ChimeSamples(melody []int, rate beep.SampleRate) int {
	return len(melody) * (rate.N(constant.ChimeNoteDuration) + rate.N(constant.ChimeNoteGap))
}

// Player owns the speaker for the lifetime of the program
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer creates an idle player
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker; failure leaves the player silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	return nil
}

// PlayChime queues the jingle without blocking; done is closed when playback ends
func (p *Player) PlayChime() (<-chan struct{}, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, ErrNotInitialized
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(NewChime(constant.ChimeMelody, SampleRate), beep.Callback(func() {
		close(done)
	})))
	return done, nil
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}
