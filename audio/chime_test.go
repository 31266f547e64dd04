package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > 10*44100 {
			t.Fatal("Stream did not terminate")
		}
	}
}

func TestNoteFreq(t *testing.T) {
	if f := NoteFreq(69); math.Abs(f-440) > 1e-9 {
		t.Errorf("Expected A4 = 440Hz, got %f", f)
	}
	if f := NoteFreq(81); math.Abs(f-880) > 1e-9 {
		t.Errorf("Expected A5 = 880Hz, got %f", f)
	}
	if NoteFreq(-1) != 0 || NoteFreq(128) != 0 {
		t.Error("Expected 0 for out-of-range notes")
	}
}

func TestSineLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewSine(440, 100*time.Millisecond, rate)

	total, peak := drain(t, osc)
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), total)
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("Expected near-unit peak, got %f", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got %v", osc.Err())
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	env := NewEnvelope(NewSine(440, d, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("Expected faded last sample, got %f", last)
	}
}

func TestChimeLengthAndVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	melody := []int{76, 79, 72}

	total, peak := drain(t, NewChime(melody, rate))
	if want := ChimeSamples(melody, rate); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if peak > 0.25+1e-9 {
		t.Errorf("Expected peak within chime volume, got %f", peak)
	}
	if peak == 0 {
		t.Error("Expected audible chime")
	}
}

func TestPlayerRequiresInit(t *testing.T) {
	p := NewPlayer()
	if _, err := p.PlayChime(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	p.Close()
}
