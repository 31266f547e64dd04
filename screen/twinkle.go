package screen

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Twinkle oscillates a brightness factor between low and high, one full cycle per period
type Twinkle struct {
	low, high float32
	half      float32 // seconds per leg
	rising    bool
	value     float32
	tween     *gween.Tween
}

// NewTwinkle starts at low and rises first
func NewTwinkle(low, high float64, period time.Duration) *Twinkle {
	t := &Twinkle{
		low:    float32(low),
		high:   float32(high),
		half:   float32(period.Seconds() / 2),
		rising: true,
		value:  float32(low),
	}
	t.tween = gween.New(t.low, t.high, t.half, ease.InOutSine)
	return t
}

// Update advances the pulse by dt and returns the current factor
func (t *Twinkle) Update(dt time.Duration) float64 {
	v, finished := t.tween.Update(float32(dt.Seconds()))
	t.value = v
	if finished {
		t.rising = !t.rising
		if t.rising {
			t.tween = gween.New(t.low, t.high, t.half, ease.InOutSine)
		} else {
			t.tween = gween.New(t.high, t.low, t.half, ease.InOutSine)
		}
	}
	return float64(t.value)
}

// Value returns the last computed factor
func (t *Twinkle) Value() float64 {
	return float64(t.value)
}
