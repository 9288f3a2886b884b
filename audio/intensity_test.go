package audio

import (
	"math"
	"testing"

	"github.com/Yashwanth-Chandrakumar/Vomo/config"
)

func newTestMapper() *Mapper {
	return NewMapper(config.Default().Audio)
}

func flatBins(mag byte) []byte {
	bins := make([]byte, 16)
	for i := range bins {
		bins[i] = mag
	}
	return bins
}

func TestMapperZeroBeforeFirstSample(t *testing.T) {
	m := newTestMapper()
	if got := m.Intensity(); got != 0 {
		t.Fatalf("intensity before first sample = %g, want 0", got)
	}
	if m.ShouldTrigger() {
		t.Fatalf("should not trigger before first sample")
	}
	if got := m.JumpPower(); got != 0 {
		t.Fatalf("jump power before first sample = %g, want 0", got)
	}
}

func TestMapperSmoothingIsConvex(t *testing.T) {
	m := newTestMapper()
	m.Sample(flatBins(255)) // smoothed = 0.3

	prev := m.smoothed
	m.Sample(flatBins(128))
	raw := 128.0 / 255.0
	lo, hi := math.Min(prev, raw), math.Max(prev, raw)
	if m.smoothed < lo || m.smoothed > hi {
		t.Fatalf("smoothed %g escaped [%g, %g]", m.smoothed, lo, hi)
	}
}

func TestMapperMonotonicRawGivesMonotonicSmoothed(t *testing.T) {
	m := newTestMapper()
	var prev float64
	for _, mag := range []byte{10, 40, 80, 120, 200, 255} {
		m.Sample(flatBins(mag))
		if m.smoothed < prev {
			t.Fatalf("smoothed decreased (%g -> %g) on rising raw input", prev, m.smoothed)
		}
		prev = m.smoothed
	}
}

func TestMapperIgnoresEmptyFrames(t *testing.T) {
	m := newTestMapper()
	m.Sample(flatBins(200))
	before := m.smoothed
	m.Sample(nil)
	if m.smoothed != before {
		t.Fatalf("empty frame changed smoothed value %g -> %g", before, m.smoothed)
	}
}

func TestMapperJumpPower(t *testing.T) {
	cases := []struct {
		name      string
		smoothed  float64 // set directly; Intensity divides by ceiling 0.8
		wantPower func(p float64) bool
		trigger   bool
	}{
		{"silent", 0, func(p float64) bool { return p == 0 }, false},
		{"at_threshold", 0.05 * 0.8, func(p float64) bool { return p == 0 }, false},
		{"just_above", 0.06 * 0.8, func(p float64) bool { return p >= 0.3 && p < 0.32 }, true},
		{"half", 0.5 * 0.8, func(p float64) bool { return p > 0.3 && p < 1 }, true},
		{"ceiling", 0.8, func(p float64) bool { return p == 1 }, true},
		{"above_ceiling_clamps", 1.5, func(p float64) bool { return p == 1 }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestMapper()
			m.smoothed = c.smoothed
			if got := m.ShouldTrigger(); got != c.trigger {
				t.Fatalf("ShouldTrigger() = %v, want %v (intensity %g)", got, c.trigger, m.Intensity())
			}
			if p := m.JumpPower(); !c.wantPower(p) {
				t.Fatalf("JumpPower() = %g out of expected range", p)
			}
		})
	}
}

func TestMapperJumpPowerNonDecreasing(t *testing.T) {
	m := newTestMapper()
	var prev float64
	for s := 0.0; s <= 1.0; s += 0.01 {
		m.smoothed = s
		p := m.JumpPower()
		if p < prev {
			t.Fatalf("jump power decreased (%g -> %g) at smoothed %g", prev, p, s)
		}
		prev = p
	}
}
