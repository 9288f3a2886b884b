package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

const shoutBins = 32

// heldKeyProvider stands in for a microphone: holding the shout key (S)
// ramps a loudness level up, releasing it lets the level decay, and
// Frequencies synthesizes flat frequency bins at that level. The real
// capture path plugs in behind the same audio.FrequencyProvider interface,
// so the whole mapper/sampler chain runs identically with or without a
// device.
type heldKeyProvider struct {
	mu    sync.Mutex
	level float64
}

func newHeldKeyProvider() *heldKeyProvider {
	return &heldKeyProvider{}
}

// Update runs on the ebiten loop once per frame.
func (p *heldKeyProvider) Update() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		p.level += 0.08
		if p.level > 1 {
			p.level = 1
		}
	} else {
		p.level *= 0.8
		if p.level < 0.01 {
			p.level = 0
		}
	}
}

func (p *heldKeyProvider) Frequencies() ([]byte, bool) {
	p.mu.Lock()
	level := p.level
	p.mu.Unlock()

	bins := make([]byte, shoutBins)
	mag := byte(level * 255)
	for i := range bins {
		bins[i] = mag
	}
	return bins, true
}
