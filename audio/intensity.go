// Package audio turns raw frequency-domain loudness samples into the
// smoothed jump-trigger signal the engine consumes. It never talks to a
// device itself; a FrequencyProvider supplies the bins, so the game stays
// playable when no microphone can be acquired.
package audio

import (
	"github.com/Yashwanth-Chandrakumar/Vomo/common"
	"github.com/Yashwanth-Chandrakumar/Vomo/config"
)

// Mapper folds frequency-bin magnitudes into a smoothed, normalized
// intensity scalar. It is not safe for concurrent use; wrap it in a Sampler
// when samples arrive from another goroutine.
type Mapper struct {
	smoothing float64
	ceiling   float64
	threshold float64
	minPower  float64

	smoothed float64
}

func NewMapper(cfg config.Audio) *Mapper {
	return &Mapper{
		smoothing: cfg.Smoothing,
		ceiling:   cfg.Ceiling,
		threshold: cfg.Threshold,
		minPower:  cfg.MinJumpPower,
	}
}

// Sample folds one frame of frequency-bin magnitudes (0-255 each) into the
// running average. Empty frames are ignored.
func (m *Mapper) Sample(bins []byte) {
	if len(bins) == 0 {
		return
	}
	var sum float64
	for _, b := range bins {
		sum += float64(b)
	}
	raw := sum / float64(len(bins)) / 255
	m.smoothed = m.smoothing*raw + (1-m.smoothing)*m.smoothed
}

// Intensity reports the current smoothed loudness normalized to [0,1].
// It is 0 until the first sample arrives.
func (m *Mapper) Intensity() float64 {
	return common.Clamp(m.smoothed/m.ceiling, 0, 1)
}

func (m *Mapper) ShouldTrigger() bool {
	return m.Intensity() > m.threshold
}

// JumpPower is 0 at or below the trigger threshold, otherwise the intensity
// remapped linearly from (threshold,1] onto [minPower,1].
func (m *Mapper) JumpPower() float64 {
	i := m.Intensity()
	if i <= m.threshold {
		return 0
	}
	return common.Remap(i, m.threshold, 1, m.minPower, 1)
}
