package audio

import (
	"sync"
	"time"
)

// FrequencyProvider exposes the latest frequency-bin magnitudes of a live
// audio source. The bool is false while the source has no data (not yet
// acquired, permission denied, no device).
type FrequencyProvider interface {
	Frequencies() ([]byte, bool)
}

// Sampler polls a FrequencyProvider on its own coarse timer and feeds a
// Mapper. Reads may therefore be up to one poll interval stale, which is
// fine for a loudness input. It satisfies engine.Source.
type Sampler struct {
	mu       sync.Mutex
	mapper   *Mapper
	provider FrequencyProvider

	done chan struct{}
	once sync.Once
}

func NewSampler(mapper *Mapper, provider FrequencyProvider, every time.Duration) *Sampler {
	s := &Sampler{
		mapper:   mapper,
		provider: provider,
		done:     make(chan struct{}),
	}
	go s.run(every)
	return s
}

func (s *Sampler) run(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			bins, ok := s.provider.Frequencies()
			if !ok {
				continue
			}
			s.mu.Lock()
			s.mapper.Sample(bins)
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// Close stops the polling goroutine. Safe to call more than once.
func (s *Sampler) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *Sampler) Intensity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapper.Intensity()
}

func (s *Sampler) ShouldTrigger() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapper.ShouldTrigger()
}

func (s *Sampler) JumpPower() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapper.JumpPower()
}
