package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Yashwanth-Chandrakumar/Vomo/config"
)

// Difficulty derives the [0,1] difficulty scalar from cumulative score.
func Difficulty(score int) float64 {
	return math.Min(1, float64(score)/100)
}

// SpawnInterval is the ms between obstacle spawns at the given difficulty.
func SpawnInterval(difficulty float64) float64 {
	return math.Max(800, 2500-1700*difficulty)
}

// ScrollSpeed is the px-per-tick horizontal speed shared by all obstacles.
func ScrollSpeed(difficulty float64) float64 {
	return 3 + 4*difficulty
}

// archetype thresholds over a uniform [0,1) draw
const (
	spikeCeil          = 0.4
	movingSpikeCeil    = 0.7
	variableGroundCeil = 0.85
)

func archetypeFor(draw float64) Kind {
	switch {
	case draw < spikeCeil:
		return Spike
	case draw < movingSpikeCeil:
		return MovingSpike
	case draw < variableGroundCeil:
		return VariableGround
	default:
		return CollapsingBridge
	}
}

// Generator spawns difficulty-scaled obstacles at the playfield's right
// edge. It holds no reference to the live obstacle set; the clock appends
// what Spawn returns.
type Generator struct {
	cfg config.Config
	rng *rand.Rand
	seq uint64
}

func NewGenerator(cfg config.Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Spawn draws one obstacle for the current score. The bool mirrors the
// Spawner contract; the real generator always succeeds.
func (g *Generator) Spawn(score int) (Obstacle, bool) {
	d := Difficulty(score)
	x := g.cfg.Playfield.Width
	ground := g.cfg.Playfield.GroundY
	id := g.nextID()

	switch archetypeFor(g.rng.Float64()) {
	case Spike:
		s := g.cfg.Spawn.Spike
		w := g.sample(s.Width)
		h := g.sample(s.Height)
		return NewSpike(id, Rect{X: x, Y: ground - h, Width: w, Height: h}), true

	case MovingSpike:
		s := g.cfg.Spawn.MovingSpike
		w := g.sample(s.Width)
		h := g.sample(s.Height)
		box := Rect{X: x, Y: ground - h, Width: w, Height: h}
		return NewMovingSpike(id, box, s.VerticalSpeed, s.Band), true

	case VariableGround:
		s := g.cfg.Spawn.VariableGround
		w := g.sample(s.Width)
		elev := g.sample(s.Elevation)
		box := Rect{X: x, Y: ground - elev, Width: w, Height: elev}
		return NewVariableGround(id, box, elev), true

	default: // CollapsingBridge
		s := g.cfg.Spawn.Bridge
		w := g.sample(s.Width)
		box := Rect{X: x, Y: ground - s.Deck, Width: w, Height: s.Height}
		delay := s.CollapseDelayBase - s.CollapseDelayScale*d
		return NewCollapsingBridge(id, box, s.Integrity, delay), true
	}
}

func (g *Generator) sample(r config.Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

// nextID is unique for the lifetime of the obstacle set: a monotonic
// sequence plus a random suffix.
func (g *Generator) nextID() string {
	g.seq++
	return fmt.Sprintf("%d-%04x", g.seq, g.rng.Intn(0x10000))
}
