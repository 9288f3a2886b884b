// Package engine is the headless simulation core of Vomo: a fixed-cadence
// side-scroller whose jump input comes from a live loudness signal. The
// host application owns scheduling (one Tick per display refresh) and all
// drawing; the engine owns player physics, the obstacle stream, collision
// resolution, and the run state machine.
package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Yashwanth-Chandrakumar/Vomo/config"
)

// TickMS is the nominal duration of one tick at the display-locked 60Hz
// cadence. Spawn timing and bridge drain accumulate in these units.
const TickMS = 1000.0 / 60

// State is the top-level run state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Source is the audio-intensity collaborator. A nil Source never triggers;
// the engine stays playable through the discrete Jump command.
type Source interface {
	Intensity() float64
	ShouldTrigger() bool
	JumpPower() float64
}

// Store persists the high score across runs.
type Store interface {
	HighScore() (int, bool)
	SetHighScore(score int) error
}

// Spawner produces one obstacle per spawn tick. Returning false skips the
// spawn; the clock logs and carries on.
type Spawner interface {
	Spawn(score int) (Obstacle, bool)
}

// Callbacks are invoked synchronously from Tick. Nil fields are skipped.
type Callbacks struct {
	OnScoreChanged func(score int)
	OnGameOver     func(finalScore int)
}

// Engine is the simulation clock. It exclusively owns the player and the
// obstacle set; collaborators receive copies or produce replacements.
// Not safe for concurrent use — drive it from a single loop.
type Engine struct {
	cfg config.Config

	state      State
	player     Player
	obstacles  []Obstacle
	score      int
	highScore  int
	ticks      uint64
	sinceSpawn float64 // ms since the last spawn
	jumpQueued bool

	source    Source
	store     Store
	spawner   Spawner
	callbacks Callbacks
	rng       *rand.Rand
}

type Option func(*Engine)

func WithSource(s Source) Option      { return func(e *Engine) { e.source = s } }
func WithStore(s Store) Option        { return func(e *Engine) { e.store = s } }
func WithSpawner(s Spawner) Option    { return func(e *Engine) { e.spawner = s } }
func WithCallbacks(c Callbacks) Option { return func(e *Engine) { e.callbacks = c } }
func WithRand(r *rand.Rand) Option    { return func(e *Engine) { e.rng = r } }

// New validates the configuration and builds an engine in the Menu state.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e := &Engine{cfg: cfg, state: StateMenu}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.spawner == nil {
		e.spawner = NewGenerator(cfg, e.rng)
	}
	if e.store != nil {
		if hs, ok := e.store.HighScore(); ok {
			e.highScore = hs
		}
	}
	e.resetRun()
	return e, nil
}

func (e *Engine) resetRun() {
	e.player = Player{Rect: Rect{
		X:      e.cfg.Player.X,
		Y:      e.cfg.Playfield.GroundY - e.cfg.Player.Height,
		Width:  e.cfg.Player.Width,
		Height: e.cfg.Player.Height,
	}}
	e.obstacles = nil
	e.score = 0
	e.ticks = 0
	e.sinceSpawn = 0
	e.jumpQueued = false
}

// Start begins a fresh run. Only Menu and GameOver accept it.
func (e *Engine) Start() {
	if e.state != StateMenu && e.state != StateGameOver {
		return
	}
	e.resetRun()
	e.state = StatePlaying
}

// Pause suspends per-tick updates without resetting anything.
func (e *Engine) Pause() {
	if e.state == StatePlaying {
		e.state = StatePaused
	}
}

func (e *Engine) Resume() {
	if e.state == StatePaused {
		e.state = StatePlaying
	}
}

// Stop ends the current run as if a lethal collision had occurred,
// reporting the final score.
func (e *Engine) Stop() {
	if e.state == StatePlaying || e.state == StatePaused {
		e.gameOver()
	}
}

// Jump queues a discrete jump trigger for the next tick, equivalent to a
// full-power audio trigger. This is the fallback input when no audio
// source can be acquired.
func (e *Engine) Jump() {
	if e.state == StatePlaying {
		e.jumpQueued = true
	}
}

// Tick advances the simulation by one frame. Outside Playing it is a no-op,
// so the host can keep calling it unconditionally from its loop.
func (e *Engine) Tick() {
	if e.state != StatePlaying {
		return
	}
	e.ticks++

	trigger, power := e.pollTrigger()
	e.player.Step(trigger, power, e.cfg.Physics.Gravity, e.cfg.Physics.MaxJumpVelocity, e.cfg.Playfield.GroundY)

	d := Difficulty(e.score)
	e.sinceSpawn += TickMS
	if e.sinceSpawn >= SpawnInterval(d) {
		if o, ok := e.spawner.Spawn(e.score); ok {
			e.obstacles = append(e.obstacles, o)
		} else {
			log.Printf("engine: spawner produced nothing at score %d", e.score)
		}
		e.sinceSpawn = 0
	}
	e.obstacles = Advance(e.obstacles, ScrollSpeed(d))

	outcome := Resolve(&e.player, e.obstacles, TickMS)

	e.score += e.cfg.ScorePerTick
	if cb := e.callbacks.OnScoreChanged; cb != nil {
		cb(e.score)
	}

	if outcome.Resolution == ResolutionLethal {
		e.gameOver()
	}
}

// pollTrigger consumes a queued discrete jump first, then falls back to the
// audio source. A queued jump always fires at full power.
func (e *Engine) pollTrigger() (bool, float64) {
	if e.jumpQueued {
		e.jumpQueued = false
		return true, 1
	}
	if e.source == nil || !e.source.ShouldTrigger() {
		return false, 0
	}
	return true, e.source.JumpPower()
}

func (e *Engine) gameOver() {
	e.state = StateGameOver
	if e.score > e.highScore {
		e.highScore = e.score
		if e.store != nil {
			if err := e.store.SetHighScore(e.score); err != nil {
				log.Printf("engine: persist high score: %v", err)
			}
		}
	}
	if cb := e.callbacks.OnGameOver; cb != nil {
		cb(e.score)
	}
}

func (e *Engine) State() State { return e.state }

func (e *Engine) Score() int { return e.score }

func (e *Engine) HighScore() int { return e.highScore }
