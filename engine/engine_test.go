package engine

import (
	"testing"

	"github.com/Yashwanth-Chandrakumar/Vomo/config"
)

// noSpawner keeps runs obstacle-free so tests control the set directly.
type noSpawner struct{}

func (noSpawner) Spawn(int) (Obstacle, bool) { return Obstacle{}, false }

type fakeStore struct {
	high  int
	ok    bool
	sets  []int
	fail  error
}

func (f *fakeStore) HighScore() (int, bool) { return f.high, f.ok }
func (f *fakeStore) SetHighScore(s int) error {
	f.sets = append(f.sets, s)
	f.high = s
	f.ok = true
	return f.fail
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(config.Default(), append([]Option{WithSpawner(noSpawner{})}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero_playfield", func(c *config.Config) { c.Playfield.Width = 0 }},
		{"ground_below_field", func(c *config.Config) { c.Playfield.GroundY = c.Playfield.Height + 1 }},
		{"upward_gravity", func(c *config.Config) { c.Physics.Gravity = -1 }},
		{"downward_jump", func(c *config.Config) { c.Physics.MaxJumpVelocity = 5 }},
		{"zero_player", func(c *config.Config) { c.Player.Width = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config.Default()
			c.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Fatalf("expected construction to fail")
			}
		})
	}
}

func TestStateMachineTransitions(t *testing.T) {
	cases := []struct {
		name string
		walk func(e *Engine)
		want State
	}{
		{"initial", func(e *Engine) {}, StateMenu},
		{"start", func(e *Engine) { e.Start() }, StatePlaying},
		{"pause", func(e *Engine) { e.Start(); e.Pause() }, StatePaused},
		{"resume", func(e *Engine) { e.Start(); e.Pause(); e.Resume() }, StatePlaying},
		{"stop", func(e *Engine) { e.Start(); e.Stop() }, StateGameOver},
		{"stop_while_paused", func(e *Engine) { e.Start(); e.Pause(); e.Stop() }, StateGameOver},
		{"restart_after_game_over", func(e *Engine) { e.Start(); e.Stop(); e.Start() }, StatePlaying},
		{"pause_in_menu_ignored", func(e *Engine) { e.Pause() }, StateMenu},
		{"resume_in_menu_ignored", func(e *Engine) { e.Resume() }, StateMenu},
		{"stop_in_menu_ignored", func(e *Engine) { e.Stop() }, StateMenu},
		{"start_while_playing_ignored", func(e *Engine) { e.Start(); e.Tick(); e.Start() }, StatePlaying},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEngine(t)
			c.walk(e)
			if got := e.State(); got != c.want {
				t.Fatalf("state = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIdleRunScoresOnePerTick(t *testing.T) {
	var scores []int
	var gameOvers int
	e := newTestEngine(t, WithCallbacks(Callbacks{
		OnScoreChanged: func(s int) { scores = append(scores, s) },
		OnGameOver:     func(int) { gameOvers++ },
	}))

	e.Start()
	for i := 0; i < 200; i++ {
		e.Tick()
	}

	if e.Score() != 200 {
		t.Fatalf("score after 200 idle ticks = %d, want 200", e.Score())
	}
	if len(scores) != 200 {
		t.Fatalf("OnScoreChanged fired %d times, want 200", len(scores))
	}
	if scores[199] != 200 {
		t.Fatalf("final reported score = %d, want 200", scores[199])
	}
	if gameOvers != 0 {
		t.Fatalf("game over fired %d times on an idle run", gameOvers)
	}
	if e.State() != StatePlaying {
		t.Fatalf("idle run left Playing: %v", e.State())
	}
}

func TestLethalCollisionEndsRunOnce(t *testing.T) {
	var finals []int
	e := newTestEngine(t, WithCallbacks(Callbacks{
		OnGameOver: func(s int) { finals = append(finals, s) },
	}))

	e.Start()
	for i := 0; i < 4; i++ {
		e.Tick()
	}
	// drop a hazard onto the player for tick 5
	e.obstacles = []Obstacle{NewSpike("kill", Rect{X: 50, Y: 300, Width: 200, Height: 110})}
	e.Tick()

	if len(finals) != 1 || finals[0] != 5 {
		t.Fatalf("OnGameOver calls = %v, want exactly [5]", finals)
	}
	if e.State() != StateGameOver {
		t.Fatalf("state after lethal collision = %v", e.State())
	}

	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if len(finals) != 1 {
		t.Fatalf("OnGameOver re-fired on idle ticks: %v", finals)
	}
	if e.Score() != 5 {
		t.Fatalf("score advanced after game over: %d", e.Score())
	}
}

func TestPauseSuspendsTicks(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Tick()
	e.Tick()
	e.Tick()

	e.Pause()
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	if e.Score() != 3 {
		t.Fatalf("paused ticks advanced score to %d", e.Score())
	}

	e.Resume()
	e.Tick()
	if e.Score() != 4 {
		t.Fatalf("resume did not continue the run, score %d", e.Score())
	}
}

func TestStartResetsRunState(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	for i := 0; i < 4; i++ {
		e.Tick()
	}
	e.obstacles = []Obstacle{NewSpike("kill", Rect{X: 50, Y: 300, Width: 200, Height: 110})}
	e.Tick()
	if e.State() != StateGameOver {
		t.Fatalf("setup failed, state %v", e.State())
	}

	e.Start()
	snap := e.Snapshot()
	if snap.Score != 0 {
		t.Fatalf("score not reset: %d", snap.Score)
	}
	if len(snap.Obstacles) != 0 {
		t.Fatalf("obstacles not cleared: %d", len(snap.Obstacles))
	}
	cfg := config.Default()
	if snap.Player.X != cfg.Player.X || snap.Player.Bottom() != cfg.Playfield.GroundY {
		t.Fatalf("player not reset, at (%g, %g)", snap.Player.X, snap.Player.Y)
	}
	if snap.Player.VelocityY != 0 || snap.Player.Jumping {
		t.Fatalf("player velocity state not reset")
	}
}

func TestHighScorePersistedOnGameOver(t *testing.T) {
	store := &fakeStore{high: 3, ok: true}
	e := newTestEngine(t, WithStore(store))

	if e.HighScore() != 3 {
		t.Fatalf("stored high score not loaded, got %d", e.HighScore())
	}

	e.Start()
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	e.Stop() // final score 5 beats 3

	if len(store.sets) != 1 || store.sets[0] != 5 {
		t.Fatalf("SetHighScore calls = %v, want [5]", store.sets)
	}
	if e.HighScore() != 5 {
		t.Fatalf("high score = %d, want 5", e.HighScore())
	}

	// a worse run must not overwrite the record
	e.Start()
	e.Tick()
	e.Stop()
	if len(store.sets) != 1 {
		t.Fatalf("worse run overwrote the high score: %v", store.sets)
	}
}

func TestJumpCommandEquivalentToFullTrigger(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Jump()
	e.Tick()

	snap := e.Snapshot()
	if !snap.Player.Jumping {
		t.Fatalf("discrete jump did not launch the player")
	}
	cfg := config.Default()
	want := cfg.Physics.MaxJumpVelocity + cfg.Physics.Gravity
	if snap.Player.VelocityY != want {
		t.Fatalf("vy after discrete jump = %g, want %g (full power)", snap.Player.VelocityY, want)
	}

	// the queue is consumed; the next tick is gravity only
	e.Tick()
	if vy := e.Snapshot().Player.VelocityY; vy != want+cfg.Physics.Gravity {
		t.Fatalf("queued jump fired twice, vy = %g", vy)
	}
}

func TestJumpIgnoredOutsidePlaying(t *testing.T) {
	e := newTestEngine(t)
	e.Jump() // menu
	e.Start()
	e.Tick()
	if e.Snapshot().Player.Jumping {
		t.Fatalf("jump queued in menu leaked into the run")
	}
}

func TestSnapshotDoesNotAliasLiveState(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.obstacles = []Obstacle{NewSpike("s", Rect{X: 700, Y: 370, Width: 30, Height: 30})}

	snap := e.Snapshot()
	snap.Obstacles[0].X = -999
	if e.obstacles[0].X != 700 {
		t.Fatalf("snapshot aliases the live obstacle set")
	}
}

func TestEngineSpawnsOnCadence(t *testing.T) {
	e, err := New(config.Default()) // real generator
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Start()

	// keep the player safe while obstacles stream in
	ticksFor3s := int(3000 / TickMS)
	spawned := 0
	for i := 0; i < ticksFor3s && e.State() == StatePlaying; i++ {
		e.Tick()
		if n := len(e.Snapshot().Obstacles); n > spawned {
			spawned = n
		}
	}
	if spawned == 0 {
		t.Fatalf("no obstacle spawned in 3s of play")
	}
}
