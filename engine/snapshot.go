package engine

// Snapshot is the per-tick render view of the simulation. The caller owns
// all drawing; the engine hands out copies so nothing here aliases live
// state.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	HighScore int
	// Intensity is the current audio loudness in [0,1], 0 without a source.
	Intensity float64
	Player    Player
	Obstacles []Obstacle
}

func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(e.obstacles))
	copy(obstacles, e.obstacles)

	intensity := 0.0
	if e.source != nil {
		intensity = e.source.Intensity()
	}

	return Snapshot{
		Tick:      e.ticks,
		State:     e.state,
		Score:     e.score,
		HighScore: e.highScore,
		Intensity: intensity,
		Player:    e.player,
		Obstacles: obstacles,
	}
}
