package engine

// Advance produces the next obstacle set: every obstacle scrolls left by
// speed, moving spikes oscillate inside their band, and obstacles whose
// right edge has left the playfield are dropped. Pure: the input slice is
// never mutated.
func Advance(obstacles []Obstacle, speed float64) []Obstacle {
	next := make([]Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		o.X -= speed
		if o.Kind == MovingSpike {
			o.Y += o.Osc.Dir * o.Osc.Speed
			if o.Y <= o.Osc.MinY {
				o.Y = o.Osc.MinY
				o.Osc.Dir = 1
			} else if o.Y >= o.Osc.MaxY {
				o.Y = o.Osc.MaxY
				o.Osc.Dir = -1
			}
		}
		if o.Right() < 0 {
			o.Active = false
		}
		if o.Active {
			next = append(next, o)
		}
	}
	return next
}
