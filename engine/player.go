package engine

// Player is the runner's physics state. Owned by the Engine; mutated only
// by Step and by the collision resolver's landings.
type Player struct {
	Rect
	VelocityY float64
	Jumping   bool
	// Power is the jump power of the most recent impulse, kept for the
	// render snapshot.
	Power float64
}

// Step advances one tick of vertical physics: apply a jump impulse when
// triggered on the ground, then gravity, then clamp to the ground line.
// The per-tick increments assume the display-locked ~60Hz cadence.
func (p *Player) Step(trigger bool, power, gravity, maxJumpVelocity, groundY float64) {
	if trigger && !p.Jumping {
		p.VelocityY = maxJumpVelocity * power
		p.Jumping = true
		p.Power = power
	}

	p.VelocityY += gravity
	p.Y += p.VelocityY

	if p.Bottom() >= groundY {
		p.landOn(groundY)
	}
}

// landOn snaps the player's bottom edge to a supportive top edge.
func (p *Player) landOn(top float64) {
	p.Y = top - p.Height
	p.VelocityY = 0
	p.Jumping = false
}
