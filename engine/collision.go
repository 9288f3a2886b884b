package engine

import "log"

// Resolution classifies what the collision pass did this tick.
type Resolution int

const (
	ResolutionNone Resolution = iota
	ResolutionLanding
	ResolutionLethal
)

func (r Resolution) String() string {
	switch r {
	case ResolutionLanding:
		return "landing"
	case ResolutionLethal:
		return "lethal"
	default:
		return "none"
	}
}

// Outcome reports the single obstacle resolved this tick, if any.
type Outcome struct {
	Resolution Resolution
	ObstacleID string
}

// landingTolerance is how close (px) the player's bottom edge must be to a
// bridge top for the overlap to count as standing on the deck.
const landingTolerance = 5

// Resolve tests the player against the obstacle set in insertion order and
// applies the first overlap it finds: hazards are lethal, supportive
// surfaces snap the player onto their top edge, and an occupied bridge
// drains integrity in place. At most one obstacle is resolved per tick.
func Resolve(p *Player, obstacles []Obstacle, tickMS float64) Outcome {
	for i := range obstacles {
		o := &obstacles[i]
		if o.Width <= 0 || o.Height <= 0 {
			// malformed obstacle: skip it rather than let one bad spawn
			// end the run
			log.Printf("engine: skipping malformed obstacle %s (%gx%g)", o.ID, o.Width, o.Height)
			continue
		}
		if !o.Rect.Intersects(&p.Rect) {
			continue
		}

		switch o.Kind {
		case Spike, MovingSpike:
			return Outcome{Resolution: ResolutionLethal, ObstacleID: o.ID}

		case VariableGround:
			p.landOn(o.Y)
			return Outcome{Resolution: ResolutionLanding, ObstacleID: o.ID}

		case CollapsingBridge:
			if o.Bridge.Integrity <= 0 {
				return Outcome{Resolution: ResolutionLethal, ObstacleID: o.ID}
			}
			if p.Bottom() <= o.Y+landingTolerance {
				p.landOn(o.Y)
				o.Bridge.Integrity -= drainPerTick(o.Bridge.CollapseDelay, tickMS)
				if o.Bridge.Integrity < 0 {
					o.Bridge.Integrity = 0
				}
				return Outcome{Resolution: ResolutionLanding, ObstacleID: o.ID}
			}
			// overlapping the deck from the side or below: neither a
			// landing nor lethal, and it still consumes this tick's
			// single resolution
			return Outcome{Resolution: ResolutionNone, ObstacleID: o.ID}
		}
	}
	return Outcome{}
}

// drainPerTick spreads a full integrity drain (100) over CollapseDelay ms
// of standing contact.
func drainPerTick(collapseDelay, tickMS float64) float64 {
	if collapseDelay <= 0 {
		return 100
	}
	return 100 * tickMS / collapseDelay
}
