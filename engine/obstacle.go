package engine

// Kind tags an obstacle archetype.
type Kind int

const (
	Spike Kind = iota
	MovingSpike
	VariableGround
	CollapsingBridge
)

func (k Kind) String() string {
	switch k {
	case Spike:
		return "spike"
	case MovingSpike:
		return "moving_spike"
	case VariableGround:
		return "variable_ground"
	case CollapsingBridge:
		return "collapsing_bridge"
	default:
		return "unknown"
	}
}

// Oscillation is the vertical movement state of a MovingSpike. Dir is ±1;
// the spike bounces between MinY and MaxY.
type Oscillation struct {
	Dir   float64
	Speed float64
	MinY  float64
	MaxY  float64
}

// BridgeState is the remaining support of a CollapsingBridge. Integrity
// drains while the player stands on the deck; at 0 the bridge no longer
// supports anything.
type BridgeState struct {
	Integrity float64
	// CollapseDelay is how long (ms) of continuous standing contact it
	// takes to drain a fresh bridge completely.
	CollapseDelay float64
}

// Obstacle is a tagged variant over the four archetypes. Only the payload
// field matching Kind is meaningful; the New* constructors are the only
// places obstacles are built, so invalid combinations never exist.
type Obstacle struct {
	ID string
	Rect
	Kind   Kind
	Active bool

	Osc       Oscillation // MovingSpike
	Bridge    BridgeState // CollapsingBridge
	Elevation float64     // VariableGround
}

func NewSpike(id string, box Rect) Obstacle {
	return Obstacle{ID: id, Rect: box, Kind: Spike, Active: true}
}

// NewMovingSpike builds a spike that oscillates inside a band rising `band`
// px above its spawn (resting) line. It starts moving up.
func NewMovingSpike(id string, box Rect, speed, band float64) Obstacle {
	return Obstacle{
		ID:     id,
		Rect:   box,
		Kind:   MovingSpike,
		Active: true,
		Osc: Oscillation{
			Dir:   -1,
			Speed: speed,
			MinY:  box.Y - band,
			MaxY:  box.Y,
		},
	}
}

func NewVariableGround(id string, box Rect, elevation float64) Obstacle {
	return Obstacle{ID: id, Rect: box, Kind: VariableGround, Active: true, Elevation: elevation}
}

func NewCollapsingBridge(id string, box Rect, integrity, collapseDelay float64) Obstacle {
	return Obstacle{
		ID:     id,
		Rect:   box,
		Kind:   CollapsingBridge,
		Active: true,
		Bridge: BridgeState{Integrity: integrity, CollapseDelay: collapseDelay},
	}
}
