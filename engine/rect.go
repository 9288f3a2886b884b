package engine

// Rect is an axis-aligned bounding box. Y grows downward, matching screen
// coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports strict AABB overlap; boxes that merely touch along an
// edge do not intersect.
func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Right() float64 { return r.X + r.Width }

func (r Rect) Bottom() float64 { return r.Y + r.Height }
