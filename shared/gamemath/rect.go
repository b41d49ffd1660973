// Package gamemath holds the pure geometry shared by the client simulation and
// the server. No ebiten, donburi or resolv types cross this boundary.
package gamemath

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports strict overlap. Touching edges do not intersect, so an
// entity resting exactly on a platform top is not re-resolved every tick.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Overlap holds the four directional penetration depths of a into b.
type Overlap struct {
	Left   float64 // a's right edge past b's left edge
	Right  float64 // b's right edge past a's left edge
	Top    float64 // a's bottom edge past b's top edge
	Bottom float64 // b's bottom edge past a's top edge
}

// Overlaps computes the directional penetration of a into b.
func Overlaps(a, b Rect) Overlap {
	return Overlap{
		Left:   a.X + a.W - b.X,
		Right:  b.X + b.W - a.X,
		Top:    a.Y + a.H - b.Y,
		Bottom: b.Y + b.H - a.Y,
	}
}

func (o Overlap) MinX() float64 { return min(o.Left, o.Right) }
func (o Overlap) MinY() float64 { return min(o.Top, o.Bottom) }

// Vertical reports whether the contact should be resolved on the y axis.
func (o Overlap) Vertical() bool { return o.MinY() < o.MinX() }

// FromLeft reports whether a entered b from b's left side.
func (o Overlap) FromLeft() bool { return o.Left < o.Right }

// FromAbove reports whether a entered b from above.
func (o Overlap) FromAbove() bool { return o.Top < o.Bottom }
