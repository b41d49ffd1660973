package systems

import (
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
)

// Contact describes how a mover was separated from a solid.
type Contact int

const (
	ContactNone Contact = iota
	ContactLanded
	ContactCeiling
	ContactSide
	ContactGrazed // vertical axis chosen but velocity pointed away; no correction
)

// ResolveSolid pushes b out of solid along the axis of least penetration.
// Landing requires downward motion and hitting a ceiling requires upward
// motion, so a body moving away from a shallow contact is left alone.
func ResolveSolid(b *components.BodyData, solid gamemath.Rect) Contact {
	r := b.Rect()
	if !r.Intersects(solid) {
		return ContactNone
	}
	o := gamemath.Overlaps(r, solid)
	if o.Vertical() {
		switch {
		case o.FromAbove() && b.VY > 0:
			b.Y = solid.Y - b.H
			b.VY = 0
			b.OnGround = true
			return ContactLanded
		case o.Bottom < o.Top && b.VY < 0:
			b.Y = solid.Bottom()
			b.VY = 0
			return ContactCeiling
		}
		return ContactGrazed
	}
	if o.FromLeft() {
		b.X = solid.X - b.W
	} else {
		b.X = solid.Right()
	}
	b.VX = 0
	return ContactSide
}

// SeparateSymmetric splits a horizontal overlap between two movers, moving
// each the same distance. It reports whether they were separated and which
// side a was on. Vertical or absent contacts are left alone.
func SeparateSymmetric(a, b *components.BodyData, scale, bias float64) (moved, aOnLeft bool) {
	ra, rb := a.Rect(), b.Rect()
	if !ra.Intersects(rb) {
		return false, false
	}
	o := gamemath.Overlaps(ra, rb)
	if o.MinX() >= o.MinY() {
		return false, false
	}
	dist := o.MinX()/2*scale + bias
	aOnLeft = o.FromLeft()
	if aOnLeft {
		a.X -= dist
		b.X += dist
	} else {
		a.X += dist
		b.X -= dist
	}
	return true, aOnLeft
}
