package components

import (
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the AABB and velocity of anything that takes part in collision.
// Static geometry leaves the velocity at zero.
type BodyData struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	OnGround bool
}

func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

var Body = donburi.NewComponentType[BodyData]()
