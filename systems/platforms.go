package systems

import (
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlatforms advances moving platforms along their track and drops armed
// falling platforms.
func UpdatePlatforms(w donburi.World) {
	ls := levelState(w)
	space := spaceOf(w)
	if ls == nil || space == nil {
		return
	}
	caps := ls.Definition.Caps

	if caps.MovingPlatforms {
		tags.MovingPlatform.Each(w, func(e *donburi.Entry) {
			b := components.Body.Get(e)
			mp := components.MovingPlatform.Get(e)
			prevX := b.X
			b.X += mp.Speed * mp.Direction
			if b.X <= mp.StartX || b.X >= mp.EndX {
				mp.Direction *= -1
			}
			mp.StepX = b.X - prevX
			SyncObject(e, space.Pad)
		})
	}

	if caps.FallingPlatforms {
		tags.FallingPlatform.Each(w, func(e *donburi.Entry) {
			fp := components.FallingPlatform.Get(e)
			if !fp.Falling {
				return
			}
			b := components.Body.Get(e)
			if b.Y >= ls.ViewportH {
				return
			}
			fp.FallTimer++
			if fp.FallTimer > ls.Physics.FallDelay {
				b.Y += ls.Physics.FallSpeed
				SyncObject(e, space.Pad)
			}
		})
	}
}

// armFalling starts a falling platform's countdown. Landing again while armed
// does not restart it.
func armFalling(e *donburi.Entry) {
	fp := components.FallingPlatform.Get(e)
	fp.Falling = true
}
