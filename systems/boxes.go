package systems

import (
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// UpdateBoxes integrates pushable boxes: gravity, friction, platform contact,
// then box-on-box stacking or separation. Boxes run in id order.
func UpdateBoxes(w donburi.World) {
	ls := levelState(w)
	space := spaceOf(w)
	if ls == nil || space == nil || !ls.Definition.Caps.Boxes {
		return
	}
	prof := ls.Physics
	band := boxBand(ls)

	for _, e := range sortedEntries(w, tags.Box, byBoxID) {
		b := components.Body.Get(e)
		b.VY += prof.Gravity
		b.VX = gamemath.ApplyFriction(b.VX, prof.BoxFriction, prof.BoxStopThreshold)
		b.X += b.VX
		b.Y += b.VY
		b.OnGround = false
		SyncObject(e, space.Pad)

		for _, p := range Candidates(e, tags.ResolvPlatform, byPlatformIndex) {
			if offscreenFalling(p, ls) {
				continue
			}
			ResolveSolid(b, components.Body.Get(p).Rect())
		}

		for _, o := range Candidates(e, tags.ResolvBox, byBoxID) {
			ob := components.Body.Get(o)
			if gamemath.Rides(b.Rect(), ob.Rect(), b.VY, band) {
				b.Y = gamemath.SnapOnto(b.Rect(), ob.Rect())
				b.VY = 0
				b.OnGround = true
				continue
			}
			if moved, _ := SeparateSymmetric(b, ob, 1, prof.BoxSeparationBias); moved {
				avg := (b.VX + ob.VX) / 2
				b.VX, ob.VX = avg, avg
				SyncObject(o, space.Pad)
			}
		}

		if b.Y > ls.ViewportH+prof.BoxRespawnMargin {
			respawnBox(e)
		}
		if b.X < 0 {
			b.X = 0
		}
		SyncObject(e, space.Pad)
	}
}

func respawnBox(e *donburi.Entry) {
	box := components.Box.Get(e)
	b := components.Body.Get(e)
	b.X, b.Y = box.InitialX, box.InitialY
	b.VX, b.VY = 0, 0
	b.OnGround = false
}
