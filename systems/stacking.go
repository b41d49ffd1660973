package systems

import (
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// stackOnPlayers lets e ride any living player under it. Puppets can be
// stood on.
func stackOnPlayers(e *donburi.Entry, ls *components.LevelStateData) {
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	band := playerBand(ls)
	for _, oe := range Candidates(e, tags.ResolvPlayer, byPlayerID) {
		other := components.Player.Get(oe)
		if other.Dead {
			continue
		}
		ob := components.Body.Get(oe)
		if !gamemath.Rides(b.Rect(), ob.Rect(), b.VY, band) {
			continue
		}
		b.Y = gamemath.SnapOnto(b.Rect(), ob.Rect())
		b.VY = 0
		b.OnGround = true
		p.StandingOnPlayer = other.ID
		if ob.VX != 0 && b.VX == 0 {
			b.X += ob.VX * ls.Physics.StackCarry
		}
	}
}

// stackOnBoxes lets e ride any box under it, carried by the box's velocity.
func stackOnBoxes(e *donburi.Entry, ls *components.LevelStateData) {
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	band := boxBand(ls)
	for _, be := range Candidates(e, tags.ResolvBox, byBoxID) {
		bb := components.Body.Get(be)
		if !gamemath.Rides(b.Rect(), bb.Rect(), b.VY, band) {
			continue
		}
		b.Y = gamemath.SnapOnto(b.Rect(), bb.Rect())
		b.VY = 0
		b.OnGround = true
		p.StandingOnBox = components.Box.Get(be).ID
		b.X += bb.VX
	}
}

// pushPlayers separates e from overlapping local players side by side and
// passes on a push impulse when e walks into them. Pairs in a riding relation
// are left to the stacking rule.
func pushPlayers(e *donburi.Entry, ls *components.LevelStateData, pad float64) {
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	prof := ls.Physics
	for _, oe := range Candidates(e, tags.ResolvPlayer, byPlayerID) {
		other := components.Player.Get(oe)
		if other.Dead || !other.Local {
			continue
		}
		if p.StandingOnPlayer == other.ID || other.StandingOnPlayer == p.ID {
			continue
		}
		ob := components.Body.Get(oe)
		moved, onLeft := SeparateSymmetric(b, ob, prof.SeparationScale, prof.SeparationBias)
		if !moved {
			continue
		}
		switch {
		case onLeft && b.VX > 0:
			ob.VX = gamemath.ClampSpeed(ob.VX+prof.PushImpulse, prof.MoveSpeed)
		case !onLeft && b.VX < 0:
			ob.VX = gamemath.ClampSpeed(ob.VX-prof.PushImpulse, prof.MoveSpeed)
		}
		SyncObject(oe, pad)
	}
}
