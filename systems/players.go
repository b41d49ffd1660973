package systems

import (
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayers runs the full per-player pipeline for every living local
// player, in id order. The at-door set is rebuilt from scratch.
func UpdatePlayers(w donburi.World) {
	e, ok := levelEntry(w)
	if !ok {
		return
	}
	ls := components.LevelState.Get(e)
	space := components.Space.Get(e)
	pressed := components.Input.Get(e).Pressed

	ls.AtDoor = make(map[int]struct{}, len(ls.AtDoor))

	// A death mid-loop does not stop later players this tick; the freeze
	// applies from the next tick on.
	for _, pe := range sortedEntries(w, tags.Player, byPlayerID) {
		p := components.Player.Get(pe)
		if p.Dead || !p.Local {
			continue
		}
		integratePlayer(pe, ls, pressed)
		p.StandingOnPlayer = 0
		p.StandingOnBox = 0
		SyncObject(pe, space.Pad)

		stackOnPlayers(pe, ls)
		if ls.Definition.Caps.Boxes {
			stackOnBoxes(pe, ls)
		}
		pushPlayers(pe, ls, space.Pad)
		resolvePlatforms(pe, ls)
		if ls.Definition.Caps.Boxes {
			resolveBoxes(pe, ls)
		}
		SyncObject(pe, space.Pad)

		if ls.Definition.Caps.Hazards {
			checkHazards(w, pe)
		}
		checkKey(w, pe)
		checkDoor(w, pe, ls)
		checkFall(w, pe, ls)

		b := components.Body.Get(pe)
		if b.X < 0 {
			b.X = 0
		}
		SyncObject(pe, space.Pad)
	}
}

// integratePlayer applies input, gravity and one Euler step.
func integratePlayer(e *donburi.Entry, ls *components.LevelStateData, pressed config.KeySet) {
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	prof := ls.Physics

	b.VX = gamemath.HorizontalInput(pressed.Any(p.Controls.Left), pressed.Any(p.Controls.Right), prof.MoveSpeed)
	if b.VX < 0 {
		p.FacingRight = false
	} else if b.VX > 0 {
		p.FacingRight = true
	}

	if pressed.Any(p.Controls.Jump) && b.OnGround {
		b.VY = prof.JumpForce
	}
	b.OnGround = false

	b.VY += prof.Gravity
	b.X += b.VX
	b.Y += b.VY

	switch {
	case b.VX == 0:
		p.AnimFrame = 0
	case prof.AnimInterval > 0 && ls.Tick%prof.AnimInterval == 0:
		if p.AnimFrame == 1 {
			p.AnimFrame = 2
		} else {
			p.AnimFrame = 1
		}
	}
}

// resolvePlatforms separates the player from every platform it overlaps, in
// platform index order.
func resolvePlatforms(e *donburi.Entry, ls *components.LevelStateData) {
	b := components.Body.Get(e)
	for _, pe := range Candidates(e, tags.ResolvPlatform, byPlatformIndex) {
		if offscreenFalling(pe, ls) {
			continue
		}
		if ResolveSolid(b, components.Body.Get(pe).Rect()) != ContactLanded {
			continue
		}
		switch components.Platform.Get(pe).Kind {
		case components.PlatformMoving:
			b.X += components.MovingPlatform.Get(pe).StepX
		case components.PlatformFalling:
			armFalling(pe)
		}
	}
}

// resolveBoxes treats boxes as solids, except that a side contact shoves the
// box instead of stopping the player.
func resolveBoxes(e *donburi.Entry, ls *components.LevelStateData) {
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	for _, be := range Candidates(e, tags.ResolvBox, byBoxID) {
		if components.Box.Get(be).ID == p.StandingOnBox {
			continue
		}
		bb := components.Body.Get(be)
		r, br := b.Rect(), bb.Rect()
		if !r.Intersects(br) {
			continue
		}
		o := gamemath.Overlaps(r, br)
		if o.Vertical() {
			ResolveSolid(b, br)
			continue
		}
		if o.FromLeft() {
			b.X = br.X - b.W
			if b.VX > 0 {
				bb.VX = ls.Physics.BoxPushSpeed
			}
		} else {
			b.X = br.Right()
			if b.VX < 0 {
				bb.VX = -ls.Physics.BoxPushSpeed
			}
		}
	}
}
