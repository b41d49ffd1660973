package systems

import (
	"log"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// KillPlayer marks the player dead and (re)starts the freeze countdown.
// Several deaths in one tick leave a single full-length countdown.
func KillPlayer(w donburi.World, e *donburi.Entry) {
	p := components.Player.Get(e)
	if p.Dead {
		return
	}
	ls := levelState(w)
	if ls == nil {
		return
	}
	p.Dead = true
	ls.Deaths++
	ls.State = netconfig.StateDead
	ls.ResetCountdown = ls.Physics.DeathFreezeTicks
	log.Printf("Player %d died, resetting in %d ticks", p.ID, ls.ResetCountdown)

	if nd := netOf(w); nd != nil && p.Local {
		send(nd, messages.PlayerDied{PlayerID: p.ID})
	}
}

// UpdateDeath counts down the freeze and resets once it runs out. It runs
// last in the tick so the reset is visible as soon as the tick returns.
func UpdateDeath(w donburi.World) {
	ls := levelState(w)
	if ls == nil || ls.State != netconfig.StateDead {
		return
	}
	ls.ResetCountdown--
	if ls.ResetCountdown > 0 {
		return
	}
	ls.ResetCountdown = 0
	if ls.Networked {
		RespawnLocal(w)
		return
	}
	ResetLevel(w)
}

// ResetLevel puts every entity back to its initial layout and resumes play.
func ResetLevel(w donburi.World) {
	e, ok := levelEntry(w)
	if !ok {
		return
	}
	ls := components.LevelState.Get(e)
	space := components.Space.Get(e)

	tags.Player.Each(w, func(pe *donburi.Entry) {
		respawnPlayer(pe)
		SyncObject(pe, space.Pad)
	})
	tags.Box.Each(w, func(be *donburi.Entry) {
		respawnBox(be)
		SyncObject(be, space.Pad)
	})
	tags.FallingPlatform.Each(w, func(fe *donburi.Entry) {
		fp := components.FallingPlatform.Get(fe)
		fp.Falling = false
		fp.FallTimer = 0
		components.Body.Get(fe).Y = fp.OriginalY
		SyncObject(fe, space.Pad)
	})
	tags.MovingPlatform.Each(w, func(me *donburi.Entry) {
		mp := components.MovingPlatform.Get(me)
		mp.Direction = mp.InitialDirection
		mp.StepX = 0
		components.Body.Get(me).X = mp.InitialX
		SyncObject(me, space.Pad)
	})
	if ke, ok := tags.Key.First(w); ok {
		components.Key.SetValue(ke, components.KeyData{})
	}
	if ce, ok := components.Camera.First(w); ok {
		components.Camera.Get(ce).Position.X = 0
	}
	if e.HasComponent(components.Net) {
		nd := components.Net.Get(e)
		nd.WasAtDoor = false
		nd.RemoteAtDoor = nil
		nd.PendingWin = false
	}

	ls.AtDoor = map[int]struct{}{}
	ls.State = netconfig.StatePlaying
	ls.ResetCountdown = 0
	ls.Resets++
	log.Printf("Level %q reset (attempt %d)", ls.Definition.Name, ls.Resets+1)
}

// RespawnLocal revives only the locally simulated players. Networked levels
// use it so one client's death does not rewind the room. A win announced
// during the freeze takes effect here.
func RespawnLocal(w donburi.World) {
	ls := levelState(w)
	space := spaceOf(w)
	if ls == nil || space == nil {
		return
	}
	tags.Player.Each(w, func(pe *donburi.Entry) {
		if !components.Player.Get(pe).Local {
			return
		}
		respawnPlayer(pe)
		SyncObject(pe, space.Pad)
	})
	ls.State = netconfig.StatePlaying
	if nd := netOf(w); nd != nil && nd.PendingWin {
		nd.PendingWin = false
		ls.State = netconfig.StateWon
		log.Printf("[net] Room won")
	}
	ls.ResetCountdown = 0
	log.Printf("Respawned local player")
}

func respawnPlayer(e *donburi.Entry) {
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	b.X, b.Y = p.SpawnX, p.SpawnY
	b.VX, b.VY = 0, 0
	b.OnGround = false
	p.Dead = false
	p.AnimFrame = 0
	p.StandingOnPlayer = 0
	p.StandingOnBox = 0
}
