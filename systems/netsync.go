package systems

import (
	"log"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/automoto/keydoor/systems/factory"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// UpdateNetInbound drains the link's queue and applies every event in
// arrival order. It runs first in the tick, frozen or not.
func UpdateNetInbound(w donburi.World) {
	nd := netOf(w)
	if nd == nil || nd.Link == nil {
		return
	}
	for _, ev := range nd.Link.Drain() {
		applyEvent(w, nd, ev)
	}
}

func applyEvent(w donburi.World, nd *components.NetData, ev messages.ServerEvent) {
	ls := levelState(w)
	switch ev := ev.(type) {
	case messages.RoomState:
		applyRoomState(w, nd, ev)
	case messages.JoinRejected:
		log.Printf("[net] Warning: join rejected: %s", ev.Reason)
	case messages.PlayerJoined:
		if findPlayer(w, ev.PlayerID) == nil && ev.PlayerID != nd.LocalID {
			spawnNetPlayer(w, ev.PlayerID, ev.Name, false)
		}
		log.Printf("[net] Player %d (%s) joined, %d in room", ev.PlayerID, ev.Name, ev.Total)
	case messages.PlayerLeft:
		removePlayer(w, ev.PlayerID)
		log.Printf("[net] Player %d left, %d in room", ev.PlayerID, ev.Total)
	case messages.PlayerPatch:
		if !applyPatch(w, nd, ev) {
			nd.Dropped++
		}
	case messages.KeyCollected:
		collectKey(w, ev.PlayerID)
	case messages.AtDoorUpdate:
		nd.RemoteAtDoor = append([]int(nil), ev.PlayerIDs...)
	case messages.PlayerDied:
		if e := findPlayer(w, ev.PlayerID); e != nil && !components.Player.Get(e).Local {
			components.Player.Get(e).Dead = true
		}
	case messages.GameWon:
		switch ls.State {
		case netconfig.StatePlaying:
			ls.State = netconfig.StateWon
			log.Printf("[net] Room won")
		case netconfig.StateDead:
			nd.PendingWin = true
			log.Printf("[net] Room won while frozen, applying after respawn")
		}
	case messages.GameReset:
		ResetLevel(w)
	}
}

func applyRoomState(w donburi.World, nd *components.NetData, rs messages.RoomState) {
	nd.LocalID = rs.YourID
	if findPlayer(w, rs.YourID) == nil {
		spawnNetPlayer(w, rs.YourID, rs.Names[rs.YourID], true)
	}
	// Members that have not reported yet are only known by name.
	for id, name := range rs.Names {
		if id != rs.YourID && findPlayer(w, id) == nil {
			spawnNetPlayer(w, id, name, false)
		}
	}
	for _, st := range rs.Players {
		if st.PlayerID == rs.YourID {
			continue
		}
		if findPlayer(w, st.PlayerID) == nil {
			spawnNetPlayer(w, st.PlayerID, rs.Names[st.PlayerID], false)
		}
		applyPatch(w, nd, st.Patch())
	}
	if rs.HasKey {
		collectKey(w, 0)
	}
	nd.RemoteAtDoor = append([]int(nil), rs.AtDoor...)
	log.Printf("[net] Joined room %q as player %d with %d others", rs.RoomID, rs.YourID, len(rs.Players))
}

// applyPatch writes a remote player's reported state onto its puppet. It
// reports false for malformed patches and for ids that are unknown or
// simulated here.
func applyPatch(w donburi.World, nd *components.NetData, patch messages.PlayerPatch) bool {
	if err := patch.Validate(); err != nil {
		return false
	}
	if patch.PlayerID == nd.LocalID {
		return false
	}
	e := findPlayer(w, patch.PlayerID)
	if e == nil || components.Player.Get(e).Local {
		return false
	}
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	if patch.X != nil {
		b.X = *patch.X
	}
	if patch.Y != nil {
		b.Y = *patch.Y
	}
	if patch.VX != nil {
		b.VX = *patch.VX
	}
	if patch.VY != nil {
		b.VY = *patch.VY
	}
	if patch.OnGround != nil {
		b.OnGround = *patch.OnGround
	}
	if patch.FacingRight != nil {
		p.FacingRight = *patch.FacingRight
	}
	if patch.Dead != nil {
		p.Dead = *patch.Dead
	}
	if patch.AnimFrame != nil {
		p.AnimFrame = *patch.AnimFrame
	}
	if space := spaceOf(w); space != nil {
		SyncObject(e, space.Pad)
	}
	return true
}

// UpdateNetOutbound reports the local player's state every few ticks and its
// door membership whenever that changes.
func UpdateNetOutbound(w donburi.World) {
	nd := netOf(w)
	ls := levelState(w)
	if nd == nil || ls == nil || nd.LocalID == 0 {
		return
	}
	e := findPlayer(w, nd.LocalID)
	if e == nil {
		return
	}
	p := components.Player.Get(e)
	b := components.Body.Get(e)

	if ls.Tick%netconfig.SendInterval == 0 {
		send(nd, messages.PlayerState{
			PlayerID:    p.ID,
			X:           b.X,
			Y:           b.Y,
			VX:          b.VX,
			VY:          b.VY,
			OnGround:    b.OnGround,
			FacingRight: p.FacingRight,
			Dead:        p.Dead,
			AnimFrame:   p.AnimFrame,
		})
	}

	_, atDoor := ls.AtDoor[p.ID]
	atDoor = atDoor && !p.Dead
	if atDoor != nd.WasAtDoor {
		nd.WasAtDoor = atDoor
		send(nd, messages.AtDoorChanged{AtDoor: atDoor})
	}
}

func send(nd *components.NetData, msg any) {
	if nd.Link == nil {
		return
	}
	if err := nd.Link.Send(msg); err != nil {
		nd.SendErrors++
		log.Printf("[net] Warning: send %T: %v", msg, err)
	}
}

func findPlayer(w donburi.World, id int) *donburi.Entry {
	var found *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Player.Get(e).ID == id {
			found = e
		}
	})
	return found
}

func spawnNetPlayer(w donburi.World, id int, name string, local bool) *donburi.Entry {
	ls := levelState(w)
	space := spaceOf(w)
	if ls == nil || space == nil || !netconfig.ValidPlayerID(id) {
		return nil
	}
	controls := config.ControlBinding{}
	if local {
		controls = config.MergedBinding
	}
	return factory.CreatePlayer(w, space, ls.Physics, factory.PlayerSlot{
		ID:       id,
		Name:     name,
		Spawn:    leveldata.NetworkSpawn(id, ls.Definition.GroundY, ls.Physics.PlayerHeight),
		Controls: controls,
		Local:    local,
	})
}

func removePlayer(w donburi.World, id int) {
	e := findPlayer(w, id)
	if e == nil || components.Player.Get(e).Local {
		return
	}
	if space := spaceOf(w); space != nil {
		factory.DetachObject(space, e)
	}
	w.Remove(e.Entity())
}
