package systems

import (
	"log"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

func checkHazards(w donburi.World, e *donburi.Entry) {
	r := components.Body.Get(e).Rect()
	for _, he := range Candidates(e, tags.ResolvHazard, byEntity) {
		if r.Intersects(components.Body.Get(he).Rect()) {
			KillPlayer(w, e)
			return
		}
	}
}

func checkKey(w donburi.World, e *donburi.Entry) {
	ke, ok := tags.Key.First(w)
	if !ok || components.Key.Get(ke).Collected {
		return
	}
	if !components.Body.Get(e).Rect().Intersects(components.Body.Get(ke).Rect()) {
		return
	}
	id := components.Player.Get(e).ID
	collectKey(w, id)
	if nd := netOf(w); nd != nil {
		send(nd, messages.KeyCollected{PlayerID: id})
	}
}

// collectKey sets the shared key flag. It never clears it.
func collectKey(w donburi.World, by int) {
	ke, ok := tags.Key.First(w)
	if !ok {
		return
	}
	key := components.Key.Get(ke)
	if key.Collected {
		return
	}
	key.Collected = true
	key.CollectedBy = by
	log.Printf("Key collected by player %d", by)
}

func checkDoor(w donburi.World, e *donburi.Entry, ls *components.LevelStateData) {
	ke, ok := tags.Key.First(w)
	if !ok || !components.Key.Get(ke).Collected {
		return
	}
	de, ok := tags.Door.First(w)
	if !ok {
		return
	}
	if components.Body.Get(e).Rect().Intersects(components.Body.Get(de).Rect()) {
		ls.AtDoor[components.Player.Get(e).ID] = struct{}{}
	}
}

func checkFall(w donburi.World, e *donburi.Entry, ls *components.LevelStateData) {
	if components.Body.Get(e).Y > ls.ViewportH+ls.Physics.FallMargin {
		KillPlayer(w, e)
	}
}
