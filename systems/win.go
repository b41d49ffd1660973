package systems

import (
	"log"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// UpdateWin ends the level once every living player is in the door. In
// networked play the relay decides and announces the win instead.
func UpdateWin(w donburi.World) {
	ls := levelState(w)
	if ls == nil || ls.Networked {
		return
	}
	living, inside := 0, 0
	tags.Player.Each(w, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		if p.Dead {
			return
		}
		living++
		if _, ok := ls.AtDoor[p.ID]; ok {
			inside++
		}
	})
	if living == 0 || inside != living {
		return
	}
	ls.State = netconfig.StateWon
	log.Printf("Level %q won by %d players at tick %d", ls.Definition.Name, living, ls.Tick)
}
