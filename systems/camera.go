package systems

import (
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera toward the centroid of the tracked players.
// The camera never scrolls left of the level start.
func UpdateCamera(w donburi.World) {
	ls := levelState(w)
	ce, ok := components.Camera.First(w)
	if ls == nil || !ok {
		return
	}
	cam := components.Camera.Get(ce)

	sum, n := 0.0, 0
	for _, e := range sortedEntries(w, tags.Player, byPlayerID) {
		p := components.Player.Get(e)
		if p.Dead || (cam.Follow != 0 && p.ID != cam.Follow) {
			continue
		}
		sum += components.Body.Get(e).X
		n++
	}
	if n == 0 {
		return
	}

	target := sum/float64(n) - ls.ViewportW/2 + ls.Physics.PlayerWidth/2
	cam.Position.X = gamemath.Smooth(cam.Position.X, target, ls.Physics.CameraSmoothing)
	if cam.Position.X < 0 {
		cam.Position.X = 0
	}
}
