package systems

import "github.com/yohamta/donburi"

// UpdateTick advances the level's tick counter. It keeps running while the
// level is frozen.
func UpdateTick(w donburi.World) {
	if ls := levelState(w); ls != nil {
		ls.Tick++
	}
}
