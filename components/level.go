package components

import (
	"sort"

	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/yohamta/donburi"
)

// LevelStateData is the per-attempt state owned by the tick. There is exactly
// one per world.
type LevelStateData struct {
	Definition *leveldata.Definition
	Physics    config.PhysicsProfile

	State          netconfig.GameState
	ResetCountdown int
	Tick           int // animation timer, advances even while frozen

	AtDoor map[int]struct{}

	ViewportW float64
	ViewportH float64

	Networked bool
	Deaths    int
	Resets    int
}

func (l *LevelStateData) Playing() bool {
	return l.State == netconfig.StatePlaying
}

// AtDoorIDs returns the at-door set sorted by id.
func (l *LevelStateData) AtDoorIDs() []int {
	ids := make([]int, 0, len(l.AtDoor))
	for id := range l.AtDoor {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

var LevelState = donburi.NewComponentType[LevelStateData]()
