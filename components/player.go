package components

import (
	"github.com/automoto/keydoor/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ID       int
	Name     string
	Controls config.ControlBinding
	SpawnX   float64
	SpawnY   float64

	FacingRight bool
	Dead        bool
	AnimFrame   int // 0 idle, 1 and 2 alternate while walking

	// Recomputed from geometry every tick; 0 means none.
	StandingOnPlayer int
	StandingOnBox    int

	// Local players are simulated here. Remote players are puppets that only
	// move when a patch arrives.
	Local bool
}

var Player = donburi.NewComponentType[PlayerData]()
