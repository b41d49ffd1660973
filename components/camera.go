package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Follow   int // player id tracked alone; 0 follows the centroid
}

var Camera = donburi.NewComponentType[CameraData]()
