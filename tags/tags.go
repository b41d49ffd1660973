package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Platform        = donburi.NewTag().SetName("Platform")
	MovingPlatform  = donburi.NewTag().SetName("MovingPlatform")
	FallingPlatform = donburi.NewTag().SetName("FallingPlatform")
	Hazard          = donburi.NewTag().SetName("Hazard")
	Box             = donburi.NewTag().SetName("Box")
	Key             = donburi.NewTag().SetName("Key")
	Door            = donburi.NewTag().SetName("Door")
)

// Resolv tags for the broadphase
const (
	ResolvPlatform = "platform"
	ResolvHazard   = "hazard"
	ResolvBox      = "box"
	ResolvPlayer   = "player"
)
