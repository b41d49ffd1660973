package components

import "github.com/yohamta/donburi"

// PlatformKind distinguishes the three platform variants.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
	PlatformFalling
)

type PlatformData struct {
	Index int // resolution order: static first, then moving, then falling
	Kind  PlatformKind
}

var Platform = donburi.NewComponentType[PlatformData]()

type MovingPlatformData struct {
	StartX    float64
	EndX      float64
	Speed     float64
	Direction float64
	StepX     float64 // horizontal distance moved this tick, carried to riders

	InitialX         float64
	InitialDirection float64
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()

type FallingPlatformData struct {
	Falling   bool
	FallTimer int
	OriginalY float64
}

var FallingPlatform = donburi.NewComponentType[FallingPlatformData]()
