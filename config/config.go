package config

import "image/color"

// PhysicsProfile holds every tuning constant the simulation core reads.
// Levels pick a profile; the core never reads package globals mid-tick.
type PhysicsProfile struct {
	Name string

	// Integration
	Gravity      float64
	JumpForce    float64 // negative: up is -y
	MoveSpeed    float64
	AnimInterval int // ticks between walk frame toggles

	// Dimensions
	PlayerWidth  float64
	PlayerHeight float64
	BoxSize      float64

	// Player-on-player stacking band and horizontal margin
	StackBandAbove float64
	StackBandBelow float64
	StackMargin    float64
	StackCarry     float64 // fraction of the lower player's vx given to the rider

	// Player-on-box and box-on-box stacking
	BoxStackBandAbove float64
	BoxStackBandBelow float64
	BoxStackMargin    float64

	// Player-vs-player horizontal push
	PushImpulse     float64
	SeparationScale float64 // multiplies half the overlap
	SeparationBias  float64 // added to each side's separation

	// Boxes
	BoxFriction       float64
	BoxStopThreshold  float64
	BoxPushSpeed      float64
	BoxSeparationBias float64
	BoxRespawnMargin  float64 // below viewport height

	// Falling platforms
	FallDelay int // ticks after landing before the drop starts
	FallSpeed float64

	// Death
	FallMargin       float64 // below viewport height
	DeathFreezeTicks int

	// Camera
	CameraSmoothing float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Follow int // player id to track alone; 0 tracks the centroid of all living players
}

// NetConfig contains client networking defaults
type NetConfig struct {
	ServerAddr   string
	RoomID       string
	PlayerName   string
	World        int // world played in online rooms
	InboxSize    int // buffered inbound events before drops
	WriteTimeout int // milliseconds
}

// MenuConfig contains world-select menu styling
type MenuConfig struct {
	BackgroundColor color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonDisabled  color.RGBA
	TextColor       color.RGBA
	TextDisabled    color.RGBA
	TextWarning     color.RGBA
	PanelColor      color.RGBA
	Title           string
}

// PaletteConfig contains the primitive shape colors used when no sprites are loaded
type PaletteConfig struct {
	Sky              color.RGBA
	Platform         color.RGBA
	PlatformTop      color.RGBA
	MovingPlatform   color.RGBA
	FallingPlatform  color.RGBA
	Hazard           color.RGBA
	Box              color.RGBA
	Key              color.RGBA
	DoorLocked       color.RGBA
	DoorOpen         color.RGBA
	Players          [4]color.RGBA
	DeathOverlay     color.RGBA
	WinOverlay       color.RGBA
	HUDText          color.RGBA
	OverlayFadeTicks int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to a world
	World    int  // World to start when SkipMenu is set
}

// Config holds general game configuration
type Config struct {
	Width        int
	Height       int
	TPS          int
	GroundOffset int // ground line distance above the bottom of the viewport
}

// GroundY returns the ground line for the configured viewport.
func (c *Config) GroundY() float64 {
	return float64(c.Height - c.GroundOffset)
}

// Global configuration instances
var C *Config
var Physics PhysicsProfile
var Camera CameraConfig
var Net NetConfig
var Menu MenuConfig
var Palette PaletteConfig
var Debug DebugConfig

// Profiles holds the per-world physics presets keyed by name.
var Profiles map[string]PhysicsProfile

// Profile names
const (
	ProfileClassic = "classic"
	ProfileBoxes   = "boxes"
)

// Direction constants for platform motion
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// ProfileByName returns the named preset, falling back to the default profile.
func ProfileByName(name string) PhysicsProfile {
	if p, ok := Profiles[name]; ok {
		return p
	}
	return Physics
}

func init() {
	C = &Config{
		Width:        1200,
		Height:       700,
		TPS:          60,
		GroundOffset: 80,
	}

	classic := PhysicsProfile{
		Name: ProfileClassic,

		Gravity:      0.6,
		JumpForce:    -14,
		MoveSpeed:    5,
		AnimInterval: 8,

		PlayerWidth:  45,
		PlayerHeight: 55,
		BoxSize:      45,

		StackBandAbove: 5,
		StackBandBelow: 15,
		StackMargin:    10,
		StackCarry:     0.8,

		BoxStackBandAbove: 5,
		BoxStackBandBelow: 10,
		BoxStackMargin:    5,

		PushImpulse:     0.2,
		SeparationScale: 1,
		SeparationBias:  0.5,

		BoxFriction:       0.85,
		BoxStopThreshold:  0.1,
		BoxPushSpeed:      2,
		BoxSeparationBias: 0.5,
		BoxRespawnMargin:  200,

		FallDelay: 30,
		FallSpeed: 8,

		FallMargin:       50,
		DeathFreezeTicks: 90, // 1.5s at 60 TPS

		CameraSmoothing: 0.1,
	}

	// The box world plays lighter and more forgiving: smaller avatars, a softer
	// shove between players and a longer freeze after a death.
	boxes := classic
	boxes.Name = ProfileBoxes
	boxes.Gravity = 0.5
	boxes.JumpForce = -13
	boxes.MoveSpeed = 4.5
	boxes.PlayerWidth = 40
	boxes.PlayerHeight = 50
	boxes.StackMargin = 8
	boxes.PushImpulse = 0.08
	boxes.SeparationScale = 0.3
	boxes.SeparationBias = 0
	boxes.FallMargin = 100
	boxes.DeathFreezeTicks = 120
	boxes.CameraSmoothing = 0.08

	Physics = classic
	Profiles = map[string]PhysicsProfile{
		ProfileClassic: classic,
		ProfileBoxes:   boxes,
	}

	Camera = CameraConfig{
		Follow: 0,
	}

	Net = NetConfig{
		ServerAddr:   "localhost:7373",
		RoomID:       "lobby",
		PlayerName:   "player",
		World:        1,
		InboxSize:    256,
		WriteTimeout: 500,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{20, 20, 30, 255},
		ButtonIdle:      color.RGBA{60, 60, 80, 255},
		ButtonHover:     color.RGBA{80, 80, 120, 255},
		ButtonPressed:   color.RGBA{40, 40, 60, 255},
		ButtonDisabled:  color.RGBA{40, 40, 40, 255},
		TextColor:       color.RGBA{255, 255, 255, 255},
		TextDisabled:    color.RGBA{100, 100, 100, 255},
		TextWarning:     color.RGBA{255, 200, 100, 255},
		PanelColor:      color.RGBA{30, 30, 45, 255},
		Title:           "KEY & DOOR",
	}

	Palette = PaletteConfig{
		Sky:             color.RGBA{135, 206, 235, 255},
		Platform:        color.RGBA{139, 69, 19, 255},
		PlatformTop:     color.RGBA{34, 139, 34, 255},
		MovingPlatform:  color.RGBA{218, 165, 32, 255},
		FallingPlatform: color.RGBA{160, 82, 45, 255},
		Hazard:          color.RGBA{220, 20, 60, 255},
		Box:             color.RGBA{205, 133, 63, 255},
		Key:             color.RGBA{255, 215, 0, 255},
		DoorLocked:      color.RGBA{101, 67, 33, 255},
		DoorOpen:        color.RGBA{50, 205, 50, 255},
		Players: [4]color.RGBA{
			{74, 144, 217, 255},
			{217, 74, 74, 255},
			{74, 217, 74, 255},
			{217, 217, 74, 255},
		},
		DeathOverlay:     color.RGBA{200, 0, 0, 255},
		WinOverlay:       color.RGBA{0, 0, 0, 255},
		HUDText:          color.RGBA{20, 20, 20, 255},
		OverlayFadeTicks: 20,
	}
}
