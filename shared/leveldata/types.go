// Package leveldata describes level geometry shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import (
	"errors"

	"github.com/automoto/keydoor/shared/gamemath"
)

// ErrUnknownWorld is returned when a world number has no built-in definition.
var ErrUnknownWorld = errors.New("unknown world")

// Capabilities flag which entity collections a level carries. Systems skip
// collections a level does not have.
type Capabilities struct {
	Hazards          bool
	Boxes            bool
	MovingPlatforms  bool
	FallingPlatforms bool
}

// MovingPlatform oscillates horizontally between StartX and EndX.
type MovingPlatform struct {
	Rect      gamemath.Rect
	StartX    float64
	EndX      float64
	Speed     float64
	Direction float64 // +1 or -1
}

// BoxDef is a pushable box's initial layout.
type BoxDef struct {
	ID   int
	X, Y float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Definition is everything needed to build a level, already resolved against
// a ground line.
type Definition struct {
	Name    string
	World   int    // 0 for levels outside the numbered progression
	Profile string // config.Profiles key

	GroundY float64
	Width   float64 // horizontal extent used to size the broadphase

	Players int // participants in local play

	Platforms        []gamemath.Rect
	MovingPlatforms  []MovingPlatform
	FallingPlatforms []gamemath.Rect
	Hazards          []gamemath.Rect
	Boxes            []BoxDef
	Key              gamemath.Rect
	Door             gamemath.Rect
	SpawnPoints      []SpawnPoint

	Caps Capabilities
}

// DeriveCapabilities sets Caps from the collections that are present.
func (d *Definition) DeriveCapabilities() {
	d.Caps = Capabilities{
		Hazards:          len(d.Hazards) > 0,
		Boxes:            len(d.Boxes) > 0,
		MovingPlatforms:  len(d.MovingPlatforms) > 0,
		FallingPlatforms: len(d.FallingPlatforms) > 0,
	}
}

// DeriveWidth sets Width to the right edge of the furthest piece of geometry.
func (d *Definition) DeriveWidth() {
	w := d.Door.Right()
	grow := func(r gamemath.Rect) {
		if r.Right() > w {
			w = r.Right()
		}
	}
	for _, p := range d.Platforms {
		grow(p)
	}
	for _, mp := range d.MovingPlatforms {
		grow(mp.Rect)
		if mp.EndX+mp.Rect.W > w {
			w = mp.EndX + mp.Rect.W
		}
	}
	for _, fp := range d.FallingPlatforms {
		grow(fp)
	}
	for _, h := range d.Hazards {
		grow(h)
	}
	d.Width = w
}

// Spawn returns the spawn point for a 1-based player slot. Slots beyond the
// authored spawns continue the spacing of the last two.
func (d *Definition) Spawn(slot int) SpawnPoint {
	n := len(d.SpawnPoints)
	switch {
	case n == 0:
		return SpawnPoint{X: 50 * float64(slot), Y: d.GroundY - 100, Index: slot}
	case slot <= n:
		return d.SpawnPoints[slot-1]
	case n == 1:
		last := d.SpawnPoints[0]
		return SpawnPoint{X: last.X + 50*float64(slot-1), Y: last.Y, Index: slot}
	}
	last, prev := d.SpawnPoints[n-1], d.SpawnPoints[n-2]
	step := last.X - prev.X
	return SpawnPoint{X: last.X + step*float64(slot-n), Y: last.Y, Index: slot}
}

// NetworkSpawn is the spawn slot used by networked play, where ids are handed
// out by the room: x = 50 + id*80, feet on the ground line.
func NetworkSpawn(id int, groundY, playerHeight float64) SpawnPoint {
	return SpawnPoint{X: 50 + float64(id)*80, Y: groundY - playerHeight, Index: id}
}
