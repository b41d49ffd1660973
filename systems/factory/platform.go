package factory

import (
	"github.com/automoto/keydoor/archetypes"
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

func bodyOf(r gamemath.Rect) components.BodyData {
	return components.BodyData{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func CreatePlatform(w donburi.World, space *components.SpaceData, index int, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	components.Body.SetValue(platform, bodyOf(r))
	components.Platform.SetValue(platform, components.PlatformData{Index: index, Kind: components.PlatformStatic})
	attachObject(space, platform, 0, tags.ResolvPlatform)
	return platform
}

func CreateMovingPlatform(w donburi.World, space *components.SpaceData, index int, mp leveldata.MovingPlatform) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(w)
	components.Body.SetValue(platform, bodyOf(mp.Rect))
	components.Platform.SetValue(platform, components.PlatformData{Index: index, Kind: components.PlatformMoving})
	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		StartX:           mp.StartX,
		EndX:             mp.EndX,
		Speed:            mp.Speed,
		Direction:        mp.Direction,
		InitialX:         mp.Rect.X,
		InitialDirection: mp.Direction,
	})
	attachObject(space, platform, 0, tags.ResolvPlatform)
	return platform
}

func CreateFallingPlatform(w donburi.World, space *components.SpaceData, index int, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.FallingPlatform.Spawn(w)
	components.Body.SetValue(platform, bodyOf(r))
	components.Platform.SetValue(platform, components.PlatformData{Index: index, Kind: components.PlatformFalling})
	components.FallingPlatform.SetValue(platform, components.FallingPlatformData{OriginalY: r.Y})
	attachObject(space, platform, 0, tags.ResolvPlatform)
	return platform
}

func CreateHazard(w donburi.World, space *components.SpaceData, r gamemath.Rect) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)
	components.Body.SetValue(hazard, bodyOf(r))
	attachObject(space, hazard, 0, tags.ResolvHazard)
	return hazard
}
