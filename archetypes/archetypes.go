package archetypes

import (
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Body,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		tags.MovingPlatform,
		components.Platform,
		components.MovingPlatform,
		components.Body,
		components.Object,
	)
	FallingPlatform = newArchetype(
		tags.Platform,
		tags.FallingPlatform,
		components.Platform,
		components.FallingPlatform,
		components.Body,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Body,
		components.Object,
	)
	Box = newArchetype(
		tags.Box,
		components.Box,
		components.Body,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
	)
	Key = newArchetype(
		tags.Key,
		components.Key,
		components.Body,
	)
	Door = newArchetype(
		tags.Door,
		components.Body,
	)
	Level = newArchetype(
		components.LevelState,
		components.Input,
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
