package factory

import (
	"github.com/automoto/keydoor/archetypes"
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/yohamta/donburi"
)

func CreateKey(w donburi.World, r gamemath.Rect) *donburi.Entry {
	key := archetypes.Key.Spawn(w)
	components.Body.SetValue(key, bodyOf(r))
	components.Key.SetValue(key, components.KeyData{})
	return key
}

func CreateDoor(w donburi.World, r gamemath.Rect) *donburi.Entry {
	door := archetypes.Door.Spawn(w)
	components.Body.SetValue(door, bodyOf(r))
	return door
}
