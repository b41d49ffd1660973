package factory

import (
	"github.com/automoto/keydoor/archetypes"
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

func CreateBox(w donburi.World, space *components.SpaceData, def leveldata.BoxDef, size float64) *donburi.Entry {
	box := archetypes.Box.Spawn(w)
	components.Body.SetValue(box, components.BodyData{X: def.X, Y: def.Y, W: size, H: size})
	components.Box.SetValue(box, components.BoxData{ID: def.ID, InitialX: def.X, InitialY: def.Y})
	attachObject(space, box, QueryInflate, tags.ResolvBox)
	return box
}
