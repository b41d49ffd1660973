package factory

import (
	"github.com/automoto/keydoor/archetypes"
	"github.com/automoto/keydoor/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, follow int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Follow: follow})
	return camera
}
