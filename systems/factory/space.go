package factory

import (
	"github.com/automoto/keydoor/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Broadphase sizing. The pad keeps proxies for bodies above the viewport top
// or left of x=0 inside the space.
const (
	SpaceCellSize = 32
	SpacePad      = 1024.0
	QueryInflate  = 16.0
)

// NewSpace sizes a resolv space for a level of the given extent.
func NewSpace(levelWidth, viewportHeight float64) *components.SpaceData {
	w := int(levelWidth+2*SpacePad) + SpaceCellSize
	h := int(viewportHeight+2*SpacePad) + SpaceCellSize
	return &components.SpaceData{
		Space: resolv.NewSpace(w, h, SpaceCellSize, SpaceCellSize),
		Pad:   SpacePad,
	}
}

// attachObject gives e a broadphase proxy tagged with tag and registers it.
func attachObject(space *components.SpaceData, e *donburi.Entry, inflate float64, tag string) {
	b := components.Body.Get(e)
	obj := resolv.NewObject(b.X+space.Pad-inflate, b.Y+space.Pad-inflate, b.W+2*inflate, b.H+2*inflate, tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj, Inflate: inflate})
	space.Add(obj)
}

// DetachObject removes e's proxy from the space.
func DetachObject(space *components.SpaceData, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e).Object; obj != nil {
		space.Remove(obj)
	}
}
