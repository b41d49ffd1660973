package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's proxy in the broadphase space. Its Data field
// points back at the owning *donburi.Entry.
type ObjectData struct {
	*resolv.Object
	Inflate float64 // query margin on every side of the body
}

// Sync moves the proxy to cover b, offset by the space pad.
func (o *ObjectData) Sync(b *BodyData, pad float64) {
	if o.Object == nil {
		return
	}
	o.X = b.X + pad - o.Inflate
	o.Y = b.Y + pad - o.Inflate
	o.W = b.W + 2*o.Inflate
	o.H = b.H + 2*o.Inflate
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
