package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broadphase. Proxies are stored offset by Pad so geometry
// above the top of the viewport or left of x=0 still lands in a cell.
type SpaceData struct {
	*resolv.Space
	Pad float64
}

var Space = donburi.NewComponentType[SpaceData]()
