package components

import "github.com/yohamta/donburi"

type BoxData struct {
	ID       int
	InitialX float64
	InitialY float64
}

var Box = donburi.NewComponentType[BoxData]()
