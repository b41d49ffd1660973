package components

import (
	"github.com/automoto/keydoor/config"
	"github.com/yohamta/donburi"
)

// InputData is the pressed-key set for the current tick.
type InputData struct {
	Pressed config.KeySet
}

var Input = donburi.NewComponentType[InputData]()
