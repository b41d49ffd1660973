package scenes

import (
	"github.com/automoto/keydoor/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames maps physical keys to the identifiers used by control bindings.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyW:          "w",
	ebiten.KeyArrowLeft:  "arrowleft",
	ebiten.KeyArrowRight: "arrowright",
	ebiten.KeyArrowUp:    "arrowup",
	ebiten.KeyJ:          "j",
	ebiten.KeyL:          "l",
	ebiten.KeyI:          "i",
	ebiten.KeyDigit4:     "4",
	ebiten.KeyDigit6:     "6",
	ebiten.KeyDigit8:     "8",
	ebiten.KeyNumpad4:    "4",
	ebiten.KeyNumpad6:    "6",
	ebiten.KeyNumpad8:    "8",
}

// SampleKeys returns the binding keys currently held.
func SampleKeys() config.KeySet {
	ks := config.NewKeySet()
	for key, name := range keyNames {
		if ebiten.IsKeyPressed(key) {
			ks[name] = struct{}{}
		}
	}
	return ks
}
