package components

import "github.com/yohamta/donburi"

// KeyData is the level's single pickup. Collected only goes back to false
// when the whole level resets.
type KeyData struct {
	Collected   bool
	CollectedBy int
}

var Key = donburi.NewComponentType[KeyData]()
