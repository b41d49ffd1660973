package scenes

import (
	"github.com/automoto/keydoor/assets"
	"github.com/automoto/keydoor/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Shared holds what every scene needs across transitions.
type Shared struct {
	Progress systems.ProgressStore
	Levels   *assets.LevelLoader
}
