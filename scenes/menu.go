package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/network"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/systems"
	"github.com/automoto/keydoor/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the world select menu
type MenuScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	status       string
	ui           *ui.WorldSelectUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, shared *Shared) *MenuScene {
	return &MenuScene{sceneChanger: sc, shared: shared}
}

// NewMenuSceneWithStatus opens the menu with a message under the online panel.
func NewMenuSceneWithStatus(sc SceneChanger, shared *Shared, status string) *MenuScene {
	return &MenuScene{sceneChanger: sc, shared: shared, status: status}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ui = ui.NewWorldSelectUI(ms.entries(), ms.playOnline, ms.resetProgress)
	ms.ui.SetStatus(ms.status)
}

func (ms *MenuScene) entries() []ui.WorldEntry {
	var entries []ui.WorldEntry
	for world := 1; world <= leveldata.WorldCount; world++ {
		label := fmt.Sprintf("World %d", world)
		if def, err := ms.shared.Levels.World(world); err == nil {
			label = fmt.Sprintf("World %d: %s", world, def.Name)
		}
		entries = append(entries, ui.WorldEntry{
			Label:  label,
			Locked: !systems.CanAccess(ms.shared.Progress, world),
			OnSelect: func() {
				ms.startWorld(world)
			},
		})
	}
	for _, def := range ms.shared.Levels.Extras() {
		entries = append(entries, ui.WorldEntry{
			Label: def.Name,
			OnSelect: func() {
				ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.shared, def))
			},
		})
	}
	return entries
}

func (ms *MenuScene) startWorld(world int) {
	def, err := ms.shared.Levels.World(world)
	if err != nil {
		log.Printf("Warning: world %d: %v", world, err)
		ms.ui.SetStatus(err.Error())
		return
	}
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.shared, def))
}

func (ms *MenuScene) playOnline(address, room string) {
	ms.ui.SetConnecting(true)
	ms.ui.SetStatus("Connecting to " + address + "...")

	client := network.NewClient(config.Net.InboxSize, time.Duration(config.Net.WriteTimeout)*time.Millisecond)
	client.Connect(address, room, config.Net.PlayerName)
	ms.sceneChanger.ChangeScene(NewNetworkedScene(ms.sceneChanger, ms.shared, client, address))
}

func (ms *MenuScene) resetProgress() {
	if err := ms.shared.Progress.Reset(); err != nil {
		log.Printf("Warning: could not reset progress: %v", err)
	}
	ms.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ms.sceneChanger, ms.shared, "Progress cleared"))
}
