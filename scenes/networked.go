package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/fonts"
	"github.com/automoto/keydoor/game"
	"github.com/automoto/keydoor/network"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NetworkedScene plays config.Net.World in a relay room. The level is built
// once the relay has assigned this client a player id.
type NetworkedScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	netClient    *network.Client
	address      string
	level        *game.Level
	overlay      *overlay
	snap         game.Snapshot
	once         sync.Once
}

func NewNetworkedScene(sc SceneChanger, shared *Shared, client *network.Client, address string) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		shared:       shared,
		netClient:    client,
		address:      address,
		overlay:      newOverlay(),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ns.leave("")
		return
	}

	switch ns.netClient.State() {
	case network.StateError:
		ns.leave(fmt.Sprintf("Connection failed: %v", ns.netClient.LastError()))
		return
	case network.StateDisconnected:
		ns.leave("Disconnected from " + ns.address)
		return
	case network.StateJoinedRoom:
		if ns.level == nil && !ns.startLevel() {
			return
		}
	}
	if ns.level == nil {
		return
	}

	if ns.level.State() == netconfig.StateWon && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := ns.level.Restart(); err != nil {
			log.Printf("Warning: [net] restart request: %v", err)
		}
	}

	ns.level.Tick(SampleKeys())
	ns.snap = ns.level.Snapshot()
	ns.overlay.Update(ns.snap.State)
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	if ns.level == nil {
		screen.Fill(config.Menu.BackgroundColor)
		drawCentered(screen, "Connecting to "+ns.address+"...", fonts.HUD, config.C.Height/2, config.Menu.TextColor)
		return
	}
	drawWorld(screen, ns.snap)
	drawHUD(screen, ns.snap)
	ns.overlay.Draw(screen, ns.snap, "Enter: restart room   Esc: leave")
}

func (ns *NetworkedScene) configure() {
	log.Printf("[net] joining %s room %q", ns.address, ns.netClient.RoomID())
}

func (ns *NetworkedScene) startLevel() bool {
	def, err := ns.shared.Levels.World(config.Net.World)
	if err != nil {
		ns.leave(err.Error())
		return false
	}
	opts := game.DefaultOptions()
	opts.Networked = true
	opts.Link = ns.netClient
	level, err := game.NewLevel(def, opts)
	if err != nil {
		ns.leave(err.Error())
		return false
	}
	ns.level = level
	log.Printf("[net] joined as player %d in room %q", ns.netClient.PlayerID(), ns.netClient.RoomID())
	return true
}

// leave closes the link and returns to the menu, showing status if set.
func (ns *NetworkedScene) leave(status string) {
	if status != "" {
		log.Printf("[net] %s", status)
	}
	var err error
	if ns.level != nil {
		err = ns.level.Close()
	} else {
		err = ns.netClient.Close()
	}
	if err != nil {
		log.Printf("Warning: [net] close: %v", err)
	}
	ns.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ns.sceneChanger, ns.shared, status))
}
