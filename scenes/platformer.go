package scenes

import (
	"log"
	"sync"

	"github.com/automoto/keydoor/game"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/automoto/keydoor/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlatformerScene plays one level locally, every player on this keyboard.
type PlatformerScene struct {
	sceneChanger SceneChanger
	shared       *Shared
	def          *leveldata.Definition
	level        *game.Level
	overlay      *overlay
	snap         game.Snapshot
	recorded     bool
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, shared *Shared, def *leveldata.Definition) *PlatformerScene {
	return &PlatformerScene{
		sceneChanger: sc,
		shared:       shared,
		def:          def,
		overlay:      newOverlay(),
	}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.level == nil {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.shared))
		return
	}

	if ps.level.State() == netconfig.StateWon {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			ps.restart()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			ps.nextWorld()
			return
		}
	}

	ps.level.Tick(SampleKeys())
	ps.snap = ps.level.Snapshot()
	ps.overlay.Update(ps.snap.State)

	if ps.snap.State == netconfig.StateWon && !ps.recorded {
		ps.recorded = true
		ps.recordWin()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.level == nil {
		return
	}
	drawWorld(screen, ps.snap)
	drawHUD(screen, ps.snap)
	ps.overlay.Draw(screen, ps.snap, ps.winHint())
}

func (ps *PlatformerScene) configure() {
	level, err := game.NewLevel(ps.def, game.DefaultOptions())
	if err != nil {
		log.Printf("Warning: could not start level: %v", err)
		ps.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ps.sceneChanger, ps.shared, err.Error()))
		return
	}
	ps.level = level
	ps.snap = level.Snapshot()
}

func (ps *PlatformerScene) restart() {
	if err := ps.level.Restart(); err != nil {
		log.Printf("Warning: restart: %v", err)
		return
	}
	ps.recorded = false
}

func (ps *PlatformerScene) recordWin() {
	if ps.def.World == 0 {
		return
	}
	if err := ps.shared.Progress.Complete(ps.def.World); err != nil {
		log.Printf("Warning: could not save progress: %v", err)
	}
}

func (ps *PlatformerScene) nextWorld() {
	next, ok := systems.NextWorld(ps.shared.Progress)
	if !ok || ps.def.World == 0 {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.shared))
		return
	}
	def, err := ps.shared.Levels.World(next)
	if err != nil {
		log.Printf("Warning: world %d: %v", next, err)
		ps.sceneChanger.ChangeScene(NewMenuSceneWithStatus(ps.sceneChanger, ps.shared, err.Error()))
		return
	}
	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.shared, def))
}

func (ps *PlatformerScene) winHint() string {
	if _, ok := systems.NextWorld(ps.shared.Progress); ok && ps.def.World > 0 {
		return "Enter: play again   N: next world   Esc: menu"
	}
	return "Enter: play again   Esc: menu"
}
