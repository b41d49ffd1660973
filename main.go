package main

import (
	"flag"
	"image"
	"log"
	"os"
	"strconv"

	"github.com/automoto/keydoor/assets"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/fonts"
	"github.com/automoto/keydoor/scenes"
	"github.com/automoto/keydoor/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(progress systems.ProgressStore) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	shared := &scenes.Shared{
		Progress: progress,
		Levels:   assets.NewLevelLoader(config.C.GroundY()),
	}

	g.scene = scenes.NewMenuScene(g, shared)
	if config.Debug.SkipMenu {
		if def, err := shared.Levels.World(config.Debug.World); err != nil {
			log.Printf("Warning: -world %d: %v", config.Debug.World, err)
		} else {
			g.scene = scenes.NewPlatformerScene(g, shared, def)
		}
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func openProgress() systems.ProgressStore {
	store, err := systems.NewGDataProgressStore("keydoor")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence, progress will not be saved: %v", err)
		return &systems.MemoryProgressStore{}
	}
	return store
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "skip the menu and start a world")
	flag.IntVar(&config.Debug.World, "world", 1, "world to start with -skipmenu")
	flag.StringVar(&config.Net.ServerAddr, "server", config.Net.ServerAddr, "relay address (host:port)")
	flag.StringVar(&config.Net.PlayerName, "name", config.Net.PlayerName, "player name shown to the room")
	flag.Parse()

	if addr := os.Getenv("KEYDOOR_SERVER"); addr != "" {
		config.Net.ServerAddr = addr
	}
	if s := os.Getenv("KEYDOOR_WORLD"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			config.Net.World = n
		} else {
			log.Printf("Warning: KEYDOOR_WORLD %q: %v", s, err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(openProgress())); err != nil {
		log.Fatal(err)
	}
}
