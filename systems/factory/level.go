package factory

import (
	"fmt"
	"log"

	"github.com/automoto/keydoor/archetypes"
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/yohamta/donburi"
)

// LevelOptions controls how a definition is instantiated.
type LevelOptions struct {
	ViewportW float64
	ViewportH float64
	Follow    int

	// Networked levels start empty; players are created from the room state.
	Networked bool
	Link      components.NetLink
}

// CreateLevel builds every entity of def into w and returns the level entry.
func CreateLevel(w donburi.World, def *leveldata.Definition, opts LevelOptions) (*donburi.Entry, error) {
	if def == nil {
		return nil, fmt.Errorf("create level: nil definition")
	}
	if opts.ViewportW <= 0 || opts.ViewportH <= 0 {
		return nil, fmt.Errorf("create level %q: viewport %.0fx%.0f", def.Name, opts.ViewportW, opts.ViewportH)
	}
	prof := config.ProfileByName(def.Profile)

	width := def.Width
	if width <= 0 {
		width = opts.ViewportW
	}
	space := NewSpace(width, opts.ViewportH)

	var extra []donburi.IComponentType
	if opts.Networked {
		extra = append(extra, components.Net)
	}
	level := archetypes.Level.Spawn(w, extra...)
	components.LevelState.SetValue(level, components.LevelStateData{
		Definition: def,
		Physics:    prof,
		State:      netconfig.StatePlaying,
		AtDoor:     map[int]struct{}{},
		ViewportW:  opts.ViewportW,
		ViewportH:  opts.ViewportH,
		Networked:  opts.Networked,
	})
	components.Input.SetValue(level, components.InputData{Pressed: config.NewKeySet()})
	components.Space.Set(level, space)
	if opts.Networked {
		components.Net.SetValue(level, components.NetData{Link: opts.Link})
	}

	index := 0
	for _, r := range def.Platforms {
		CreatePlatform(w, space, index, r)
		index++
	}
	for _, mp := range def.MovingPlatforms {
		CreateMovingPlatform(w, space, index, mp)
		index++
	}
	for _, r := range def.FallingPlatforms {
		CreateFallingPlatform(w, space, index, r)
		index++
	}
	for _, r := range def.Hazards {
		CreateHazard(w, space, r)
	}
	for _, b := range def.Boxes {
		CreateBox(w, space, b, prof.BoxSize)
	}
	CreateKey(w, def.Key)
	CreateDoor(w, def.Door)
	CreateCamera(w, opts.Follow)

	if !opts.Networked {
		for slot := 1; slot <= def.Players; slot++ {
			CreatePlayer(w, space, prof, PlayerSlot{
				ID:       slot,
				Name:     fmt.Sprintf("P%d", slot),
				Spawn:    def.Spawn(slot),
				Controls: config.BindingFor(slot),
				Local:    true,
			})
		}
	}

	log.Printf("Created level %q: %d platforms, %d hazards, %d boxes, %d players",
		def.Name, index, len(def.Hazards), len(def.Boxes), def.Players)
	return level, nil
}
