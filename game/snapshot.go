package game

import (
	"sort"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

type PlayerView struct {
	ID          int
	Name        string
	Rect        gamemath.Rect
	VX, VY      float64
	OnGround    bool
	FacingRight bool
	Dead        bool
	AnimFrame   int
	Local       bool
}

type BoxView struct {
	ID   int
	Rect gamemath.Rect
}

type PlatformView struct {
	Rect gamemath.Rect
	Kind components.PlatformKind
}

// Snapshot is a read-only copy of everything a renderer or HUD needs.
type Snapshot struct {
	Name  string
	World int
	Tick  int

	State          netconfig.GameState
	ResetCountdown int

	Players   []PlayerView
	Boxes     []BoxView
	Platforms []PlatformView
	Hazards   []gamemath.Rect

	Key          gamemath.Rect
	KeyCollected bool
	Door         gamemath.Rect

	CameraX float64

	AtDoor  int
	Living  int
	Deaths  int
	LocalID int
}

// DoorOpen reports whether the door accepts players.
func (s Snapshot) DoorOpen() bool {
	return s.KeyCollected
}

func (l *Level) Snapshot() Snapshot {
	ls := components.LevelState.Get(l.entry)
	s := Snapshot{
		Name:           ls.Definition.Name,
		World:          ls.Definition.World,
		Tick:           ls.Tick,
		State:          ls.State,
		ResetCountdown: ls.ResetCountdown,
		AtDoor:         len(ls.AtDoor),
		Deaths:         ls.Deaths,
	}
	if l.entry.HasComponent(components.Net) {
		nd := components.Net.Get(l.entry)
		s.AtDoor = len(nd.RemoteAtDoor)
		s.LocalID = nd.LocalID
	}

	tags.Player.Each(l.world, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		b := components.Body.Get(e)
		s.Players = append(s.Players, PlayerView{
			ID:          p.ID,
			Name:        p.Name,
			Rect:        b.Rect(),
			VX:          b.VX,
			VY:          b.VY,
			OnGround:    b.OnGround,
			FacingRight: p.FacingRight,
			Dead:        p.Dead,
			AnimFrame:   p.AnimFrame,
			Local:       p.Local,
		})
		if !p.Dead {
			s.Living++
		}
	})
	sort.Slice(s.Players, func(i, j int) bool { return s.Players[i].ID < s.Players[j].ID })

	tags.Box.Each(l.world, func(e *donburi.Entry) {
		s.Boxes = append(s.Boxes, BoxView{ID: components.Box.Get(e).ID, Rect: components.Body.Get(e).Rect()})
	})
	sort.Slice(s.Boxes, func(i, j int) bool { return s.Boxes[i].ID < s.Boxes[j].ID })

	type indexed struct {
		index int
		view  PlatformView
	}
	var platforms []indexed
	tags.Platform.Each(l.world, func(e *donburi.Entry) {
		pd := components.Platform.Get(e)
		platforms = append(platforms, indexed{pd.Index, PlatformView{Rect: components.Body.Get(e).Rect(), Kind: pd.Kind}})
	})
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].index < platforms[j].index })
	for _, p := range platforms {
		s.Platforms = append(s.Platforms, p.view)
	}

	tags.Hazard.Each(l.world, func(e *donburi.Entry) {
		s.Hazards = append(s.Hazards, components.Body.Get(e).Rect())
	})
	sort.Slice(s.Hazards, func(i, j int) bool { return s.Hazards[i].X < s.Hazards[j].X })

	if ke, ok := tags.Key.First(l.world); ok {
		s.Key = components.Body.Get(ke).Rect()
		s.KeyCollected = components.Key.Get(ke).Collected
	}
	if de, ok := tags.Door.First(l.world); ok {
		s.Door = components.Body.Get(de).Rect()
	}
	if ce, ok := components.Camera.First(l.world); ok {
		s.CameraX = components.Camera.Get(ce).Position.X
	}
	return s
}
