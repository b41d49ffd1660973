package systems

import (
	"sort"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// System is one step of the level tick.
type System func(w donburi.World)

// WithPlaying skips s unless the level is in the playing state.
func WithPlaying(s System) System {
	return func(w donburi.World) {
		ls := levelState(w)
		if ls == nil || !ls.Playing() {
			return
		}
		s(w)
	}
}

func levelEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.LevelState.First(w)
}

func levelState(w donburi.World) *components.LevelStateData {
	e, ok := levelEntry(w)
	if !ok {
		return nil
	}
	return components.LevelState.Get(e)
}

func netOf(w donburi.World) *components.NetData {
	e, ok := levelEntry(w)
	if !ok || !e.HasComponent(components.Net) {
		return nil
	}
	return components.Net.Get(e)
}

// sortedEntries collects every entry carrying c, ordered by less.
func sortedEntries(w donburi.World, c donburi.IComponentType, less func(a, b *donburi.Entry) bool) []*donburi.Entry {
	var out []*donburi.Entry
	eachWith(w, c, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func eachWith(w donburi.World, c donburi.IComponentType, fn func(e *donburi.Entry)) {
	donburi.NewQuery(filter.Contains(c)).Each(w, fn)
}

func byPlayerID(a, b *donburi.Entry) bool {
	return components.Player.Get(a).ID < components.Player.Get(b).ID
}

func playerBand(p *components.LevelStateData) gamemath.StackBand {
	return gamemath.StackBand{Above: p.Physics.StackBandAbove, Below: p.Physics.StackBandBelow, Margin: p.Physics.StackMargin}
}

func boxBand(p *components.LevelStateData) gamemath.StackBand {
	return gamemath.StackBand{Above: p.Physics.BoxStackBandAbove, Below: p.Physics.BoxStackBandBelow, Margin: p.Physics.BoxStackMargin}
}

// offscreenFalling reports whether e is a falling platform that has dropped
// out of the playfield and no longer collides.
func offscreenFalling(e *donburi.Entry, ls *components.LevelStateData) bool {
	if components.Platform.Get(e).Kind != components.PlatformFalling {
		return false
	}
	return components.Body.Get(e).Y >= ls.ViewportH
}

// Pipeline returns the level tick in order. The net steps are no-ops for
// offline levels; the death countdown runs last.
func Pipeline() []System {
	return []System{
		UpdateNetInbound,
		UpdateTick,
		WithPlaying(UpdatePlatforms),
		WithPlaying(UpdateBoxes),
		WithPlaying(UpdatePlayers),
		WithPlaying(UpdateWin),
		WithPlaying(UpdateCamera),
		UpdateNetOutbound,
		UpdateDeath,
	}
}
