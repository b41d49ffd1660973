// Package game drives the simulation: one Level per attempt at a world, ticked
// either by the desktop client or by Loop.
package game

import (
	"fmt"
	"io"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/automoto/keydoor/systems"
	"github.com/automoto/keydoor/systems/factory"
	"github.com/yohamta/donburi"
)

// Options configures a level instance.
type Options struct {
	ViewportW float64
	ViewportH float64

	// Follow tracks a single player id with the camera; 0 tracks everyone.
	Follow int

	Networked bool
	Link      components.NetLink
}

// DefaultOptions sizes the viewport from config.C.
func DefaultOptions() Options {
	return Options{
		ViewportW: float64(config.C.Width),
		ViewportH: float64(config.C.Height),
		Follow:    config.Camera.Follow,
	}
}

// Level owns one donburi world and the ordered systems that tick it.
type Level struct {
	world   donburi.World
	entry   *donburi.Entry
	systems []systems.System
	closed  bool
}

func NewLevel(def *leveldata.Definition, opts Options) (*Level, error) {
	if def == nil {
		return nil, fmt.Errorf("new level: nil definition")
	}
	if opts.Networked && opts.Link == nil {
		return nil, fmt.Errorf("new level %q: networked without a link", def.Name)
	}
	w := donburi.NewWorld()
	entry, err := factory.CreateLevel(w, def, factory.LevelOptions{
		ViewportW: opts.ViewportW,
		ViewportH: opts.ViewportH,
		Follow:    opts.Follow,
		Networked: opts.Networked,
		Link:      opts.Link,
	})
	if err != nil {
		return nil, fmt.Errorf("new level: %w", err)
	}
	return &Level{
		world:   w,
		entry:   entry,
		systems: systems.Pipeline(),
	}, nil
}

// Tick advances the simulation by one fixed step using the keys held now.
func (l *Level) Tick(keys config.KeySet) {
	if l.closed {
		return
	}
	if keys == nil {
		keys = config.NewKeySet()
	}
	components.Input.Get(l.entry).Pressed = keys
	for _, s := range l.systems {
		s(l.world)
	}
}

// Restart rewinds the level. Networked levels ask the relay instead, and
// reset once GameReset comes back.
func (l *Level) Restart() error {
	if l.closed {
		return nil
	}
	ls := components.LevelState.Get(l.entry)
	if !ls.Networked {
		systems.ResetLevel(l.world)
		return nil
	}
	nd := components.Net.Get(l.entry)
	if err := nd.Link.Send(messages.RestartRequest{}); err != nil {
		return fmt.Errorf("request restart: %w", err)
	}
	return nil
}

// Close stops ticking and releases the network link, dropping queued events.
func (l *Level) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if !l.entry.HasComponent(components.Net) {
		return nil
	}
	nd := components.Net.Get(l.entry)
	if nd.Link == nil {
		return nil
	}
	nd.Link.Drain()
	if c, ok := nd.Link.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (l *Level) State() netconfig.GameState {
	return components.LevelState.Get(l.entry).State
}

// World exposes the underlying donburi world for tests and tools.
func (l *Level) World() donburi.World {
	return l.world
}
