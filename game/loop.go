package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/automoto/keydoor/config"
)

// InputSource returns the keys held at the start of a tick.
type InputSource func() config.KeySet

// Loop ticks a level at a fixed rate until its context is cancelled.
type Loop struct {
	level    *Level
	input    InputSource
	tickRate int

	// OnTick, when set, is called after every tick with the new snapshot.
	OnTick func(Snapshot)
}

func NewLoop(level *Level, input InputSource, tickRate int) *Loop {
	if input == nil {
		input = func() config.KeySet { return nil }
	}
	return &Loop{
		level:    level,
		input:    input,
		tickRate: tickRate,
	}
}

// Run blocks until ctx is done. A tick that has not started when ctx is
// cancelled never runs.
func (l *Loop) Run(ctx context.Context) error {
	if l.tickRate <= 0 {
		return fmt.Errorf("game loop: tick rate %d", l.tickRate)
	}
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			l.level.Tick(l.input())
			if l.OnTick != nil {
				l.OnTick(l.level.Snapshot())
			}
		}
	}
}
