package core

import (
	"log"
	"sync"
	"time"
)

// CommandProcessor drains queued work once per tick.
type CommandProcessor interface {
	ProcessCommands()
}

// GameLoop applies relay commands at a fixed rate on one goroutine.
type GameLoop struct {
	processor CommandProcessor
	tickRate  int
	stopOnce  sync.Once
	stopChan  chan struct{}
}

func NewGameLoop(processor CommandProcessor, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &GameLoop{
		processor: processor,
		tickRate:  tickRate,
		stopChan:  make(chan struct{}),
	}
}

// Run blocks until Stop is called. Commands still queued at that point are
// applied before it returns.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] relay loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.processor.ProcessCommands()
			log.Println("[server] relay loop stopped")
			return
		case <-ticker.C:
			g.processor.ProcessCommands()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
