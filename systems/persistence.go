package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/quasilyte/gdata"
)

// ProgressStore records the highest completed world.
type ProgressStore interface {
	Progress() int
	Complete(world int) error
	Reset() error
}

// CanAccess reports whether world is unlocked: every world up to one past the
// highest completed one.
func CanAccess(s ProgressStore, world int) bool {
	return world >= 1 && world <= s.Progress()+1
}

// NextWorld returns the world to play after the current progress, or false
// once every built-in world is complete.
func NextWorld(s ProgressStore) (int, bool) {
	p := s.Progress()
	if p >= leveldata.WorldCount {
		return 0, false
	}
	return p + 1, true
}

// SavedProgress is the payload stored on disk.
type SavedProgress struct {
	HighestWorld int `json:"highestWorld"`
}

const progressKey = "progress"

// GDataProgressStore persists progress through gdata.
type GDataProgressStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
	highest int
}

// NewGDataProgressStore opens the app's data directory and loads the saved
// marker. A missing or unreadable save starts from zero.
func NewGDataProgressStore(appName string) (*GDataProgressStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open progress store: %w", err)
	}
	s := &GDataProgressStore{manager: m}

	data, err := m.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return s, nil
	}
	if len(data) == 0 {
		// No saved progress yet
		return s, nil
	}
	var saved SavedProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return s, nil
	}
	s.highest = clampWorld(saved.HighestWorld)
	return s, nil
}

func (s *GDataProgressStore) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highest
}

// Complete raises the marker to world. Completing an earlier world is a no-op.
func (s *GDataProgressStore) Complete(world int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	world = clampWorld(world)
	if world <= s.highest {
		return nil
	}
	s.highest = world
	return s.save()
}

func (s *GDataProgressStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highest = 0
	return s.save()
}

func (s *GDataProgressStore) save() error {
	data, err := json.Marshal(SavedProgress{HighestWorld: s.highest})
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := s.manager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// MemoryProgressStore keeps progress for the lifetime of the process. It backs
// the client when gdata is unavailable.
type MemoryProgressStore struct {
	mu      sync.Mutex
	highest int
}

func (s *MemoryProgressStore) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highest
}

func (s *MemoryProgressStore) Complete(world int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if world = clampWorld(world); world > s.highest {
		s.highest = world
	}
	return nil
}

func (s *MemoryProgressStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highest = 0
	return nil
}

func clampWorld(world int) int {
	switch {
	case world < 0:
		return 0
	case world > leveldata.WorldCount:
		return leveldata.WorldCount
	}
	return world
}
