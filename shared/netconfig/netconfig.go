// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// GameState is the per-attempt state of a level.
type GameState int

const (
	StatePlaying GameState = iota
	StateDead              // frozen until the reset countdown expires
	StateWon               // terminal until an explicit restart
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	case StateWon:
		return "won"
	}
	return "unknown"
}

const (
	// MaxPlayers is the room capacity and the highest player id.
	MaxPlayers = 4

	// SendInterval is how many ticks pass between outbound local state updates.
	SendInterval = 3

	// DefaultPort is the relay's websocket port.
	DefaultPort = 7373

	// TickRate is the relay's command processing rate.
	TickRate = 60
)

// ValidPlayerID reports whether id can name a room slot.
func ValidPlayerID(id int) bool {
	return id >= 1 && id <= MaxPlayers
}
