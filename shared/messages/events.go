package messages

// ServerEvent is implemented by every message a client can receive. The
// network client queues these and the simulation drains them once per tick.
type ServerEvent interface {
	serverEvent()
}

// KeyCollected is sent by the client that picked up the key and relayed to the
// room. The key is shared, so one pickup opens the door for everybody.
type KeyCollected struct {
	PlayerID int // stamped by the relay
}

// AtDoorChanged is sent when the local player enters or leaves the door.
type AtDoorChanged struct {
	AtDoor bool
}

// AtDoorUpdate carries the room's full at-door set, sorted by id.
type AtDoorUpdate struct {
	PlayerIDs []int
}

// PlayerDied is sent by a client whose player hit a hazard or fell out, and
// relayed to the room.
type PlayerDied struct {
	PlayerID int // stamped by the relay
}

// GameWon is broadcast when every member of the room is at the door.
type GameWon struct{}

// RestartRequest asks the relay to reset the room.
type RestartRequest struct{}

// GameReset is broadcast after a restart; clients rebuild their level.
type GameReset struct{}

func (KeyCollected) serverEvent() {}
func (AtDoorUpdate) serverEvent() {}
func (PlayerDied) serverEvent()   {}
func (GameWon) serverEvent()      {}
func (GameReset) serverEvent()    {}
